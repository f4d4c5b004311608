package domain

import "time"

// SeedDestinations returns the records every session starts with.
// A fresh slice is built on each call.
func SeedDestinations() []*Destination {
	return []*Destination{
		{
			Name:    "Paris",
			Country: "France",
			Dates:   DateRange{Start: day(2025, time.June, 15), End: day(2025, time.June, 22)},
			Budget:  3500,
			Status:  StatusPlanned,
			Activities: []string{
				"Eiffel Tower",
				"Louvre Museum",
				"Seine River Cruise",
			},
			Notes: "Book accommodation near Latin Quarter",
		},
		{
			Name:    "Tokyo",
			Country: "Japan",
			Dates:   DateRange{Start: day(2025, time.September, 1), End: day(2025, time.September, 10)},
			Budget:  4200,
			Status:  StatusBooked,
			Activities: []string{
				"Shibuya Crossing",
				"Mount Fuji",
				"Temples in Kyoto",
			},
			Notes: "JR Pass ordered",
		},
	}
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}
