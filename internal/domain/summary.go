package domain

// Summary holds the aggregates shown in the dashboard stat cards.
type Summary struct {
	Count       int
	TotalBudget float64
	Upcoming    int
}

// Summarize computes the dashboard aggregates over a destination list.
func Summarize(destinations []*Destination) Summary {
	var s Summary
	for _, d := range destinations {
		s.Count++
		s.TotalBudget += d.Budget
		if d.IsUpcoming() {
			s.Upcoming++
		}
	}
	return s
}
