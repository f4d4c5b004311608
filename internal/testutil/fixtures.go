package testutil

import (
	"time"

	"github.com/alexanderramin/travelboard/internal/domain"
	"github.com/google/uuid"
)

type DestinationOption func(*domain.Destination)

func WithCountry(c string) DestinationOption {
	return func(d *domain.Destination) {
		d.Country = c
	}
}

func WithBudget(b float64) DestinationOption {
	return func(d *domain.Destination) {
		d.Budget = b
	}
}

func WithStatus(s domain.DestinationStatus) DestinationOption {
	return func(d *domain.Destination) {
		d.Status = s
	}
}

func WithActivities(labels ...string) DestinationOption {
	return func(d *domain.Destination) {
		d.Activities = labels
	}
}

func WithNotes(n string) DestinationOption {
	return func(d *domain.Destination) {
		d.Notes = n
	}
}

// WithDates sets the travel window from YYYY-MM-DD strings; blank leaves a
// side unset. Panics on malformed input since fixtures are static.
func WithDates(start, end string) DestinationOption {
	return func(d *domain.Destination) {
		d.Dates = domain.DateRange{Start: mustDate(start), End: mustDate(end)}
	}
}

// NewTestDestination builds a destination with a fresh id, country
// "Testland", budget 1000 and status planned unless overridden.
func NewTestDestination(name string, opts ...DestinationOption) *domain.Destination {
	d := &domain.Destination{
		ID:         uuid.New().String(),
		Name:       name,
		Country:    "Testland",
		Budget:     1000,
		Status:     domain.StatusPlanned,
		Activities: []string{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func mustDate(s string) *time.Time {
	t, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}
