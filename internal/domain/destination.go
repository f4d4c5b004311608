package domain

import (
	"slices"
	"time"
)

// DateLayout is the calendar date format used for trip dates everywhere:
// form input, storage and config seeds.
const DateLayout = "2006-01-02"

// DateRange is the planned travel window. Either side may be unset.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Nights returns the number of nights between Start and End, or 0 when
// either side is unset or the range is inverted.
func (r DateRange) Nights() int {
	if r.Start == nil || r.End == nil || r.End.Before(*r.Start) {
		return 0
	}
	return int(r.End.Sub(*r.Start).Hours() / 24)
}

type Destination struct {
	ID         string
	Name       string
	Country    string
	Dates      DateRange
	Budget     float64
	Status     DestinationStatus
	Activities []string
	Notes      string
}

// Clone returns a deep copy so callers can hand out records without
// sharing the activity slice or date pointers.
func (d *Destination) Clone() *Destination {
	c := *d
	c.Activities = slices.Clone(d.Activities)
	if c.Activities == nil {
		c.Activities = []string{}
	}
	c.Dates = DateRange{Start: cloneTime(d.Dates.Start), End: cloneTime(d.Dates.End)}
	return &c
}

// IsUpcoming reports whether the trip has not been completed yet.
func (d *Destination) IsUpcoming() bool {
	return d.Status.IsUpcoming()
}

// ParseDate parses an optional YYYY-MM-DD string. Blank input yields nil.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders an optional date as YYYY-MM-DD, or "" when unset.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
