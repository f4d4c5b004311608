package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidStatus is returned when a status string is not one of the
// three destination statuses.
var ErrInvalidStatus = errors.New("invalid destination status")

type DestinationStatus string

const (
	StatusPlanned   DestinationStatus = "planned"
	StatusBooked    DestinationStatus = "booked"
	StatusCompleted DestinationStatus = "completed"
)

// Statuses returns the destination statuses in display order.
func Statuses() []DestinationStatus {
	return []DestinationStatus{StatusPlanned, StatusBooked, StatusCompleted}
}

// ParseStatus converts a user-supplied string into a DestinationStatus.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseStatus(s string) (DestinationStatus, error) {
	switch DestinationStatus(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPlanned:
		return StatusPlanned, nil
	case StatusBooked:
		return StatusBooked, nil
	case StatusCompleted:
		return StatusCompleted, nil
	}
	return "", fmt.Errorf("%w: %q (want planned, booked or completed)", ErrInvalidStatus, s)
}

func (s DestinationStatus) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

// IsUpcoming reports whether a trip with this status still lies ahead.
func (s DestinationStatus) IsUpcoming() bool {
	return s != StatusCompleted
}

// Label returns the short button label used on destination cards.
func (s DestinationStatus) Label() string {
	switch s {
	case StatusPlanned:
		return "Planned"
	case StatusBooked:
		return "Booked"
	case StatusCompleted:
		return "Done"
	default:
		return string(s)
	}
}
