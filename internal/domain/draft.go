package domain

import (
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"
)

var (
	ErrNameRequired    = errors.New("destination name is required")
	ErrCountryRequired = errors.New("country is required")
	ErrInvalidBudget   = errors.New("budget must be a decimal number")
)

// Draft is the transient candidate record behind the "new destination"
// form, plus the staging field for the next activity label.
// The zero value is not ready for use; call NewDraft.
type Draft struct {
	candidate       Destination
	pendingActivity string
}

// NewDraft returns an empty draft: status planned, budget 0, no activities.
func NewDraft() *Draft {
	d := &Draft{}
	d.Reset()
	return d
}

// Reset discards everything typed so far.
func (d *Draft) Reset() {
	d.candidate = Destination{
		Status:     StatusPlanned,
		Activities: []string{},
	}
	d.pendingActivity = ""
}

func (d *Draft) SetName(name string)         { d.candidate.Name = name }
func (d *Draft) SetCountry(country string)   { d.candidate.Country = country }
func (d *Draft) SetStart(start *time.Time)   { d.candidate.Dates.Start = cloneTime(start) }
func (d *Draft) SetEnd(end *time.Time)       { d.candidate.Dates.End = cloneTime(end) }
func (d *Draft) SetNotes(notes string)       { d.candidate.Notes = notes }
func (d *Draft) SetPendingActivity(s string) { d.pendingActivity = s }

// SetBudget stores the budget. Negative and non-finite amounts become zero.
func (d *Draft) SetBudget(amount float64) {
	d.candidate.Budget = ClampBudget(amount)
}

// ClampBudget maps an amount onto the valid budget range: finite and
// non-negative, zero otherwise.
func ClampBudget(amount float64) float64 {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return amount
}

// ParseBudget parses budget text typed by the user. Blank input is zero.
// Only plain decimal notation (optionally with an exponent) is accepted;
// hex floats, "Inf", "NaN" and values that overflow float64 are rejected
// with ErrInvalidBudget.
func ParseBudget(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	digits := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, ErrInvalidBudget
	}
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, ErrInvalidBudget
	}
	return amount, nil
}

// SetStatus ignores values outside the three known statuses.
func (d *Draft) SetStatus(s DestinationStatus) {
	if s.Valid() {
		d.candidate.Status = s
	}
}

// AddActivity moves the staged activity label into the activity list.
// Blank or whitespace-only input is ignored and stays staged.
func (d *Draft) AddActivity() bool {
	if strings.TrimSpace(d.pendingActivity) == "" {
		return false
	}
	d.candidate.Activities = append(d.candidate.Activities, d.pendingActivity)
	d.pendingActivity = ""
	return true
}

// PendingActivity returns the staged activity text.
func (d *Draft) PendingActivity() string { return d.pendingActivity }

// Candidate returns a copy of the record being drafted.
func (d *Draft) Candidate() Destination {
	c := d.candidate
	c.Activities = slices.Clone(d.candidate.Activities)
	return c
}

// Validate checks the two presence rules: name and country must be
// non-empty. Whitespace counts as content.
func (d *Draft) Validate() error {
	if d.candidate.Name == "" {
		return ErrNameRequired
	}
	if d.candidate.Country == "" {
		return ErrCountryRequired
	}
	return nil
}

// Commit hands out the candidate and resets the draft. When validation
// fails the draft is left as is and ok is false.
func (d *Draft) Commit() (dest *Destination, ok bool) {
	if d.Validate() != nil {
		return nil, false
	}
	dest = d.candidate.Clone()
	d.Reset()
	return dest, true
}

// IsEmpty reports whether nothing has been entered since the last reset.
func (d *Draft) IsEmpty() bool {
	c := d.candidate
	return c.Name == "" && c.Country == "" && c.Dates.Start == nil && c.Dates.End == nil &&
		c.Budget == 0 && c.Status == StatusPlanned && len(c.Activities) == 0 &&
		c.Notes == "" && d.pendingActivity == ""
}
