package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/travelboard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now, "Today"},
		{"tomorrow", now.Add(24 * time.Hour), "Tomorrow"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"3 days future", now.Add(3 * 24 * time.Hour), "In 3d"},
		{"3 days past", now.Add(-3 * 24 * time.Hour), "3d ago"},
		{"10 days future", now.Add(10 * 24 * time.Hour), "In 10d"},
		{"3 weeks future", now.Add(21 * 24 * time.Hour), "In 3w"},
		{"3 months future", now.Add(90 * 24 * time.Hour), "In 3mo"},
		{"2 weeks past", now.Add(-14 * 24 * time.Hour), "2w ago"},
		{"3 months past", now.Add(-90 * 24 * time.Hour), "3mo ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeDateFrom(tt.input, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatBudget(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0"},
		{950, "$950"},
		{3500, "$3,500"},
		{7700, "$7,700"},
		{1234.5, "$1,234.5"},
		{1234.567, "$1,234.56"},
		{1500000, "$1,500,000"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBudget(tt.amount))
		})
	}
}

func TestTripDate(t *testing.T) {
	assert.Equal(t, "TBD", TripDate(nil))
	assert.Equal(t, "Jun 15, 2025", TripDate(day(2025, time.June, 15)))
}

func TestFormatDateRange(t *testing.T) {
	tests := []struct {
		name string
		r    domain.DateRange
		want string
	}{
		{"both unset", domain.DateRange{}, "TBD - TBD"},
		{"start only", domain.DateRange{Start: day(2025, time.June, 15)}, "Jun 15, 2025 - TBD"},
		{"one night", domain.DateRange{Start: day(2025, time.June, 15), End: day(2025, time.June, 16)}, "Jun 15, 2025 - Jun 16, 2025 · 1 night"},
		{"week", domain.DateRange{Start: day(2025, time.June, 15), End: day(2025, time.June, 22)}, "Jun 15, 2025 - Jun 22, 2025 · 7 nights"},
		{"inverted", domain.DateRange{Start: day(2025, time.June, 22), End: day(2025, time.June, 15)}, "Jun 22, 2025 - Jun 15, 2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDateRange(tt.r))
		})
	}
}

func TestCountdown(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	paris := &domain.Destination{
		Name:   "Paris",
		Dates:  domain.DateRange{Start: day(2025, time.June, 15)},
		Status: domain.StatusPlanned,
	}

	assert.Equal(t, "starts in 3mo", Countdown(paris, now))

	later := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "start was 2w ago", Countdown(paris, later))

	done := paris.Clone()
	done.Status = domain.StatusCompleted
	assert.Empty(t, Countdown(done, now))

	undated := &domain.Destination{Name: "Oslo", Status: domain.StatusBooked}
	assert.Empty(t, Countdown(undated, now))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Hi", Truncate("Hi", 5))
	assert.Equal(t, "Hello", Truncate("Hello", 5))
	assert.Equal(t, "Hell…", Truncate("Hello world", 5))
	assert.Equal(t, "", Truncate("Hello", 0))
}

func TestStatusPill(t *testing.T) {
	tests := []struct {
		status domain.DestinationStatus
		want   string
	}{
		{domain.StatusPlanned, "Planned"},
		{domain.StatusBooked, "Booked"},
		{domain.StatusCompleted, "Completed"},
		{domain.DestinationStatus("archived"), "archived"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Contains(t, StatusPill(tt.status), tt.want)
		})
	}
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, ColorYellow, StatusColor(domain.StatusPlanned))
	assert.Equal(t, ColorBlue, StatusColor(domain.StatusBooked))
	assert.Equal(t, ColorGreen, StatusColor(domain.StatusCompleted))
}

func TestRenderBox(t *testing.T) {
	result := RenderBox("TEST", "content here")
	assert.Contains(t, result, "TEST")
	assert.Contains(t, result, "content here")
	// Should contain rounded border characters
	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")
}

func TestRenderBoxWithoutTitle(t *testing.T) {
	result := RenderBox("", "just content")
	assert.Contains(t, result, "just content")
	assert.Contains(t, result, "╭")
}
