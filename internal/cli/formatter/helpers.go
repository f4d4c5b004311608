package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/travelboard/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatBudget renders an amount in dollars with thousands separators and
// at most two decimals: 3500 -> "$3,500", 1234.5 -> "$1,234.5".
func FormatBudget(amount float64) string {
	return "$" + humanize.CommafWithDigits(amount, 2)
}

// TripDate renders one side of a trip's date range, "TBD" when unset.
func TripDate(t *time.Time) string {
	if t == nil {
		return "TBD"
	}
	return t.Format("Jan 2, 2006")
}

// FormatDateRange renders "Jun 15, 2025 - Jun 22, 2025", appending the
// night count when both ends are known.
func FormatDateRange(r domain.DateRange) string {
	s := TripDate(r.Start) + " - " + TripDate(r.End)
	switch n := r.Nights(); n {
	case 0:
		return s
	case 1:
		return s + " · 1 night"
	default:
		return fmt.Sprintf("%s · %d nights", s, n)
	}
}

// RelativeDateFrom returns a human-friendly relative date string from a reference time.
func RelativeDateFrom(t time.Time, now time.Time) string {
	days := int(math.Round(t.Sub(now).Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// Countdown describes when an upcoming trip starts relative to now.
// It is empty for completed trips and trips without a start date.
func Countdown(d *domain.Destination, now time.Time) string {
	if !d.IsUpcoming() || d.Dates.Start == nil {
		return ""
	}
	rel := strings.ToLower(RelativeDateFrom(*d.Dates.Start, now))
	if d.Dates.Start.Before(now) && rel != "today" {
		return "start was " + rel
	}
	return "starts " + rel
}

// Truncate shortens s to at most width cells, ending in "…" when cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
