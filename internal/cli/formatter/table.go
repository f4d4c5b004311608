package formatter

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/travelboard/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderTable renders an aligned table with a header separator line.
// Column widths are measured in visible cells so styled cells line up.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	const colGap = 2

	widths := make([]int, len(headers))
	measure := func(cells []string) {
		for i := 0; i < len(widths) && i < len(cells); i++ {
			widths[i] = max(widths[i], lipgloss.Width(cells[i]))
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(style(cell))
			if i < len(widths)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return StyleHeader.Render(s) })
	seps := make([]string, len(widths))
	for i, w := range widths {
		seps[i] = strings.Repeat("─", w)
	}
	writeRow(seps, Dim)
	for _, row := range rows {
		writeRow(row, func(s string) string { return s })
	}
	return b.String()
}

// DestinationTable lists destinations one per row, followed by the
// aggregate line.
func DestinationTable(list []*domain.Destination, s domain.Summary) string {
	if len(list) == 0 {
		return Dim("No destinations yet.") + "\n"
	}
	rows := make([][]string, 0, len(list))
	for i, d := range list {
		rows = append(rows, []string{
			Dim(strconv.Itoa(i+1)),
			d.Name,
			d.Country,
			FormatDateRange(d.Dates),
			FormatBudget(d.Budget),
			StatusPill(d.Status),
		})
	}
	out := RenderTable([]string{"#", "NAME", "COUNTRY", "DATES", "BUDGET", "STATUS"}, rows)
	return out + "\n" + SummaryLine(s) + "\n"
}

// SummaryLine renders the aggregates on one line.
func SummaryLine(s domain.Summary) string {
	return Dim("destinations ") + Bold(strconv.Itoa(s.Count)) +
		Dim("  upcoming ") + Bold(strconv.Itoa(s.Upcoming)) +
		Dim("  budget ") + Bold(FormatBudget(s.TotalBudget))
}
