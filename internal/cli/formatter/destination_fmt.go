package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/travelboard/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	// CardMinWidth is the narrowest a destination card is drawn.
	CardMinWidth = 34
	// CardMaxWidth caps card width on wide terminals.
	CardMaxWidth = 48
)

// Title and subtitle shown above the dashboard.
const (
	DashboardTitle    = "Travel Planning Dashboard"
	DashboardSubtitle = "Plan and track your adventures around the world"
)

// StatCards renders the three aggregate cards: total destinations,
// upcoming trips and total budget. Cards stack vertically below 72 columns.
func StatCards(s domain.Summary, width int) string {
	cards := []string{
		statCard("Total Destinations", fmt.Sprintf("%d", s.Count), "◎", ColorBlue),
		statCard("Upcoming Trips", fmt.Sprintf("%d", s.Upcoming), "▦", ColorGreen),
		statCard("Total Budget", FormatBudget(s.TotalBudget), "$", ColorPurple),
	}
	if width > 0 && width < 72 {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards[0], " ", cards[1], " ", cards[2])
}

func statCard(label, value, icon string, accent lipgloss.Color) string {
	body := StyleDim.Render(label) + "\n" +
		StyleBold.Render(value) + "  " + lipgloss.NewStyle().Foreground(accent).Render(icon)
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(accent).
		PaddingLeft(1).
		Width(22).
		Render(body)
}

// StatusButtons renders the Planned / Booked / Done row of a card with the
// current status highlighted.
func StatusButtons(current domain.DestinationStatus) string {
	buttons := make([]string, 0, 3)
	for i, s := range domain.Statuses() {
		label := fmt.Sprintf("%d %s", i+1, s.Label())
		if s == current {
			buttons = append(buttons, lipgloss.NewStyle().
				Foreground(lipgloss.Color("#282828")).
				Background(StatusColor(s)).
				Bold(true).
				Padding(0, 1).
				Render(label))
			continue
		}
		buttons = append(buttons, StyleDim.Padding(0, 1).Render(label))
	}
	return strings.Join(buttons, " ")
}

// ActivityChips renders activity labels as chips, wrapping at width.
func ActivityChips(activities []string, width int) string {
	if len(activities) == 0 {
		return StyleDim.Render("no activities yet")
	}
	chip := lipgloss.NewStyle().Foreground(ColorBlue).Background(ColorChip).Padding(0, 1)

	var lines []string
	line := ""
	for _, a := range activities {
		c := chip.Render(Truncate(a, max(width-2, 1)))
		switch {
		case line == "":
			line = c
		case width > 0 && lipgloss.Width(line)+1+lipgloss.Width(c) > width:
			lines = append(lines, line)
			line = c
		default:
			line += " " + c
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

// CardWidth picks a card width for the given terminal width.
func CardWidth(termWidth int) int {
	w := termWidth - 4
	if w > CardMaxWidth {
		w = CardMaxWidth
	}
	if w < CardMinWidth {
		w = CardMinWidth
	}
	return w
}

// DestinationCard renders one destination. The selected card gets an
// orange border; the top edge carries the status colour.
func DestinationCard(d *domain.Destination, selected bool, width int, now time.Time) string {
	inner := width - 4

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(StatusColor(d.Status)).Render(strings.Repeat("▀", inner)))
	b.WriteString("\n")
	b.WriteString(StyleBold.Render(Truncate(d.Name, inner)) + "\n")
	b.WriteString(StyleDim.Render(Truncate(d.Country, inner)) + "\n\n")

	b.WriteString(StyleDim.Render("▦ ") + FormatDateRange(d.Dates) + "\n")
	if c := Countdown(d, now); c != "" {
		b.WriteString(StyleDim.Render("  "+c) + "\n")
	}
	b.WriteString(StyleDim.Render("$ ") + StyleBold.Render(FormatBudget(d.Budget)) + "\n\n")

	b.WriteString(StyleDim.Render("Activities:") + "\n")
	b.WriteString(ActivityChips(d.Activities, inner) + "\n")

	if d.Notes != "" {
		b.WriteString("\n" + StyleItalic.Width(inner).Render(d.Notes) + "\n")
	}

	b.WriteString("\n" + StatusButtons(d.Status))

	border := ColorDim
	if selected {
		border = ColorHeader
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width).
		Render(b.String())
}

// EmptyState is shown when the session holds no destinations.
func EmptyState() string {
	return RenderBox("", lipgloss.JoinVertical(lipgloss.Center,
		StyleDim.Render("◎"),
		StyleBold.Render("No destinations yet"),
		StyleDim.Render("Start planning your next adventure!"),
	))
}

// CardGrid lays cards out in as many columns as fit in termWidth, at most
// three. cardWidth is the content width passed to DestinationCard; the
// border adds two cells.
func CardGrid(cards []string, termWidth, cardWidth int) string {
	if len(cards) == 0 {
		return ""
	}
	cols := 1
	if termWidth > 0 {
		cols = max(1, (termWidth+1)/(cardWidth+3))
	}
	if cols > 3 {
		cols = 3
	}

	var rows []string
	for i := 0; i < len(cards); i += cols {
		end := min(i+cols, len(cards))
		row := make([]string, 0, 2*(end-i))
		for j, c := range cards[i:end] {
			if j > 0 {
				row = append(row, " ")
			}
			row = append(row, c)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

// FormatDashboard renders the whole dashboard as static text, used when
// stdout is not a terminal. selected < 0 highlights nothing.
func FormatDashboard(list []*domain.Destination, s domain.Summary, width, selected int, now time.Time) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(DashboardTitle) + "\n")
	b.WriteString(StyleDim.Render(DashboardSubtitle) + "\n\n")
	b.WriteString(StatCards(s, width) + "\n\n")

	if len(list) == 0 {
		b.WriteString(EmptyState() + "\n")
		return b.String()
	}

	cw := CardWidth(width)
	cards := make([]string, len(list))
	for i, d := range list {
		cards[i] = DestinationCard(d, i == selected, cw, now)
	}
	b.WriteString(CardGrid(cards, width, cw) + "\n")
	return b.String()
}
