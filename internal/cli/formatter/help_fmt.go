package formatter

import (
	"fmt"
	"strings"
)

type helpEntry struct {
	keys string
	desc string
}

var dashboardHelp = []helpEntry{
	{"↑/↓ j/k ←/→", "select a destination"},
	{"n / a", "add a destination"},
	{"1 2 3 / p b c", "mark planned, booked or completed"},
	{"s", "pick a status"},
	{"x / delete", "delete the selected destination"},
	{":", "open the command bar"},
	{"q / ctrl+c", "quit"},
}

var formHelp = []helpEntry{
	{"tab / shift+tab", "next or previous field"},
	{"←/→", "change status"},
	{"enter", "add the typed activity"},
	{"ctrl+s", "save the destination"},
	{"esc", "close the form, keeping the draft"},
	{"ctrl+x", "discard the draft"},
}

var commandHelp = []helpEntry{
	{"new", "open the destination form"},
	{"delete", "delete the selected destination (asks first)"},
	{"status [planned|booked|completed]", "change the selected destination's status"},
	{"summary", "list destinations with totals"},
	{"help", "show this help"},
	{"quit", "leave travelboard"},
}

// FormatHelp renders keybindings and command bar commands.
func FormatHelp() string {
	var b strings.Builder
	writeSection(&b, "Dashboard", dashboardHelp)
	b.WriteString("\n")
	writeSection(&b, "Form", formHelp)
	b.WriteString("\n")
	writeSection(&b, "Commands", commandHelp)
	b.WriteString("\n" + Dim("Destinations live for this session only."))
	return RenderBox("Help", b.String())
}

func writeSection(b *strings.Builder, title string, entries []helpEntry) {
	width := 0
	for _, e := range entries {
		width = max(width, len([]rune(e.keys)))
	}
	b.WriteString(Header(title) + "\n")
	for _, e := range entries {
		pad := strings.Repeat(" ", width-len([]rune(e.keys)))
		fmt.Fprintf(b, "  %s%s  %s\n", StyleBlue.Render(e.keys), pad, Dim(e.desc))
	}
}
