package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/travelboard/internal/cli/formatter"
	"github.com/alexanderramin/travelboard/internal/domain"
	"github.com/alexanderramin/travelboard/internal/repository"
	tea "github.com/charmbracelet/bubbletea"
)

// executeCommand dispatches a text command and returns a tea.Cmd.
// Commands may return cmdOutputMsg for display, navigation messages
// for view transitions, or quitMsg for exit.
func (c *commandBar) executeCommand(input string) tea.Cmd {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "new", "add":
		return pushView(newDestinationFormView(c.state))
	case "delete", "rm":
		return c.cmdDelete()
	case "status":
		return c.cmdStatus(args)
	case "summary", "ls", "list":
		return c.cmdSummary()
	case "help", "?":
		return outputCmd(formatter.FormatHelp())
	case "clear":
		return nil
	case "exit", "quit":
		return func() tea.Msg { return quitMsg{} }
	default:
		return outputCmd(fmt.Sprintf("Unknown command: %s. Type 'help' for available commands.", cmd))
	}
}

// selectedDestination loads the dashboard selection.
func (c *commandBar) selectedDestination() (*domain.Destination, string) {
	if c.state.SelectedID == "" {
		return nil, formatter.StyleYellow.Render("No destination selected.")
	}
	d, err := c.state.App.Destinations.GetByID(context.Background(), c.state.SelectedID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, formatter.StyleYellow.Render("The selected destination no longer exists.")
	}
	if err != nil {
		return nil, shellError(err)
	}
	return d, ""
}

func (c *commandBar) cmdDelete() tea.Cmd {
	d, msg := c.selectedDestination()
	if d == nil {
		return outputCmd(msg)
	}
	c.Blur()
	return startDeleteWizard(c.state, d)
}

func (c *commandBar) cmdStatus(args []string) tea.Cmd {
	d, msg := c.selectedDestination()
	if d == nil {
		return outputCmd(msg)
	}
	if len(args) == 0 {
		c.Blur()
		return startStatusWizard(c.state, d)
	}

	status, err := domain.ParseStatus(args[0])
	if err != nil {
		return outputCmd(formatter.StyleYellow.Render("Usage: status <planned|booked|completed>"))
	}
	c.Blur()
	return setStatusCmd(c.state.App, d, status)
}

func (c *commandBar) cmdSummary() tea.Cmd {
	app := c.state.App
	return func() tea.Msg {
		ctx := context.Background()
		list, err := app.Destinations.List(ctx)
		if err != nil {
			return cmdOutputMsg{output: shellError(err)}
		}
		summary, err := app.Destinations.Summary(ctx)
		if err != nil {
			return cmdOutputMsg{output: shellError(err)}
		}
		return cmdOutputMsg{output: formatter.DestinationTable(list, summary)}
	}
}

// outputCmd returns a tea.Cmd that sends a cmdOutputMsg.
func outputCmd(s string) tea.Cmd {
	if s == "" {
		return nil
	}
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}
