package cli

import (
	"fmt"

	"github.com/alexanderramin/travelboard/internal/cli/formatter"
	"github.com/alexanderramin/travelboard/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// travelboardHuhTheme returns a huh theme using the Gruvbox palette.
func travelboardHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardSelectStatus creates a huh form to pick a status, starting on the
// destination's current one.
func wizardSelectStatus(d *domain.Destination, result *domain.DestinationStatus) *huh.Form {
	*result = d.Status
	options := make([]huh.Option[domain.DestinationStatus], 0, 3)
	for _, s := range domain.Statuses() {
		options = append(options, huh.NewOption(s.Label(), s))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.DestinationStatus]().
				Title(fmt.Sprintf("Status for %s?", d.Name)).
				Options(options...).
				Value(result),
		),
	).WithTheme(travelboardHuhTheme()).WithShowHelp(false)
}

// wizardConfirmDelete asks before removing a destination.
func wizardConfirmDelete(d *domain.Destination, confirmed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %s, %s?", d.Name, d.Country)).
				Description("Its activities and notes go with it.").
				Affirmative("Delete").
				Negative("Keep").
				Value(confirmed),
		),
	).WithTheme(travelboardHuhTheme()).WithShowHelp(false)
}

// startStatusWizard pushes the status picker for d.
func startStatusWizard(state *SharedState, d *domain.Destination) tea.Cmd {
	status := new(domain.DestinationStatus)
	form := wizardSelectStatus(d, status)
	return startWizardCmd(state, "Status", form, func() tea.Cmd {
		return setStatusCmd(state.App, d, *status)
	})
}

// startDeleteWizard pushes a confirmation before deleting d.
func startDeleteWizard(state *SharedState, d *domain.Destination) tea.Cmd {
	confirmed := new(bool)
	form := wizardConfirmDelete(d, confirmed)
	return startWizardCmd(state, "Delete", form, func() tea.Cmd {
		if !*confirmed {
			return flashCmd(formatter.Dim("Kept " + d.Name + "."))
		}
		return deleteDestinationCmd(state.App, d)
	})
}
