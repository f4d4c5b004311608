package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/travelboard/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaryOf(t *testing.T, app *App) domain.Summary {
	t.Helper()
	s, err := app.Destinations.Summary(context.Background())
	require.NoError(t, err)
	return s
}

// ── dashboard ────────────────────────────────────────────────────────────────

func TestTUI_DashboardShowsSeeds(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))

	view := d.View()
	assert.Contains(t, view, "Travel Planning Dashboard")
	assert.Contains(t, view, "Plan and track your adventures around the world")
	assert.Contains(t, view, "Total Destinations")
	assert.Contains(t, view, "Upcoming Trips")
	assert.Contains(t, view, "$7,700")
	assert.Contains(t, view, "Paris")
	assert.Contains(t, view, "Tokyo")
	assert.Contains(t, view, "Book accommodation near Latin Quarter")
	assert.Equal(t, "Paris", d.State().SelectedName)
}

func TestTUI_EmptyState(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	view := d.View()
	assert.Contains(t, view, "No destinations yet")
	assert.Contains(t, view, "Start planning your next adventure!")
	assert.Empty(t, d.State().SelectedID)
}

func TestTUI_CursorMovesSelection(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))

	d.PressRight()
	assert.Equal(t, "Tokyo", d.State().SelectedName)

	d.PressRight()
	assert.Equal(t, "Tokyo", d.State().SelectedName, "cursor stops at the last card")

	d.PressKey('k')
	assert.Equal(t, "Paris", d.State().SelectedName)
}

func TestTUI_StatusKeysUpdateOnlySelected(t *testing.T) {
	app := seededApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('3')

	list := listDestinations(t, app)
	require.Len(t, list, 2)
	assert.Equal(t, domain.StatusCompleted, list[0].Status)
	assert.Equal(t, domain.StatusBooked, list[1].Status)
	assert.Equal(t, 3500.0, list[0].Budget)

	s := summaryOf(t, app)
	assert.Equal(t, 1, s.Upcoming)
	assert.Equal(t, 7700.0, s.TotalBudget)
	assert.Contains(t, d.Flash(), "Paris")

	d.PressKey('b')
	list = listDestinations(t, app)
	assert.Equal(t, domain.StatusBooked, list[0].Status)
	assert.Equal(t, 2, summaryOf(t, app).Upcoming)
}

func TestTUI_FlashClearsOnNextKey(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))

	d.PressKey('2')
	require.NotEmpty(t, d.Flash())

	d.PressKey('j')
	assert.Empty(t, d.Flash())
}

func TestTUI_DeleteSelected(t *testing.T) {
	app := seededApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('x')

	list := listDestinations(t, app)
	require.Len(t, list, 1)
	assert.Equal(t, "Tokyo", list[0].Name)
	assert.Equal(t, "Tokyo", d.State().SelectedName, "selection falls to the next card")
	assert.NotContains(t, d.View(), "Eiffel Tower")

	d.PressKey('x')
	assert.Empty(t, listDestinations(t, app))
	assert.Contains(t, d.View(), "No destinations yet")

	// Nothing selected: delete is a no-op.
	d.PressKey('x')
	assert.Empty(t, listDestinations(t, app))
}

func TestTUI_QuitKey(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))

	d.PressKey('q')
	assert.True(t, d.IsQuitting())
}

// ── form ─────────────────────────────────────────────────────────────────────

func TestTUI_FormCommitAddsDestination(t *testing.T) {
	app := seededApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('n')
	require.Equal(t, ViewDestinationForm, d.ActiveViewID())

	d.Type("Rome")
	d.PressTab()
	d.Type("Italy")
	d.PressTab()
	d.Type("2025-10-01")
	d.PressTab()
	d.Type("2025-10-05")
	d.PressTab()
	d.Type("1500")
	d.PressTab()
	d.PressRight() // planned -> booked
	d.PressTab()
	d.Type("Colosseum")
	d.PressEnter()
	d.Type("Vatican Museums")
	d.PressEnter()
	d.PressTab()
	d.Type("Buy the Roma Pass")
	d.PressCtrlS()

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	list := listDestinations(t, app)
	require.Len(t, list, 3)

	rome := list[2]
	assert.Equal(t, "Rome", rome.Name)
	assert.Equal(t, "Italy", rome.Country)
	assert.Equal(t, 4, rome.Dates.Nights())
	assert.Equal(t, 1500.0, rome.Budget)
	assert.Equal(t, domain.StatusBooked, rome.Status)
	assert.Equal(t, []string{"Colosseum", "Vatican Museums"}, rome.Activities)
	assert.Equal(t, "Buy the Roma Pass", rome.Notes)

	assert.True(t, d.State().Draft.IsEmpty(), "draft resets after commit")
	assert.Equal(t, 9200.0, summaryOf(t, app).TotalBudget)
	assert.Contains(t, d.View(), "Rome")
	assert.Contains(t, d.Flash(), "Rome")
}

func TestTUI_FormRejectsMissingCountry(t *testing.T) {
	app := seededApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('n')
	d.Type("Rome")
	d.PressCtrlS()

	assert.Equal(t, ViewDestinationForm, d.ActiveViewID(), "form stays open")
	assert.Contains(t, d.View(), "Country is required.")
	assert.Len(t, listDestinations(t, app), 2)
	assert.Equal(t, "Rome", d.State().Draft.Candidate().Name, "draft is kept")
}

func TestTUI_FormRejectsEmptyName(t *testing.T) {
	app := seededApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('n')
	d.PressTab()
	d.Type("Italy")
	d.PressCtrlS()

	assert.Equal(t, ViewDestinationForm, d.ActiveViewID())
	assert.Contains(t, d.View(), "Destination name is required.")
	assert.Equal(t, fieldName, d.Form().focus)
	assert.Len(t, listDestinations(t, app), 2)
}

func TestTUI_FormAcceptsWhitespaceName(t *testing.T) {
	app := seededApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('n')
	d.Type("   ")
	d.PressTab()
	d.Type("Italy")
	d.PressCtrlS()

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	list := listDestinations(t, app)
	require.Len(t, list, 3)
	assert.Equal(t, "   ", list[2].Name)
	assert.Equal(t, "Italy", list[2].Country)
}

func TestTUI_FormCapturesGlobalKeys(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))

	d.PressKey('n')
	d.Type("qx:")

	assert.False(t, d.IsQuitting())
	assert.False(t, d.CmdBarFocused())
	assert.Equal(t, "qx:", d.State().Draft.Candidate().Name)
}

func TestTUI_FormEscKeepsDraft(t *testing.T) {
	app := seededApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('n')
	d.Type("Rome")
	d.PressTab()
	d.Type("Italy")
	d.PressTab()
	d.Type("2025-10-01")
	d.PressEsc()

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Len(t, listDestinations(t, app), 2, "closing does not commit")
	assert.Equal(t, "Rome", d.State().Draft.Candidate().Name)
	assert.Contains(t, d.Flash(), "Draft kept")

	d.PressKey('n')
	require.Equal(t, ViewDestinationForm, d.ActiveViewID())
	assert.Equal(t, "Rome", d.Form().inputs[fieldName].Value())
	assert.Equal(t, "Italy", d.Form().inputs[fieldCountry].Value())
	assert.Equal(t, "2025-10-01", d.Form().inputs[fieldStart].Value())

	d.PressCtrlS()
	list := listDestinations(t, app)
	require.Len(t, list, 3)
	assert.Equal(t, "Rome", list[2].Name)
	assert.True(t, d.State().Draft.IsEmpty())
}

func TestTUI_FormEscOnEmptyDraftHasNoNotice(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))

	d.PressKey('n')
	d.PressEsc()

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Empty(t, d.Flash())
}

func TestTUI_FormDiscardResetsDraft(t *testing.T) {
	app := seededApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('n')
	d.Type("Rome")
	d.SendKey(tea.KeyCtrlX)

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.True(t, d.State().Draft.IsEmpty())
	assert.Len(t, listDestinations(t, app), 2)
	assert.Contains(t, d.Flash(), "Discarded draft.")

	d.PressKey('n')
	assert.Empty(t, d.Form().inputs[fieldName].Value())
}

func TestTUI_FormBlankActivityIgnored(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))

	d.PressKey('n')
	for i := 0; i < int(fieldActivity); i++ {
		d.PressTab()
	}
	require.Equal(t, fieldActivity, d.Form().focus)

	d.PressEnter()
	d.Type("  ")
	d.PressEnter()
	assert.Empty(t, d.State().Draft.Candidate().Activities)
	assert.Equal(t, "  ", d.State().Draft.PendingActivity(), "blank text stays staged")

	d.SendKey(tea.KeyBackspace)
	d.SendKey(tea.KeyBackspace)
	d.Type("Gondola ride")
	d.PressEnter()
	assert.Equal(t, []string{"Gondola ride"}, d.State().Draft.Candidate().Activities)
	assert.Empty(t, d.State().Draft.PendingActivity())
	assert.Empty(t, d.Form().inputs[fieldActivity].Value())
}

func TestTUI_FormFormatHints(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))

	d.PressKey('n')
	d.PressTab()
	d.PressTab()
	d.Type("2025-13")
	assert.Contains(t, d.View(), "use YYYY-MM-DD")
	assert.Nil(t, d.State().Draft.Candidate().Dates.Start)

	d.PressTab()
	d.PressTab()
	d.Type("abc")
	assert.Contains(t, d.View(), "enter a number")
	assert.Zero(t, d.State().Draft.Candidate().Budget)
}

func TestTUI_FormRejectsNonFiniteBudget(t *testing.T) {
	for _, input := range []string{"Inf", "NaN", "0x1p4", "1e400"} {
		t.Run(input, func(t *testing.T) {
			app := seededApp(t)
			d := NewTestDriver(t, app)

			d.PressKey('n')
			d.Type("Rome")
			d.PressTab()
			d.Type("Italy")
			for i := fieldCountry; i < fieldBudget; i++ {
				d.PressTab()
			}
			require.Equal(t, fieldBudget, d.Form().focus)
			d.Type(input)
			assert.Contains(t, d.View(), "enter a number")
			assert.Zero(t, d.State().Draft.Candidate().Budget)

			d.PressCtrlS()
			assert.Equal(t, ViewDashboard, d.ActiveViewID())
			list := listDestinations(t, app)
			require.Len(t, list, 3)
			assert.Zero(t, list[2].Budget)
			assert.Equal(t, 7700.0, summaryOf(t, app).TotalBudget)
		})
	}
}

func TestTUI_FormShiftTabWraps(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))

	d.PressKey('n')
	d.PressShiftTab()
	assert.Equal(t, fieldNotes, d.Form().focus)
}

// ── command bar ──────────────────────────────────────────────────────────────

func TestTUI_CommandSummary(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))

	d.Command("summary")

	out := d.LastOutput()
	assert.Contains(t, out, "Paris")
	assert.Contains(t, out, "Tokyo")
	assert.Contains(t, out, "$7,700")
	assert.Contains(t, d.View(), "Jun 15, 2025")
}

func TestTUI_CommandStatus(t *testing.T) {
	app := seededApp(t)
	d := NewTestDriver(t, app)

	d.Command("status completed")

	list := listDestinations(t, app)
	assert.Equal(t, domain.StatusCompleted, list[0].Status)
	assert.Equal(t, 1, summaryOf(t, app).Upcoming)
}

func TestTUI_CommandStatusRejectsUnknown(t *testing.T) {
	app := seededApp(t)
	d := NewTestDriver(t, app)

	d.Command("status cancelled")

	assert.Contains(t, d.LastOutput(), "Usage: status")
	assert.Equal(t, domain.StatusPlanned, listDestinations(t, app)[0].Status)
}

func TestTUI_CommandStatusWithoutArgOpensPicker(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))

	d.Command("status")
	assert.Equal(t, ViewWizard, d.ActiveViewID())

	d.PressEsc()
	assert.Equal(t, ViewDashboard, d.ActiveViewID())
}

func TestTUI_CommandDeleteAsksFirst(t *testing.T) {
	app := seededApp(t)
	d := NewTestDriver(t, app)

	d.Command("delete")
	require.Equal(t, ViewWizard, d.ActiveViewID())

	d.PressEsc()
	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Len(t, listDestinations(t, app), 2)
	assert.Contains(t, d.Flash(), "Cancelled")
}

func TestTUI_CommandWithoutSelection(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Command("delete")
	assert.Contains(t, d.LastOutput(), "No destination selected.")
}

func TestTUI_CommandNewOpensForm(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))

	d.Command("new")
	assert.Equal(t, ViewDestinationForm, d.ActiveViewID())
	assert.False(t, d.CmdBarFocused())
}

func TestTUI_CommandHelpAndUnknown(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))

	d.Command("help")
	assert.Contains(t, d.LastOutput(), "ctrl+s")

	d.Command("fly")
	assert.Contains(t, d.LastOutput(), "Unknown command: fly")
}

func TestTUI_CommandQuit(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))

	d.Command("quit")
	assert.True(t, d.IsQuitting())
}

func TestTUI_StatusPickerKey(t *testing.T) {
	d := NewTestDriver(t, seededApp(t))

	d.PressKey('s')
	assert.Equal(t, ViewWizard, d.ActiveViewID())
	assert.Contains(t, d.View(), "Status for Paris?")

	d.PressEsc()
	assert.Equal(t, ViewDashboard, d.ActiveViewID())
}
