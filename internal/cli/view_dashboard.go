package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/travelboard/internal/cli/formatter"
	"github.com/alexanderramin/travelboard/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ── messages ─────────────────────────────────────────────────────────────────

// dashboardLoadedMsg signals that the destination list has been loaded.
type dashboardLoadedMsg struct {
	list    []*domain.Destination
	summary domain.Summary
	err     error
}

// ── key map ──────────────────────────────────────────────────────────────────

type dashboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	New       key.Binding
	Planned   key.Binding
	Booked    key.Binding
	Completed key.Binding
	Status    key.Binding
	Delete    key.Binding
}

var dashboardKeys = dashboardKeyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	New:       key.NewBinding(key.WithKeys("n", "a"), key.WithHelp("n", "new")),
	Planned:   key.NewBinding(key.WithKeys("1", "p"), key.WithHelp("1-3", "status")),
	Booked:    key.NewBinding(key.WithKeys("2", "b")),
	Completed: key.NewBinding(key.WithKeys("3", "c")),
	Status:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "pick status")),
	Delete:    key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete")),
}

// ── view ─────────────────────────────────────────────────────────────────────

// dashboardView is the home screen: title, stat cards and one card per
// destination in display order.
type dashboardView struct {
	state   *SharedState
	list    []*domain.Destination
	summary domain.Summary
	loading bool
	err     error

	cursor int
	vp     viewport.Model
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{
		state:   state,
		loading: true,
		vp:      viewport.New(0, 0),
	}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	k := dashboardKeys
	return []key.Binding{k.Down, k.New, k.Planned, k.Status, k.Delete,
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.loadData()
}

func (v *dashboardView) loadData() tea.Cmd {
	svc := v.state.App.Destinations
	return func() tea.Msg {
		ctx := context.Background()
		list, err := svc.List(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		summary, err := svc.Summary(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		return dashboardLoadedMsg{list: list, summary: summary}
	}
}

func (v *dashboardView) selected() *domain.Destination {
	if v.cursor < 0 || v.cursor >= len(v.list) {
		return nil
	}
	return v.list[v.cursor]
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err != nil {
			return v, nil
		}
		v.applyList(msg.list, msg.summary)
		return v, nil

	case refreshViewMsg:
		return v, v.loadData()

	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

// applyList swaps in freshly loaded data and keeps the selection on the
// same destination when it still exists.
func (v *dashboardView) applyList(list []*domain.Destination, summary domain.Summary) {
	prevID := v.state.SelectedID
	v.list = list
	v.summary = summary

	v.cursor = min(v.cursor, len(list)-1)
	for i, d := range list {
		if d.ID == prevID {
			v.cursor = i
			break
		}
	}
	v.cursor = max(v.cursor, 0)
	v.state.SetSelected(v.selected())
}

func (v *dashboardView) moveCursor(delta int) {
	if len(v.list) == 0 {
		return
	}
	v.cursor = max(0, min(len(v.list)-1, v.cursor+delta))
	v.state.SetSelected(v.selected())
}

func (v *dashboardView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := dashboardKeys
	switch {
	case key.Matches(msg, k.Up):
		v.moveCursor(-v.columns())
		return v, nil
	case key.Matches(msg, k.Down):
		v.moveCursor(v.columns())
		return v, nil
	case msg.Type == tea.KeyLeft:
		v.moveCursor(-1)
		return v, nil
	case msg.Type == tea.KeyRight:
		v.moveCursor(1)
		return v, nil
	case key.Matches(msg, k.New):
		return v, pushView(newDestinationFormView(v.state))
	}

	d := v.selected()
	if d == nil {
		return v, nil
	}

	switch {
	case key.Matches(msg, k.Planned):
		return v, setStatusCmd(v.state.App, d, domain.StatusPlanned)
	case key.Matches(msg, k.Booked):
		return v, setStatusCmd(v.state.App, d, domain.StatusBooked)
	case key.Matches(msg, k.Completed):
		return v, setStatusCmd(v.state.App, d, domain.StatusCompleted)
	case key.Matches(msg, k.Status):
		return v, startStatusWizard(v.state, d)
	case key.Matches(msg, k.Delete):
		return v, deleteDestinationCmd(v.state.App, d)
	}
	return v, nil
}

// columns returns how many cards share a grid row at the current width.
func (v *dashboardView) columns() int {
	if v.state.Width <= 0 {
		return 1
	}
	cw := formatter.CardWidth(v.state.Width)
	return max(1, min(3, (v.state.Width+1)/(cw+3)))
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *dashboardView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading destinations...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render(fmt.Sprintf("Error: %v", v.err))
	}

	content, selTop, selHeight := v.renderContent()
	if v.state.Height <= 0 || v.vp.Height <= 0 {
		return content
	}

	v.vp.SetContent(content)
	switch {
	case selTop < v.vp.YOffset:
		v.vp.SetYOffset(selTop)
	case selTop+selHeight > v.vp.YOffset+v.vp.Height:
		v.vp.SetYOffset(selTop + selHeight - v.vp.Height)
	}
	return v.vp.View()
}

// renderContent returns the full dashboard plus the line offset and
// height of the grid row holding the selected card.
func (v *dashboardView) renderContent() (content string, selTop, selHeight int) {
	width := v.state.Width

	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render(formatter.DashboardTitle) + "\n")
	b.WriteString(formatter.Dim(formatter.DashboardSubtitle) + "\n\n")
	b.WriteString(formatter.StatCards(v.summary, width) + "\n\n")

	if len(v.list) == 0 {
		b.WriteString(formatter.EmptyState() + "\n")
		b.WriteString(formatter.Dim("  press n to add a destination"))
		return b.String(), 0, 0
	}

	now := v.state.App.now()
	cw := formatter.CardWidth(width)
	cols := v.columns()
	top := lipgloss.Height(b.String()) - 1

	for i := 0; i < len(v.list); i += cols {
		end := min(i+cols, len(v.list))
		cards := make([]string, 0, end-i)
		for j := i; j < end; j++ {
			cards = append(cards, formatter.DestinationCard(v.list[j], j == v.cursor, cw, now))
		}
		row := formatter.CardGrid(cards, width, cw)
		h := lipgloss.Height(row)
		if v.cursor >= i && v.cursor < end {
			selTop, selHeight = top, h
		}
		b.WriteString(row + "\n")
		top += h
	}
	return strings.TrimRight(b.String(), "\n"), selTop, selHeight
}

// ── actions ──────────────────────────────────────────────────────────────────

func setStatusCmd(app *App, d *domain.Destination, status domain.DestinationStatus) tea.Cmd {
	if d.Status == status {
		return nil
	}
	id, name := d.ID, d.Name
	return func() tea.Msg {
		if err := app.Destinations.UpdateStatus(context.Background(), id, status); err != nil {
			return cmdOutputMsg{output: shellError(err)}
		}
		return tea.BatchMsg{
			refreshCmd(),
			flashCmd(fmt.Sprintf("%s %s %s %s",
				formatter.StyleGreen.Render("✔"), formatter.Bold(name), formatter.Dim("→"), formatter.StatusPill(status))),
		}
	}
}

func deleteDestinationCmd(app *App, d *domain.Destination) tea.Cmd {
	id, name := d.ID, d.Name
	return func() tea.Msg {
		if err := app.Destinations.Delete(context.Background(), id); err != nil {
			return cmdOutputMsg{output: shellError(err)}
		}
		return tea.BatchMsg{
			refreshCmd(),
			flashCmd(formatter.StyleRed.Render("✘") + " Deleted " + formatter.Bold(name)),
		}
	}
}

// shellError renders an error for the content area.
func shellError(err error) string {
	return formatter.StyleRed.Render("Error: ") + err.Error()
}
