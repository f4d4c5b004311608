package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/alexanderramin/travelboard/internal/cli/formatter"
	"github.com/alexanderramin/travelboard/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// formField indexes the focusable fields of the destination form.
type formField int

const (
	fieldName formField = iota
	fieldCountry
	fieldStart
	fieldEnd
	fieldBudget
	fieldStatus
	fieldActivity
	fieldNotes
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldName:     "Destination Name",
	fieldCountry:  "Country",
	fieldStart:    "Start Date",
	fieldEnd:      "End Date",
	fieldBudget:   "Budget ($)",
	fieldStatus:   "Status",
	fieldActivity: "Activities",
	fieldNotes:    "Notes",
}

type formKeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Save    key.Binding
	Close   key.Binding
	Discard key.Binding
	AddItem key.Binding
}

var formKeys = formKeyMap{
	Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
	Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
	Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	Discard: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "discard")),
	AddItem: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add activity")),
}

// destinationFormView edits the session draft. Every keystroke is pushed
// into the draft through the setter for that one field; ctrl+s hands the
// draft to the destination service. esc closes the form and keeps the
// draft for the next visit, ctrl+x discards it.
type destinationFormView struct {
	state  *SharedState
	draft  *domain.Draft
	inputs map[formField]*textinput.Model
	notes  textarea.Model
	focus  formField

	// Per-field format hints for dates and budget.
	fieldErr map[formField]string
	// Hint shown after a rejected save.
	saveErr string
}

func newDestinationFormView(state *SharedState) *destinationFormView {
	v := &destinationFormView{
		state:    state,
		draft:    state.Draft,
		inputs:   make(map[formField]*textinput.Model, 6),
		fieldErr: make(map[formField]string),
	}

	placeholders := map[formField]string{
		fieldName:     "e.g., Paris",
		fieldCountry:  "e.g., France",
		fieldStart:    "YYYY-MM-DD",
		fieldEnd:      "YYYY-MM-DD",
		fieldBudget:   "0",
		fieldActivity: "Add an activity and press enter",
	}
	for f, ph := range placeholders {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = ph
		ti.CharLimit = 200
		switch f {
		case fieldStart, fieldEnd:
			ti.CharLimit = len(domain.DateLayout)
		case fieldBudget:
			ti.CharLimit = 16
		}
		v.inputs[f] = &ti
	}

	ta := textarea.New()
	ta.Placeholder = "Any additional notes..."
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.CharLimit = 1000
	v.notes = ta

	v.loadFromDraft()
	v.setWidth(state.Width)
	v.focusField(fieldName)
	return v
}

// loadFromDraft fills the inputs from a draft left over from an earlier
// visit to the form.
func (v *destinationFormView) loadFromDraft() {
	c := v.draft.Candidate()
	v.inputs[fieldName].SetValue(c.Name)
	v.inputs[fieldCountry].SetValue(c.Country)
	v.inputs[fieldStart].SetValue(domain.FormatDate(c.Dates.Start))
	v.inputs[fieldEnd].SetValue(domain.FormatDate(c.Dates.End))
	if c.Budget != 0 {
		v.inputs[fieldBudget].SetValue(strconv.FormatFloat(c.Budget, 'f', -1, 64))
	}
	v.inputs[fieldActivity].SetValue(v.draft.PendingActivity())
	v.notes.SetValue(c.Notes)
}

func (v *destinationFormView) ID() ViewID    { return ViewDestinationForm }
func (v *destinationFormView) Title() string { return "New Destination" }

func (v *destinationFormView) ShortHelp() []key.Binding {
	hints := []key.Binding{formKeys.Next, formKeys.Save, formKeys.Close, formKeys.Discard}
	switch v.focus {
	case fieldActivity:
		hints = append(hints, formKeys.AddItem)
	case fieldStatus:
		hints = append(hints, key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "change")))
	}
	return hints
}

func (v *destinationFormView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *destinationFormView) setWidth(w int) {
	fw := max(20, min(60, w-24))
	for _, ti := range v.inputs {
		ti.Width = fw
	}
	v.notes.SetWidth(fw)
}

func (v *destinationFormView) focusField(f formField) {
	if in, ok := v.inputs[v.focus]; ok {
		in.Blur()
	}
	if v.focus == fieldNotes {
		v.notes.Blur()
	}
	v.focus = f
	if in, ok := v.inputs[f]; ok {
		in.Focus()
	}
	if f == fieldNotes {
		v.notes.Focus()
	}
}

func (v *destinationFormView) moveFocus(delta int) {
	next := (int(v.focus) + delta + int(fieldCount)) % int(fieldCount)
	v.focusField(formField(next))
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *destinationFormView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.setWidth(msg.Width)
		return v, nil
	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	// Cursor blink and other ticks go to the focused widget.
	return v, v.updateFocused(msg)
}

func (v *destinationFormView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, formKeys.Close):
		if v.draft.IsEmpty() {
			return v, completeCmd(nil)
		}
		return v, completeCmd(flashCmd(formatter.Dim("Draft kept. Press n to continue.")))
	case key.Matches(msg, formKeys.Discard):
		v.draft.Reset()
		return v, completeCmd(flashCmd(formatter.Dim("Discarded draft.")))
	case key.Matches(msg, formKeys.Save):
		return v, v.save()
	case key.Matches(msg, formKeys.Next):
		v.moveFocus(1)
		return v, nil
	case key.Matches(msg, formKeys.Prev):
		v.moveFocus(-1)
		return v, nil
	}

	switch v.focus {
	case fieldStatus:
		switch msg.Type {
		case tea.KeyLeft:
			v.cycleStatus(-1)
		case tea.KeyRight, tea.KeySpace:
			v.cycleStatus(1)
		case tea.KeyEnter:
			v.moveFocus(1)
		}
		return v, nil

	case fieldActivity:
		if msg.Type == tea.KeyEnter {
			if v.draft.AddActivity() {
				v.inputs[fieldActivity].SetValue("")
			}
			return v, nil
		}

	case fieldNotes:
		// enter inserts a newline in the notes area

	default:
		if msg.Type == tea.KeyEnter {
			v.moveFocus(1)
			return v, nil
		}
	}

	cmd := v.updateFocused(msg)
	v.syncField(v.focus)
	return v, cmd
}

func (v *destinationFormView) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if v.focus == fieldNotes {
		v.notes, cmd = v.notes.Update(msg)
		return cmd
	}
	if in, ok := v.inputs[v.focus]; ok {
		*in, cmd = in.Update(msg)
	}
	return cmd
}

// syncField writes one widget's value into the matching draft field.
// Dates and budget follow browser input semantics: text that does not
// parse leaves the field unset.
func (v *destinationFormView) syncField(f formField) {
	delete(v.fieldErr, f)
	v.saveErr = ""

	switch f {
	case fieldName:
		v.draft.SetName(v.inputs[f].Value())
	case fieldCountry:
		v.draft.SetCountry(v.inputs[f].Value())
	case fieldStart, fieldEnd:
		t, err := domain.ParseDate(v.inputs[f].Value())
		if err != nil {
			v.fieldErr[f] = "use YYYY-MM-DD"
		}
		if f == fieldStart {
			v.draft.SetStart(t)
		} else {
			v.draft.SetEnd(t)
		}
	case fieldBudget:
		amount, err := domain.ParseBudget(v.inputs[f].Value())
		if err != nil {
			v.fieldErr[f] = "enter a number"
		}
		v.draft.SetBudget(amount)
	case fieldActivity:
		v.draft.SetPendingActivity(v.inputs[f].Value())
	case fieldNotes:
		v.draft.SetNotes(v.notes.Value())
	}
}

func (v *destinationFormView) cycleStatus(delta int) {
	statuses := domain.Statuses()
	current := v.draft.Candidate().Status
	idx := 0
	for i, s := range statuses {
		if s == current {
			idx = i
		}
	}
	idx = (idx + delta + len(statuses)) % len(statuses)
	v.draft.SetStatus(statuses[idx])
}

// save commits the draft. A rejected draft keeps the form open with a hint.
func (v *destinationFormView) save() tea.Cmd {
	if err := v.draft.Validate(); err != nil {
		v.saveErr = saveHint(err)
		if errors.Is(err, domain.ErrNameRequired) {
			v.focusField(fieldName)
		} else {
			v.focusField(fieldCountry)
		}
		return nil
	}

	d, ok, err := v.state.App.Destinations.CommitDraft(context.Background(), v.draft)
	if err != nil {
		v.saveErr = err.Error()
		return nil
	}
	if !ok {
		v.saveErr = "Destination name and country are required."
		return nil
	}
	return completeCmd(flashCmd(formatter.StyleGreen.Render("✔") + " Added " + formatter.Bold(d.Name)))
}

func saveHint(err error) string {
	switch {
	case errors.Is(err, domain.ErrNameRequired):
		return "Destination name is required."
	case errors.Is(err, domain.ErrCountryRequired):
		return "Country is required."
	default:
		return err.Error()
	}
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *destinationFormView) View() string {
	c := v.draft.Candidate()
	labelStyle := lipgloss.NewStyle().Width(18)

	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("Add New Destination") + "\n\n")

	for f := fieldName; f < fieldCount; f++ {
		label := fieldLabels[f]
		if f == fieldName || f == fieldCountry {
			label += " *"
		}
		if f == v.focus {
			label = formatter.StyleHeader.Render("› " + label)
		} else {
			label = formatter.Dim("  " + label)
		}

		var field string
		switch f {
		case fieldStatus:
			field = formatter.StatusButtons(c.Status)
		case fieldNotes:
			field = v.notes.View()
		default:
			field = v.inputs[f].View()
		}
		if hint := v.fieldErr[f]; hint != "" {
			field += "  " + formatter.StyleYellow.Render(hint)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), field) + "\n")

		if f == fieldActivity {
			b.WriteString(labelStyle.Render("") + formatter.ActivityChips(c.Activities, 60) + "\n")
		}
	}

	if c.Dates.Nights() > 0 {
		b.WriteString("\n" + formatter.Dim("  "+formatter.FormatDateRange(c.Dates)) + "\n")
	}
	if v.saveErr != "" {
		b.WriteString("\n  " + formatter.StyleRed.Render(v.saveErr) + "\n")
	}
	return b.String()
}
