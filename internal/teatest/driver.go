// Package teatest drives bubbletea models synchronously in tests.
//
// The Driver stands in for tea.Program: it calls Update directly and
// drains every returned Cmd before the next input, so a test observes the
// model only in settled states. Cmds that block (cursor blink timers) are
// abandoned after a short timeout.
package teatest

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainSteps bounds how many messages one input may produce.
const MaxDrainSteps = 200

// cmdTimeout separates message factories, which return at once, from
// blink and tick Cmds, which sleep for hundreds of milliseconds.
const cmdTimeout = 25 * time.Millisecond

// Driver is a synchronous test harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.QuitMsg is produced. The runtime normally
	// swallows that message, so the driver records it itself.
	Quitting bool

	// Seen lists every message fed to Update during draining, in order.
	Seen []tea.Msg
}

// Option configures the Driver during construction.
type Option func(*Driver)

// New creates a Driver for model. Call DrainInit to run Init.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithSize sends a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		d.Send(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// DrainInit runs the model's Init command to completion.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init())
}

// Send dispatches msg through Update and drains the result.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drain(cmd)
}

// Resize sends a WindowSizeMsg.
func (d *Driver) Resize(w, h int) {
	d.T.Helper()
	d.Send(tea.WindowSizeMsg{Width: w, Height: h})
}

// ── keys ─────────────────────────────────────────────────────────────────────

// SendKey sends a key of the given type.
func (d *Driver) SendKey(t tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: t})
}

// PressKey sends a single rune.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		if r == ' ' {
			d.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		d.PressKey(r)
	}
}

// Named key helpers.

func (d *Driver) PressEnter() {
	d.T.Helper()
	d.SendKey(tea.KeyEnter)
}

func (d *Driver) PressEsc() {
	d.T.Helper()
	d.SendKey(tea.KeyEsc)
}

func (d *Driver) PressTab() {
	d.T.Helper()
	d.SendKey(tea.KeyTab)
}

func (d *Driver) PressShiftTab() {
	d.T.Helper()
	d.SendKey(tea.KeyShiftTab)
}

func (d *Driver) PressUp() {
	d.T.Helper()
	d.SendKey(tea.KeyUp)
}

func (d *Driver) PressDown() {
	d.T.Helper()
	d.SendKey(tea.KeyDown)
}

func (d *Driver) PressLeft() {
	d.T.Helper()
	d.SendKey(tea.KeyLeft)
}

func (d *Driver) PressRight() {
	d.T.Helper()
	d.SendKey(tea.KeyRight)
}

func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.SendKey(tea.KeyCtrlC)
}

func (d *Driver) PressCtrlS() {
	d.T.Helper()
	d.SendKey(tea.KeyCtrlS)
}

// View returns the model's rendered output.
func (d *Driver) View() string {
	return d.Model.View()
}

// ── draining ─────────────────────────────────────────────────────────────────

// drain runs cmd and every Cmd it leads to, breadth first, feeding each
// resulting message through Update.
func (d *Driver) drain(cmd tea.Cmd) {
	d.T.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps >= MaxDrainSteps {
			d.T.Logf("teatest.Driver: drain limit (%d) reached", MaxDrainSteps)
			return
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil || d.Quitting {
			continue
		}

		msg := runWithTimeout(next)
		if msg == nil || isBlink(msg) {
			continue
		}
		if cmds, ok := subCmds(msg); ok {
			queue = append(queue, cmds...)
			continue
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			d.Quitting = true
		}

		d.Seen = append(d.Seen, msg)
		updated, nextCmd := d.Model.Update(msg)
		d.Model = updated
		queue = append(queue, nextCmd)
	}
}

// subCmds unpacks tea.BatchMsg and the unexported sequence message, both
// of which are slices of tea.Cmd.
func subCmds(msg tea.Msg) ([]tea.Cmd, bool) {
	if batch, ok := msg.(tea.BatchMsg); ok {
		return batch, true
	}
	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Slice || v.Type().Elem() != reflect.TypeOf(tea.Cmd(nil)) {
		return nil, false
	}
	cmds := make([]tea.Cmd, v.Len())
	for i := range cmds {
		cmds[i] = v.Index(i).Interface().(tea.Cmd)
	}
	return cmds, true
}

func runWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isBlink matches the unexported blink messages of bubbles/cursor, which
// chain into timer Cmds.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
