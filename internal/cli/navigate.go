package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// refreshViewMsg asks every view on the stack to reload its data after
// a mutation.
type refreshViewMsg struct{}

// cmdOutputMsg carries text output from a command execution
// to be displayed transiently in the content area.
type cmdOutputMsg struct {
	output string
}

// flashMsg sets a one-line notice above the status bar. It is cleared by
// the next key press.
type flashMsg struct {
	text string
}

// quitMsg signals the app to quit.
type quitMsg struct{}

// wizardCompleteMsg is sent when a wizard or form view finishes.
// The appModel pops the view, then runs nextCmd alongside a refresh.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func refreshCmd() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}

func flashCmd(text string) tea.Cmd {
	return func() tea.Msg { return flashMsg{text: text} }
}

// completeCmd pops the top view and runs next.
func completeCmd(next tea.Cmd) tea.Cmd {
	return func() tea.Msg { return wizardCompleteMsg{nextCmd: next} }
}
