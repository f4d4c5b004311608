package cli

import "github.com/alexanderramin/travelboard/internal/domain"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Draft is the single entry form buffer for the session.
	Draft *domain.Draft

	// Selected destination on the dashboard, if any.
	SelectedID   string
	SelectedName string

	// Terminal dimensions
	Width  int
	Height int
}

// SetSelected records the dashboard selection.
func (s *SharedState) SetSelected(d *domain.Destination) {
	if d == nil {
		s.SelectedID = ""
		s.SelectedName = ""
		return
	}
	s.SelectedID = d.ID
	s.SelectedName = d.Name
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator),
// status bar (3 lines: flash + separator + hints), and command bar (1 line).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 6
	if h < 1 {
		return 1
	}
	return h
}
