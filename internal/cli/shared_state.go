package cli

import "github.com/alexanderramin/visotime/internal/form"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Draft is the last entry form input. It survives a failed create so
	// the form reopens with the user's values, and is reset (keeping the
	// date) after a successful one.
	Draft form.Entry

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
