package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/chesscoach/internal/ui/layout"
)

// Screen is one page of the review UI. The app draws the header and footer
// around whatever View returns.
type Screen interface {
	// Init returns the command that loads the screen's data, if any.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen body in the given area.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider is implemented by screens with their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens that can hold keyboard focus in a
// text field. While Capturing reports true the app forwards Esc to the
// screen instead of navigating back.
type InputCapturer interface {
	Capturing() bool
}
