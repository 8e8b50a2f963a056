package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/chesscoach/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a prompt label and the app's
// colors.
type TextInput struct {
	Model    textinput.Model
	Label    string
	MaxWidth int
}

// NewTextInput creates a focused text input.
func NewTextInput(label, placeholder string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}
	return TextInput{Model: ti, Label: label, MaxWidth: maxWidth}
}

// Init starts the cursor blinking.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles key input.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label followed by the field.
func (t TextInput) View() string {
	if t.Label == "" {
		return t.Model.View()
	}
	return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(t.Label) + " " + t.Model.View()
}

// Value returns the trimmed input.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// Reset clears the field.
func (t *TextInput) Reset() {
	t.Model.Reset()
}
