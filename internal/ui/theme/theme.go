package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette: dark board tones with a warm highlight.
var (
	Primary   = lipgloss.Color("#E0B35A") // Brass
	Secondary = lipgloss.Color("#7FA650") // Board green
	Accent    = lipgloss.Color("#5DA9E9") // Sky
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F1ECE2") // Ivory
	TextDim   = lipgloss.Color("#9A9386") // Taupe
	BgDark    = lipgloss.Color("#161512") // Near black
	BgCard    = lipgloss.Color("#262421") // Walnut
	Border    = lipgloss.Color("#3C3A36") // Graphite

	LightSquare = lipgloss.Color("#F0D9B5")
	DarkSquare  = lipgloss.Color("#B58863")
)

// Move classification colors, keyed by label.
var classificationColors = map[string]color.Color{
	"Missed Win": lipgloss.Color("#A855F7"),
	"Brilliant":  lipgloss.Color("#1BADA6"),
	"Excellent":  lipgloss.Color("#5DA9E9"),
	"Good":       lipgloss.Color("#7FA650"),
	"Neutral":    lipgloss.Color("#9A9386"),
	"Inaccuracy": lipgloss.Color("#F7C045"),
	"Mistake":    lipgloss.Color("#E58F2A"),
	"Blunder":    lipgloss.Color("#CA3431"),
}

// ClassificationColor returns the color for a move label, or Text for
// unknown labels.
func ClassificationColor(label string) color.Color {
	if c, ok := classificationColors[label]; ok {
		return c
	}
	return Text
}

// Classification renders a move label in its color.
func Classification(label string) string {
	return lipgloss.NewStyle().Foreground(ClassificationColor(label)).Bold(true).Render(label)
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error)
)

// Evaluation bar halves.
var (
	EvalWhite = lipgloss.NewStyle().
			Background(LightSquare)

	EvalBlack = lipgloss.NewStyle().
			Background(DarkSquare)
)
