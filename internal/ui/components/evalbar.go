package components

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/chesscoach/internal/ui/theme"
)

// evalClamp is the advantage, in pawns, at which the bar is full.
const evalClamp = 8.0

// mateFloor is the smallest score rendered as a forced mate.
const mateFloor = 90.0

// EvalBar draws a horizontal evaluation bar in white's frame: the light
// part grows as white's advantage grows.
type EvalBar struct {
	Eval  float64
	Width int
}

// NewEvalBar creates a bar for eval, in pawns from white's point of view.
func NewEvalBar(eval float64, width int) EvalBar {
	return EvalBar{Eval: eval, Width: width}
}

// WhiteShare returns the fraction of the bar given to white.
func (e EvalBar) WhiteShare() float64 {
	v := math.Max(-evalClamp, math.Min(evalClamp, e.Eval))
	return 0.5 + v/(2*evalClamp)
}

// View renders the bar followed by the score.
func (e EvalBar) View() string {
	label := FormatEval(e.Eval)
	barWidth := e.Width - len(label) - 2
	if barWidth < 4 {
		barWidth = 4
	}

	white := int(math.Round(float64(barWidth) * e.WhiteShare()))
	black := barWidth - white

	return theme.EvalWhite.Render(strings.Repeat(" ", white)) +
		theme.EvalBlack.Render(strings.Repeat(" ", black)) +
		"  " + lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(label)
}

// FormatEval renders a pawn score as "+0.35", or "#" for forced mates.
func FormatEval(eval float64) string {
	switch {
	case eval >= mateFloor:
		return "+#"
	case eval <= -mateFloor:
		return "-#"
	}
	return fmt.Sprintf("%+.2f", eval)
}
