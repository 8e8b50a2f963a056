package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestEvalBar_WhiteShare(t *testing.T) {
	assert.InDelta(t, 0.5, NewEvalBar(0, 40).WhiteShare(), 1e-9)
	assert.InDelta(t, 1.0, NewEvalBar(99.8, 40).WhiteShare(), 1e-9)
	assert.InDelta(t, 0.0, NewEvalBar(-12, 40).WhiteShare(), 1e-9)
	assert.Greater(t, NewEvalBar(1.5, 40).WhiteShare(), NewEvalBar(0.5, 40).WhiteShare())
}

func TestFormatEval(t *testing.T) {
	assert.Equal(t, "+0.35", FormatEval(0.35))
	assert.Equal(t, "-1.20", FormatEval(-1.2))
	assert.Equal(t, "+0.00", FormatEval(0))
	assert.Equal(t, "+#", FormatEval(99.7))
	assert.Equal(t, "-#", FormatEval(-100))
}

func TestEvalBar_ViewShowsScore(t *testing.T) {
	assert.Contains(t, NewEvalBar(2.5, 30).View(), "+2.50")
}

func TestTextInput_TypingAndReset(t *testing.T) {
	in := NewTextInput("Ask:", "why not Nf3?", 200)
	for _, r := range " why? " {
		in, _ = in.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	assert.Equal(t, "why?", in.Value())

	in.Reset()
	assert.Equal(t, "", in.Value())
	assert.Contains(t, in.View(), "Ask:")
}
