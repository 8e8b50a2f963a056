package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "", Truncate("abc", 0))
	assert.LessOrEqual(t, lipgloss.Width(Truncate("Nxe5 wins a pawn", 8)), 8)
}

func TestWrap(t *testing.T) {
	lines := Wrap("The knight on e5 is loose and the queen can take it", 16)
	for _, l := range lines {
		assert.LessOrEqual(t, lipgloss.Width(l), 16, l)
	}
	assert.Equal(t, "The knight on e5 is loose and the queen can take it", strings.Join(lines, " "))

	assert.Equal(t, []string{"one", "", "two"}, Wrap("one\n\ntwo", 20))
	assert.Nil(t, Wrap("anything", 0))
}

func TestRenderHeaderShowsTitleAndStatus(t *testing.T) {
	h := RenderHeader("Analyses", "alice", 80)
	assert.Contains(t, h, "chesscoach")
	assert.Contains(t, h, "Analyses")
	assert.Contains(t, h, "alice")
}

func TestSizes(t *testing.T) {
	assert.True(t, IsTooSmall(60, 30))
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
	assert.Equal(t, 0, ContentHeight(4))
	assert.True(t, IsCompactWidth(90))
}
