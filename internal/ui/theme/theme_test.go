package theme

import (
	"image/color"
	"testing"
)

func rgba(c color.Color) [4]uint32 {
	r, g, b, a := c.RGBA()
	return [4]uint32{r, g, b, a}
}

func TestClassificationColor(t *testing.T) {
	labels := []string{"Missed Win", "Brilliant", "Excellent", "Good", "Neutral", "Inaccuracy", "Mistake", "Blunder"}
	seen := map[[4]uint32]string{}
	for _, l := range labels {
		c := rgba(ClassificationColor(l))
		if c == rgba(Text) {
			t.Errorf("%q fell back to the text color", l)
		}
		if prev, ok := seen[c]; ok {
			t.Errorf("%q shares a color with %q", l, prev)
		}
		seen[c] = l
	}
	if rgba(ClassificationColor("Great")) != rgba(Text) {
		t.Error("unknown label should use the text color")
	}
}
