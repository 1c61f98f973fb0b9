package palette

import (
	"testing"

	"github.com/teleivo/assertive/assert"
)

func TestCycleIsStablePerKey(t *testing.T) {
	c := NewCycle()

	first := c.Color("alpha")
	again := c.Color("alpha")

	assert.EqualValuesf(t, first, again, "Color(%q) should be stable across calls", "alpha")
}

func TestCycleAssignsDistinctColoursToDistinctKeys(t *testing.T) {
	c := NewCycle()

	a := c.Color("alpha")
	b := c.Color("beta")

	assert.Truef(t, a != b, "Color(alpha) and Color(beta) should differ, both got %q", a)
}

func TestColorAtWrapsAround(t *testing.T) {
	got := ColorAt(0)
	wrapped := ColorAt(12)

	assert.EqualValuesf(t, got, wrapped, "ColorAt(0) and ColorAt(12) should wrap to the same colour")
}
