package layout

import (
	"testing"

	"github.com/teleivo/assertive/assert"

	"github.com/inkmesh/diagramlayout/ir"
)

func TestParallelOffsetSequenceSumsToZero(t *testing.T) {
	tests := []struct {
		instance int
		want     float64
	}{
		{0, 0},
		{1, 0.3},
		{2, -0.3},
		{3, 0.6},
		{4, -0.6},
		{5, 0.9},
		{6, -0.9},
	}

	var sum float64
	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			got := parallelOffset(test.instance)
			assert.EqualValuesf(t, got, test.want, "parallelOffset(%d)", test.instance)
		})
		sum += test.want
	}
	assert.EqualValuesf(t, sum, 0.0, "offsets across a full instance run should sum to zero")
}

func TestSelfLoopPointsAlwaysReturnsFivePoints(t *testing.T) {
	n := &ir.NodeLayout{X: 10, Y: 10, Width: 40, Height: 20}

	for instance := 0; instance < 4; instance++ {
		pts := selfLoopPoints(n, instance, testConfig())
		assert.EqualValuesf(t, len(pts), 5, "selfLoopPoints(instance=%d)", instance)
		// the loop must leave and return to the node's right edge.
		right := n.X + n.Width
		assert.EqualValuesf(t, pts[0].X, right, "p0.X should sit on the node's right edge")
		assert.EqualValuesf(t, pts[4].X, right, "p4.X should sit on the node's right edge")
	}
}

func TestEdgePairKeyIsOrderIndependent(t *testing.T) {
	assert.EqualValues(t, edgePairKey("a", "b"), edgePairKey("b", "a"))
	assert.NotEqual(t, edgePairKey("a", "b"), edgePairKey("a", "c"))
}

func TestNormalizeShiftsToPositivePaddedQuadrant(t *testing.T) {
	l := ir.Layout{
		Nodes: map[string]*ir.NodeLayout{
			"a": {ID: "a", X: -50, Y: -30, Width: 10, Height: 10},
			"b": {ID: "b", X: 20, Y: 40, Width: 10, Height: 10},
		},
	}

	normalize(&l)

	minX, minY := l.Nodes["a"].X, l.Nodes["a"].Y
	for _, n := range l.Nodes {
		if n.X < minX {
			minX = n.X
		}
		if n.Y < minY {
			minY = n.Y
		}
	}
	assert.EqualValuesf(t, minX, 8.0, "normalized minimum X should sit exactly at the 8px padding")
	assert.EqualValuesf(t, minY, 8.0, "normalized minimum Y should sit exactly at the 8px padding")
	assert.Truef(t, l.Width > 0 && l.Height > 0, "normalize should set a positive Width/Height")
}

func TestNormalizeOfEmptyLayoutUsesMinimumCanvas(t *testing.T) {
	l := ir.Layout{}

	normalize(&l)

	assert.EqualValuesf(t, l.Width, 16.0, "empty layout width should be 2x padding")
	assert.EqualValuesf(t, l.Height, 16.0, "empty layout height should be 2x padding")
}
