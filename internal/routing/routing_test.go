package routing

import (
	"testing"

	"github.com/teleivo/assertive/assert"

	"github.com/inkmesh/diagramlayout/ir"
)

func TestEdgeSidesPrefersHorizontalForWideSeparation(t *testing.T) {
	from := Box{X: 0, Y: 0, Width: 40, Height: 40}
	to := Box{X: 200, Y: 10, Width: 40, Height: 40}

	start, end, _ := EdgeSides(from, to, false, DirectionPrefRatio)

	assert.EqualValuesf(t, SideRight, start, "start side for a wide horizontal gap")
	assert.EqualValuesf(t, SideLeft, end, "end side for a wide horizontal gap")
}

func TestEdgeSidesPrefersVerticalForTallSeparation(t *testing.T) {
	from := Box{X: 0, Y: 0, Width: 40, Height: 40}
	to := Box{X: 10, Y: 200, Width: 40, Height: 40}

	start, end, _ := EdgeSides(from, to, false, DirectionPrefRatio)

	assert.EqualValuesf(t, SideBottom, start, "start side for a wide vertical gap")
	assert.EqualValuesf(t, SideTop, end, "end side for a wide vertical gap")
}

func TestPortStubLengthIsClamped(t *testing.T) {
	tiny := Box{X: 0, Y: 0, Width: 2, Height: 2}
	normal := Box{X: 0, Y: 0, Width: 100, Height: 100}

	got := PortStubLength(1000, tiny, normal)

	assert.Truef(t, got >= PortStubMin && got <= PortStubMax, "PortStubLength = %v, want within [%v,%v]", got, PortStubMin, PortStubMax)
}

func TestGenerateCandidatesProducesOrthogonalSegments(t *testing.T) {
	start := ir.Point{X: 0, Y: 0}
	end := ir.Point{X: 100, Y: 50}

	cands := GenerateCandidates(start, end, SideRight, SideLeft, 10)

	assert.Truef(t, len(cands) >= 2, "expected multiple candidates, got %d", len(cands))
	for _, c := range cands {
		for i := 0; i+1 < len(c.Points); i++ {
			a, b := c.Points[i], c.Points[i+1]
			assert.Truef(t, a.X == b.X || a.Y == b.Y, "segment %v->%v is not axis-aligned", a, b)
		}
	}
}

func TestScoreLessIsLexicographic(t *testing.T) {
	better := Score{Hits: 0, Length: 1000}
	worse := Score{Hits: 1, Length: 1}

	assert.Truef(t, better.Less(worse), "fewer hits should win regardless of length")
}

func TestSelectBestPicksLowestScore(t *testing.T) {
	scores := []Score{
		{Hits: 1, Length: 10},
		{Hits: 0, Length: 50},
		{Hits: 0, Length: 20},
	}

	got := SelectBest(scores)

	assert.EqualValuesf(t, 2, got, "SelectBest should pick the lowest-scoring zero-hit candidate")
}

func TestGridFindPathRoutesAroundObstacle(t *testing.T) {
	obstacles := []Obstacle{
		{ID: "blocker", Box: Box{X: 40, Y: -20, Width: 20, Height: 140}},
	}
	g := NewGrid(-20, -20, 120, 120, 10, 20, obstacles, 10000)

	path := g.FindPath(ir.Point{X: 0, Y: 50}, ir.Point{X: 100, Y: 50}, 2, 1, 10000)

	assert.Truef(t, len(path) >= 2, "expected a non-empty path, got %v", path)
	for _, p := range path {
		inBlocker := p.X > 40 && p.X < 60 && p.Y > -20 && p.Y < 120
		assert.Falsef(t, inBlocker, "path point %v should not be inside the blocking obstacle", p)
	}
}

func TestGridFindPathReturnsNilWhenUnreachable(t *testing.T) {
	g := NewGrid(0, 0, 10, 10, 5, 5, nil, 100)

	path := g.FindPath(ir.Point{X: 0, Y: 0}, ir.Point{X: 1000, Y: 1000}, 2, 1, 10000)

	assert.Truef(t, path == nil, "expected nil path for an out-of-grid goal")
}
