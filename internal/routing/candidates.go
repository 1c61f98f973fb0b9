package routing

import "github.com/inkmesh/diagramlayout/ir"

// Obstacle is a named box the orthogonal router must avoid passing through, excluding the edge's
// own endpoints.
type Obstacle struct {
	ID string
	Box
}

// Score is the lexicographic candidate-ranking key from spec.md §4.4: lower is always better, and
// each field is compared in order before falling through to the next.
type Score struct {
	Hits           int     // obstacle penetrations
	Crossings      int     // crossings with already-routed edges
	LabelHits      int     // penetrations of label obstacles
	Bends          int     // direction changes
	OverlapLength  float64 // total length running collinear with an existing segment
	OccupancyScore float64 // sum of occupancy weight along the path
	Length         float64 // total path length
}

// Less implements the lexicographic comparison spec.md §4.4 specifies for candidate selection.
func (s Score) Less(o Score) bool {
	if s.Hits != o.Hits {
		return s.Hits < o.Hits
	}
	if s.Crossings != o.Crossings {
		return s.Crossings < o.Crossings
	}
	if s.LabelHits != o.LabelHits {
		return s.LabelHits < o.LabelHits
	}
	if s.Bends != o.Bends {
		return s.Bends < o.Bends
	}
	if s.OverlapLength != o.OverlapLength {
		return s.OverlapLength < o.OverlapLength
	}
	if s.OccupancyScore != o.OccupancyScore {
		return s.OccupancyScore < o.OccupancyScore
	}
	return s.Length < o.Length
}

// Candidate is one proposed orthogonal poly-line between two ports, not yet scored.
type Candidate struct {
	Points []ir.Point
}

// GenerateCandidates builds the small set of orthogonal paths worth scoring between start and end
// (an L-shape bending at the start's axis, an L-shape bending at the end's axis, and a
// mid-point Z-shape), stubbing straight out of each port by stubLen before the first turn.
func GenerateCandidates(start, end ir.Point, startSide, endSide EdgeSide, stubLen float64) []Candidate {
	s1 := stubPoint(start, startSide, stubLen)
	e1 := stubPoint(end, endSide, stubLen)

	var out []Candidate

	// L-shape turning at s1's axis (horizontal-then-vertical or vice versa, chosen by startSide).
	if startSide.IsVertical() {
		bend := ir.Point{X: e1.X, Y: s1.Y}
		out = append(out, Candidate{Points: dedupe([]ir.Point{start, s1, bend, e1, end})})
	} else {
		bend := ir.Point{X: s1.X, Y: e1.Y}
		out = append(out, Candidate{Points: dedupe([]ir.Point{start, s1, bend, e1, end})})
	}

	// L-shape turning at e1's axis (the complementary bend).
	if endSide.IsVertical() {
		bend := ir.Point{X: s1.X, Y: e1.Y}
		out = append(out, Candidate{Points: dedupe([]ir.Point{start, s1, bend, e1, end})})
	} else {
		bend := ir.Point{X: e1.X, Y: s1.Y}
		out = append(out, Candidate{Points: dedupe([]ir.Point{start, s1, bend, e1, end})})
	}

	// Z-shape through the midpoint, useful when the two stubs don't share an axis cleanly.
	mid := ir.Point{X: (s1.X + e1.X) / 2, Y: (s1.Y + e1.Y) / 2}
	if startSide.IsVertical() {
		b1 := ir.Point{X: mid.X, Y: s1.Y}
		b2 := ir.Point{X: mid.X, Y: e1.Y}
		out = append(out, Candidate{Points: dedupe([]ir.Point{start, s1, b1, b2, e1, end})})
	} else {
		b1 := ir.Point{X: s1.X, Y: mid.Y}
		b2 := ir.Point{X: e1.X, Y: mid.Y}
		out = append(out, Candidate{Points: dedupe([]ir.Point{start, s1, b1, b2, e1, end})})
	}

	return out
}

func stubPoint(p ir.Point, side EdgeSide, stub float64) ir.Point {
	switch side {
	case SideLeft:
		return ir.Point{X: p.X - stub, Y: p.Y}
	case SideRight:
		return ir.Point{X: p.X + stub, Y: p.Y}
	case SideTop:
		return ir.Point{X: p.X, Y: p.Y - stub}
	default:
		return ir.Point{X: p.X, Y: p.Y + stub}
	}
}

// dedupe removes consecutive duplicate points and collinear interior points, the "straightening
// pass that removes collinear redundant points" spec.md describes for the A* fallback, reused
// here since candidate generation produces the same kind of redundancy.
func dedupe(pts []ir.Point) []ir.Point {
	if len(pts) < 2 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		last := out[len(out)-1]
		if last == p {
			continue
		}
		out = append(out, p)
	}
	if len(out) < 3 {
		return out
	}
	straightened := out[:1]
	for i := 1; i < len(out)-1; i++ {
		a, b, c := straightened[len(straightened)-1], out[i], out[i+1]
		if collinear(a, b, c) {
			continue
		}
		straightened = append(straightened, b)
	}
	straightened = append(straightened, out[len(out)-1])
	return straightened
}

func collinear(a, b, c ir.Point) bool {
	return (a.X == b.X && b.X == c.X) || (a.Y == b.Y && b.Y == c.Y)
}

// EvaluateCandidate scores a candidate path against a set of obstacles (excluding the edge's own
// endpoints, which the caller omits) and already-routed segments.
func EvaluateCandidate(c Candidate, obstacles []Obstacle, existingSegments [][2]ir.Point, occupancy func(ir.Point) float64) Score {
	var score Score
	score.Bends = countBends(c.Points)
	score.Length = pathLength(c.Points)

	for i := 0; i+1 < len(c.Points); i++ {
		a, b := c.Points[i], c.Points[i+1]
		for _, obs := range obstacles {
			if segmentIntersectsBox(a, b, obs.Box) {
				score.Hits++
			}
		}
		for _, seg := range existingSegments {
			if segmentsCross(a, b, seg[0], seg[1]) {
				score.Crossings++
			}
			score.OverlapLength += collinearOverlapLength(a, b, seg[0], seg[1])
		}
		if occupancy != nil {
			mid := ir.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
			score.OccupancyScore += occupancy(mid)
		}
	}
	return score
}

// SelectBest returns the index of the lowest-scoring candidate.
func SelectBest(scores []Score) int {
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i].Less(scores[best]) {
			best = i
		}
	}
	return best
}

func countBends(pts []ir.Point) int {
	if len(pts) < 3 {
		return 0
	}
	bends := 0
	for i := 1; i < len(pts)-1; i++ {
		a, b, c := pts[i-1], pts[i], pts[i+1]
		horiz1 := a.Y == b.Y
		horiz2 := b.Y == c.Y
		if horiz1 != horiz2 {
			bends++
		}
	}
	return bends
}

func pathLength(pts []ir.Point) float64 {
	total := 0.0
	for i := 0; i+1 < len(pts); i++ {
		total += dist(pts[i], pts[i+1])
	}
	return total
}

func dist(a, b ir.Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy // Manhattan: orthogonal segments only ever move on one axis at a time.
}

func segmentIntersectsBox(a, b ir.Point, box Box) bool {
	// Sample the segment's midpoint and endpoints; orthogonal segments are axis-aligned so this
	// is exact for our candidate shapes (no diagonal segments are ever produced).
	pts := []ir.Point{a, {X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}, b}
	for _, p := range pts {
		if p.X > box.X && p.X < box.X+box.Width && p.Y > box.Y && p.Y < box.Y+box.Height {
			return true
		}
	}
	return false
}

func segmentsCross(a1, a2, b1, b2 ir.Point) bool {
	// Both candidate segments are axis-aligned; treat a perpendicular crossing as a crossing and
	// a collinear overlap separately (handled by collinearOverlapLength).
	if a1.Y == a2.Y && b1.X == b2.X {
		return between(b1.X, a1.X, a2.X) && between(a1.Y, b1.Y, b2.Y)
	}
	if a1.X == a2.X && b1.Y == b2.Y {
		return between(b1.Y, a1.Y, a2.Y) && between(a1.X, b1.X, b2.X)
	}
	return false
}

func between(v, a, b float64) bool {
	if a > b {
		a, b = b, a
	}
	return v >= a && v <= b
}

func collinearOverlapLength(a1, a2, b1, b2 ir.Point) float64 {
	if a1.Y == a2.Y && b1.Y == b2.Y && a1.Y == b1.Y {
		lo := max64(min64(a1.X, a2.X), min64(b1.X, b2.X))
		hi := min64(max64(a1.X, a2.X), max64(b1.X, b2.X))
		if hi > lo {
			return hi - lo
		}
	}
	if a1.X == a2.X && b1.X == b2.X && a1.X == b1.X {
		lo := max64(min64(a1.Y, a2.Y), min64(b1.Y, b2.Y))
		hi := min64(max64(a1.Y, a2.Y), max64(b1.Y, b2.Y))
		if hi > lo {
			return hi - lo
		}
	}
	return 0
}

func min64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
