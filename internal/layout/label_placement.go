package layout

import (
	"math"
	"sort"

	"github.com/inkmesh/diagramlayout/config"
	"github.com/inkmesh/diagramlayout/ir"
	"github.com/inkmesh/diagramlayout/label"
	"github.com/inkmesh/diagramlayout/metrics"
)

// Collision-aware edge label placement: center labels first, then start/end labels, each scored
// against a multi-objective penalty (overlap areas weighted 1.2 for being outside the diagram
// bounds, 1.0 for node overlap, 0.7 for label overlap and 0.25 for edge overlap) and placed at
// the best-scoring offset along the
// edge's longest middle segment. Grounded on
// original_source/src/layout/label_placement.rs, reduced in one respect: occupied rectangles are
// scanned linearly instead of through a spatial grid, since this engine's diagrams hold at most a
// few hundred edges/nodes and brute-force overlap checks at that scale change no placement
// decision, only its constant factor.
const (
	labelPadX          = 6.0
	labelPadY          = 4.0
	nodeObstaclePad    = 6.0
	edgeObstaclePad    = 6.0
	labelStepNormalPad = 4.0
	labelStepTangentPad = 6.0
	labelOverlapWideThreshold = 1e-4

	weightNodeOverlap  = 1.0
	weightLabelOverlap = 0.7
	weightEdgeOverlap  = 0.25
	weightOutside      = 1.2
)

var labelAnchorFractions = []float64{0.35, 0.5, 0.65}
var labelNormalSteps = []float64{0, 0.15, -0.15, 0.35, -0.35, 0.6, -0.6, 1, -1, 2, -2, 3, -3}
var labelTangentSteps = []float64{0, 0.2, -0.2, 0.6, -0.6, 1.2, -1.2}
var labelNormalStepsWide = []float64{0, 1, -1, 2, -2, 3, -3, 4, -4, 5, -5}
var labelTangentStepsWide = []float64{0, 0.6, -0.6, 1.2, -1.2, 1.8, -1.8, 2.4, -2.4}

type obstacleRect struct {
	x, y, w, h float64
}

// resolveLabelPositions fills in CenterLabel/StartLabel/EndLabel anchors on result.Edges in
// place. Sequence diagrams place their message labels inline during computeSequence and are
// skipped here, matching label_placement.rs's resolve_all_label_positions.
func resolveLabelPositions(result *ir.Layout, g *ir.Graph, theme config.Theme, cfg config.Config, m metrics.Measurer) {
	// Only flowchart-driver kinds route arbitrary graph edges with free-text labels through
	// result.Edges in the same order as g.Edges; sequence sets its message labels directly in
	// computeSequence, and payload-driven kinds (sankey, gitgraph, ...) build their own edge
	// lists disconnected from g.Edges, so indexing into sourceEdges would misattribute labels.
	if !g.Kind.UsesFlowchartDriver() || len(result.Edges) == 0 {
		return
	}
	fontSize := theme.FontSize
	if fontSize <= 0 {
		fontSize = config.DefaultTheme().FontSize
	}

	bounds := obstacleRect{x: 0, y: 0, w: result.Width, h: result.Height}
	nodeObstacles := buildNodeObstacles(result.Nodes, result.Subgraphs)

	resolveCenterLabels(result.Edges, g.Edges, nodeObstacles, bounds, fontSize, cfg, m)
	resolveEndpointLabels(result.Edges, g.Edges, nodeObstacles, bounds, g.Kind, fontSize, cfg, m)
}

func buildNodeObstacles(nodes map[string]*ir.NodeLayout, subgraphs []*ir.SubgraphLayout) []obstacleRect {
	var occupied []obstacleRect
	for _, n := range nodes {
		if n.Hidden {
			continue
		}
		occupied = append(occupied, obstacleRect{
			x: n.X - nodeObstaclePad, y: n.Y - nodeObstaclePad,
			w: n.Width + 2*nodeObstaclePad, h: n.Height + 2*nodeObstaclePad,
		})
	}
	for _, s := range subgraphs {
		if len(s.Label.Lines) == 0 {
			continue
		}
		occupied = append(occupied, obstacleRect{
			x: s.X + 12 - labelPadY, y: s.Y + nodeObstaclePad,
			w: s.Label.Width + 2*labelPadY, h: s.Label.Height + labelPadY,
		})
	}
	return occupied
}

type edgeObstacle struct {
	edgeIdx int
	rect    obstacleRect
}

func buildEdgeObstacles(edges []*ir.EdgeLayout) []edgeObstacle {
	var out []edgeObstacle
	for i, e := range edges {
		for j := 0; j+1 < len(e.Points); j++ {
			a, b := e.Points[j], e.Points[j+1]
			minX, maxX := minf(a.X, b.X)-edgeObstaclePad, maxf(a.X, b.X)+edgeObstaclePad
			minY, maxY := minf(a.Y, b.Y)-edgeObstaclePad, maxf(a.Y, b.Y)+edgeObstaclePad
			out = append(out, edgeObstacle{edgeIdx: i, rect: obstacleRect{x: minX, y: minY, w: maxX - minX, h: maxY - minY}})
		}
	}
	return out
}

func resolveCenterLabels(edges []*ir.EdgeLayout, sourceEdges []ir.Edge, nodeObstacles []obstacleRect, bounds obstacleRect, fontSize float64, cfg config.Config, m metrics.Measurer) {
	occupied := append([]obstacleRect{}, nodeObstacles...)
	nodeObstacleCount := len(occupied)
	edgeObstacles := buildEdgeObstacles(edges)

	order := make([]int, 0, len(edges))
	for i := range edges {
		if i < len(sourceEdges) && sourceEdges[i].CenterLabel != "" {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return edgePathLength(edges[order[a]]) < edgePathLength(edges[order[b]])
	})

	for _, idx := range order {
		text := sourceEdges[idx].CenterLabel
		block := label.Measure(m, text, fontSize, cfg)
		padW, padH := block.Width+2*labelPadX, block.Height+2*labelPadY

		anchors := [][4]float64{edgeLabelAnchor(edges[idx].Points)}
		for _, frac := range labelAnchorFractions {
			if a, ok := edgeLabelAnchorAtFraction(edges[idx].Points, frac); ok && !dupAnchor(anchors, a) {
				anchors = append(anchors, a)
			}
		}

		bestX, bestY := anchors[0][0], anchors[0][1]
		bestOverlap, bestDist := math.Inf(1), math.Inf(1)
		evaluate := func(tangents, normals []float64) {
			for _, a := range anchors {
				ax, ay, dx, dy := a[0], a[1], a[2], a[3]
				nx, ny := -dy, dx
				stepN := block.Height + labelPadY + labelStepNormalPad
				if math.Abs(nx) > math.Abs(ny) {
					stepN = block.Width + labelPadX + labelStepNormalPad
				}
				stepT := block.Height + labelPadY + labelStepTangentPad
				if math.Abs(dx) > math.Abs(dy) {
					stepT = block.Width + labelPadX + labelStepTangentPad
				}
				for _, t := range tangents {
					baseX, baseY := ax+dx*stepT*t, ay+dy*stepT*t
					for _, n := range normals {
						x, y := baseX+nx*stepN*n, baseY+ny*stepN*n
						rect := obstacleRect{x: x - block.Width/2 - labelPadX, y: y - block.Height/2 - labelPadY, w: padW, h: padH}
						overlap, dist := labelPenalty(rect, ax, ay, block.Width, block.Height, occupied, nodeObstacleCount, edgeObstacles, idx, bounds)
						if overlap+1e-6 < bestOverlap || (math.Abs(overlap-bestOverlap) <= 1e-6 && dist+1e-6 < bestDist) {
							bestOverlap, bestDist = overlap, dist
							bestX, bestY = x, y
						}
					}
				}
			}
		}
		evaluate(labelTangentSteps, labelNormalSteps)
		if bestOverlap > labelOverlapWideThreshold {
			evaluate(labelTangentStepsWide, labelNormalStepsWide)
		}

		cx, cy := clampLabelCenter(bestX, bestY, block.Width, block.Height, bounds)
		occupied = append(occupied, obstacleRect{x: cx - block.Width/2 - labelPadX, y: cy - block.Height/2 - labelPadY, w: padW, h: padH})
		edges[idx].CenterLabel = &ir.LabelAnchor{Text: block, X: cx - block.Width/2, Y: cy - block.Height/2}
	}
}

func resolveEndpointLabels(edges []*ir.EdgeLayout, sourceEdges []ir.Edge, nodeObstacles []obstacleRect, bounds obstacleRect, kind ir.Kind, fontSize float64, cfg config.Config, m metrics.Measurer) {
	has := false
	for i := range sourceEdges {
		if i < len(edges) && (sourceEdges[i].StartLabel != "" || sourceEdges[i].EndLabel != "") {
			has = true
			break
		}
	}
	if !has {
		return
	}

	edgeObstacles := buildEdgeObstacles(edges)
	occupied := append([]obstacleRect{}, nodeObstacles...)
	nodeObstacleCount := len(occupied)
	for _, e := range edges {
		if e.CenterLabel != nil {
			b := e.CenterLabel.Text
			occupied = append(occupied, obstacleRect{x: e.CenterLabel.X - labelPadX, y: e.CenterLabel.Y - labelPadY, w: b.Width + 2*labelPadX, h: b.Height + 2*labelPadY})
		}
	}

	endOffset := maxf(fontSize*0.6, 8)
	if kind == ir.KindClass || kind.UsesFlowchartDriver() {
		endOffset = maxf(fontSize*0.75, 9)
	}

	place := func(idx int, start bool, text string) {
		block := label.Measure(m, text, fontSize, cfg)
		x, y, ok := edgeEndpointLabelPositionWithAvoid(edges[idx], idx, start, endOffset, block.Width, block.Height, occupied, nodeObstacleCount, edgeObstacles, bounds)
		if !ok {
			return
		}
		padX, padY := 3.0, 1.6
		switch {
		case kind == ir.KindState:
			padX, padY = 2.6, 1.4
		case kind.UsesFlowchartDriver():
			padX, padY = 3.4, 1.8
		case kind == ir.KindClass:
			padX, padY = 3.2, 1.6
		}
		occupied = append(occupied, obstacleRect{x: x - block.Width/2 - padX, y: y - block.Height/2 - padY, w: block.Width + 2*padX, h: block.Height + 2*padY})
		anchor := &ir.LabelAnchor{Text: block, X: x - block.Width/2, Y: y - block.Height/2}
		if start {
			edges[idx].StartLabel = anchor
		} else {
			edges[idx].EndLabel = anchor
		}
	}

	for i := range edges {
		if i >= len(sourceEdges) {
			continue
		}
		if sourceEdges[i].StartLabel != "" {
			place(i, true, sourceEdges[i].StartLabel)
		}
		if sourceEdges[i].EndLabel != "" {
			place(i, false, sourceEdges[i].EndLabel)
		}
	}
}

func dupAnchor(anchors [][4]float64, cand [4]float64) bool {
	for _, a := range anchors {
		if math.Abs(a[0]-cand[0]) <= 1.0 && math.Abs(a[1]-cand[1]) <= 1.0 &&
			math.Abs(a[2]-cand[2]) <= 0.02 && math.Abs(a[3]-cand[3]) <= 0.02 {
			return true
		}
	}
	return false
}

// edgeLabelAnchor picks the midpoint and direction of an edge's longest segment, preferring
// interior segments (skipping the first/last) when there are at least three.
func edgeLabelAnchor(points []ir.Point) [4]float64 {
	if len(points) < 2 {
		return [4]float64{0, 0, 1, 0}
	}
	segCount := len(points) - 1
	startIdx, endIdx := 0, segCount
	if segCount >= 3 {
		startIdx, endIdx = 1, segCount-1
	}
	bestIdx, bestLen := -1, 0.0
	for idx := startIdx; idx < endIdx; idx++ {
		dx, dy := points[idx+1].X-points[idx].X, points[idx+1].Y-points[idx].Y
		l := dx*dx + dy*dy
		if l > bestLen {
			bestLen, bestIdx = l, idx
		}
	}
	if bestIdx < 0 {
		for idx := 0; idx < segCount; idx++ {
			dx, dy := points[idx+1].X-points[idx].X, points[idx+1].Y-points[idx].Y
			l := dx*dx + dy*dy
			if l > bestLen {
				bestLen, bestIdx = l, idx
			}
		}
	}
	if bestIdx < 0 {
		bestIdx = 0
	}
	p1, p2 := points[bestIdx], points[bestIdx+1]
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	l := maxf(math.Hypot(dx, dy), 1e-3)
	return [4]float64{(p1.X + p2.X) / 2, (p1.Y + p2.Y) / 2, dx / l, dy / l}
}

func edgeLabelAnchorAtFraction(points []ir.Point, t float64) ([4]float64, bool) {
	if len(points) < 2 {
		return [4]float64{}, false
	}
	segCount := len(points) - 1
	startIdx, endIdx := 0, segCount
	if segCount >= 3 {
		startIdx, endIdx = 1, segCount-1
	}
	if startIdx >= endIdx {
		startIdx, endIdx = 0, segCount
	}
	total := 0.0
	for idx := startIdx; idx < endIdx; idx++ {
		dx, dy := points[idx+1].X-points[idx].X, points[idx+1].Y-points[idx].Y
		total += math.Hypot(dx, dy)
	}
	if total <= 1e-3 {
		return edgeLabelAnchor(points), true
	}
	t = math.Max(0, math.Min(1, t))
	remaining := total * t
	for idx := startIdx; idx < endIdx; idx++ {
		p1, p2 := points[idx], points[idx+1]
		dx, dy := p2.X-p1.X, p2.Y-p1.Y
		segLen := math.Hypot(dx, dy)
		if segLen <= 1e-6 {
			continue
		}
		if remaining <= segLen {
			alpha := math.Max(0, math.Min(1, remaining/segLen))
			return [4]float64{p1.X + dx*alpha, p1.Y + dy*alpha, dx / segLen, dy / segLen}, true
		}
		remaining -= segLen
	}
	return edgeLabelAnchor(points), true
}

func edgePathLength(e *ir.EdgeLayout) float64 {
	total := 0.0
	for i := 0; i+1 < len(e.Points); i++ {
		total += math.Hypot(e.Points[i+1].X-e.Points[i].X, e.Points[i+1].Y-e.Points[i].Y)
	}
	return total
}

func overlapArea(a, b obstacleRect) float64 {
	x0, y0 := maxf(a.x, b.x), maxf(a.y, b.y)
	x1, y1 := minf(a.x+a.w, b.x+b.w), minf(a.y+a.h, b.y+b.h)
	if x1 <= x0 || y1 <= y0 {
		return 0
	}
	return (x1 - x0) * (y1 - y0)
}

func outsideArea(rect, bounds obstacleRect) float64 {
	inside := overlapArea(rect, bounds)
	return maxf(rect.w*rect.h-inside, 0)
}

func labelPenalty(rect obstacleRect, anchorX, anchorY, labelW, labelH float64, occupied []obstacleRect, nodeObstacleCount int, edgeObstacles []edgeObstacle, edgeIdx int, bounds obstacleRect) (overlap, dist float64) {
	area := maxf(labelW*labelH, 1)
	for i, o := range occupied {
		ov := overlapArea(rect, o)
		if ov <= 0 {
			continue
		}
		weight := weightLabelOverlap
		if i < nodeObstacleCount {
			weight = weightNodeOverlap
		}
		overlap += ov * weight
	}
	for _, eo := range edgeObstacles {
		if eo.edgeIdx == edgeIdx {
			continue
		}
		overlap += overlapArea(rect, eo.rect) * weightEdgeOverlap
	}
	overlap += outsideArea(rect, bounds) * weightOutside
	dx := (rect.x + rect.w*0.5) - anchorX
	dy := (rect.y + rect.h*0.5) - anchorY
	return overlap / area, math.Hypot(dx, dy) / (labelW + labelH + 1)
}

func clampLabelCenter(x, y, w, h float64, bounds obstacleRect) (float64, float64) {
	halfW, halfH := w/2+labelPadX, h/2+labelPadY
	x = math.Max(bounds.x+halfW, math.Min(bounds.x+bounds.w-halfW, x))
	y = math.Max(bounds.y+halfH, math.Min(bounds.y+bounds.h-halfH, y))
	return x, y
}

func edgeEndpointLabelPositionWithAvoid(e *ir.EdgeLayout, edgeIdx int, start bool, offset, labelW, labelH float64, occupied []obstacleRect, nodeObstacleCount int, edgeObstacles []edgeObstacle, bounds obstacleRect) (float64, float64, bool) {
	if len(e.Points) < 2 {
		return 0, 0, false
	}
	var p0, p1 ir.Point
	if start {
		p0, p1 = e.Points[0], e.Points[1]
	} else {
		p0, p1 = e.Points[len(e.Points)-1], e.Points[len(e.Points)-2]
	}
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	l := math.Hypot(dx, dy)
	if l <= 1e-6 {
		return 0, 0, false
	}
	dirX, dirY := dx/l, dy/l
	perpX, perpY := -dirY, dirX

	bestX, bestY := p0.X+dirX*offset*1.4+perpX*offset, p0.Y+dirY*offset*1.4+perpY*offset
	bestOverlap, bestDist := math.Inf(1), math.Inf(1)
	for _, n := range labelNormalSteps {
		baseX, baseY := p0.X+dirX*offset*1.4, p0.Y+dirY*offset*1.4
		x, y := baseX+perpX*offset*(1+n*0.5), baseY+perpY*offset*(1+n*0.5)
		rect := obstacleRect{x: x - labelW/2 - labelPadX, y: y - labelH/2 - labelPadY, w: labelW + 2*labelPadX, h: labelH + 2*labelPadY}
		overlap, dist := labelPenalty(rect, p0.X, p0.Y, labelW, labelH, occupied, nodeObstacleCount, edgeObstacles, edgeIdx, bounds)
		if overlap+1e-6 < bestOverlap || (math.Abs(overlap-bestOverlap) <= 1e-6 && dist+1e-6 < bestDist) {
			bestOverlap, bestDist = overlap, dist
			bestX, bestY = x, y
		}
	}
	return bestX, bestY, true
}
