package layout

import (
	"sort"

	"github.com/inkmesh/diagramlayout/config"
	"github.com/inkmesh/diagramlayout/internal/geom"
	"github.com/inkmesh/diagramlayout/internal/rank"
	"github.com/inkmesh/diagramlayout/internal/routing"
	"github.com/inkmesh/diagramlayout/internal/sizing"
	"github.com/inkmesh/diagramlayout/ir"
	"github.com/inkmesh/diagramlayout/label"
	"github.com/inkmesh/diagramlayout/metrics"
)

// computeFlowchart is the shared rank-layered engine used by every diagram kind whose primary
// shape is a directed graph of boxes: flowchart, class, state, ER, requirement, journey, block,
// packet (the kinds for which ir.Kind.UsesFlowchartDriver reports true).
func computeFlowchart(g *ir.Graph, theme config.Theme, cfg config.Config, m metrics.Measurer) ir.Layout {
	fontSize := theme.FontSize
	if fontSize <= 0 {
		fontSize = config.DefaultTheme().FontSize
	}
	sizeKind := sizingKindFor(g.Kind)
	horizontal := g.Direction.IsHorizontal()

	nodeIDs := g.NodeIDsInOrder()
	nodes := make(map[string]*ir.NodeLayout, len(nodeIDs))
	for _, id := range nodeIDs {
		n := g.Nodes[id]
		block := label.Measure(m, n.Label, fontSize, cfg)
		w, h := sizing.Size(block, n.Shape, sizeKind, cfg, fontSize)
		nodes[id] = &ir.NodeLayout{
			ID:             id,
			Width:          w,
			Height:         h,
			Label:          block,
			Shape:          n.Shape,
			Style:          n.Style,
			Link:           n.Link,
			AnchorSubgraph: -1,
		}
	}

	rankEdges := make([]rank.Edge, len(g.Edges))
	for i, e := range g.Edges {
		rankEdges[i] = rank.Edge{From: e.From, To: e.To}
	}
	ranks := rank.AssignRanks(nodeIDs, rankEdges)
	expanded, dummyRank, chains := rank.InsertDummies(rankEdges, ranks)

	allIDs := append([]string{}, nodeIDs...)
	for id := range dummyRank {
		allIDs = append(allIDs, id)
	}
	combinedRank := make(map[string]int, len(allIDs))
	for k, v := range ranks {
		combinedRank[k] = v
	}
	for k, v := range dummyRank {
		combinedRank[k] = v
	}

	layers := rank.InitialOrder(allIDs, combinedRank)
	layers = rank.Order(layers, expanded, cfg.Flowchart.OrderingPasses)

	sizeMap := make(map[string]rank.Size, len(allIDs))
	for _, id := range nodeIDs {
		n := nodes[id]
		if horizontal {
			sizeMap[id] = rank.Size{Main: n.Width, Cross: n.Height}
		} else {
			sizeMap[id] = rank.Size{Main: n.Height, Cross: n.Width}
		}
	}
	dummySize := rank.Size{Main: 1, Cross: cfg.NodeSpacing / 2}
	for id := range dummyRank {
		sizeMap[id] = dummySize
	}

	coords := rank.AssignCoordinates(layers, sizeMap, cfg.NodeSpacing, cfg.RankSpacing)

	centerOf := func(id string) ir.Point {
		c := coords[id]
		main, cross := c.Main, c.Cross
		if !horizontal && g.Direction == ir.BottomTop {
			main = -main
		}
		if horizontal && g.Direction == ir.RightLeft {
			main = -main
		}
		if horizontal {
			return ir.Point{X: main, Y: cross}
		}
		return ir.Point{X: cross, Y: main}
	}

	for _, id := range nodeIDs {
		n := nodes[id]
		center := centerOf(id)
		n.X = center.X - n.Width/2
		n.Y = center.Y - n.Height/2
	}

	obstacles := buildObstacles(nodes)

	pairSeen := make(map[string]int)
	edges := make([]*ir.EdgeLayout, len(g.Edges))
	for i, e := range g.Edges {
		chain := chains[i]
		pairKey := edgePairKey(e.From, e.To)
		instance := pairSeen[pairKey]
		pairSeen[pairKey]++

		var points []ir.Point
		switch {
		case e.From == e.To:
			points = selfLoopPoints(nodes[e.From], instance, cfg)
		case len(chain.DummyIDs) > 0:
			points = multiRankPoints(nodes[e.From], nodes[e.To], chain.DummyIDs, centerOf)
		default:
			points = routeDirect(nodes[e.From], nodes[e.To], horizontal, cfg, obstacles, instance)
		}

		edges[i] = &ir.EdgeLayout{
			From:          e.From,
			To:            e.To,
			Points:        points,
			Directed:      e.Directed,
			ArrowStart:    e.ArrowStart,
			ArrowEnd:      e.ArrowEnd,
			Decorations:   e.Decorations,
			Style:         e.Style,
			StyleOverride: e.StyleOverride,
		}
		attachEdgeLabels(edges[i], e, m, fontSize, cfg)
	}

	subgraphs := buildSubgraphs(g, nodes, m, fontSize, cfg)
	stateNotes := buildStateNotes(g, nodes, m, fontSize, cfg)

	out := ir.Layout{
		Kind:       g.Kind,
		Nodes:      nodes,
		Edges:      edges,
		Subgraphs:  subgraphs,
		StateNotes: stateNotes,
	}
	normalize(&out)
	return out
}

func sizingKindFor(k ir.Kind) sizing.Kind {
	switch k {
	case ir.KindState:
		return sizing.KindState
	case ir.KindClass:
		return sizing.KindClass
	case ir.KindER:
		return sizing.KindER
	case ir.KindRequirement:
		return sizing.KindRequirement
	default:
		return sizing.KindFlowchart
	}
}

func buildObstacles(nodes map[string]*ir.NodeLayout) []routing.Obstacle {
	out := make([]routing.Obstacle, 0, len(nodes))
	for id, n := range nodes {
		if n.Hidden {
			continue
		}
		out = append(out, routing.Obstacle{ID: id, Box: routing.Box{X: n.X, Y: n.Y, Width: n.Width, Height: n.Height}})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func edgePairKey(from, to string) string {
	if from < to {
		return from + "\x00" + to
	}
	return to + "\x00" + from
}

// routeDirect scores candidate orthogonal paths between two single-rank-adjacent nodes and
// returns the best one, offsetting the port position for the instance-th parallel edge between
// the same pair of nodes.
func routeDirect(from, to *ir.NodeLayout, horizontal bool, cfg config.Config, obstacles []routing.Obstacle, instance int) []ir.Point {
	fromBox := routing.Box{X: from.X, Y: from.Y, Width: from.Width, Height: from.Height}
	toBox := routing.Box{X: to.X, Y: to.Y, Width: to.Width, Height: to.Height}

	startSide, endSide, _ := routing.EdgeSides(fromBox, toBox, horizontal, cfg.Flowchart.AspectRatioThreshold)
	offset := parallelOffset(instance)
	start := routing.AnchorPoint(fromBox, startSide, offset)
	end := routing.AnchorPoint(toBox, endSide, offset)

	stub := routing.PortStubLength(cfg.NodeSpacing, fromBox, toBox)
	candidates := routing.GenerateCandidates(start, end, startSide, endSide, stub)

	filtered := excludeEndpoints(obstacles, from.ID, to.ID)
	scores := make([]routing.Score, len(candidates))
	for i, c := range candidates {
		scores[i] = routing.EvaluateCandidate(c, filtered, nil, nil)
	}
	best := routing.SelectBest(scores)
	if scores[best].Hits == 0 {
		return candidates[best].Points
	}

	grid := routing.NewGrid(
		minf(start.X, end.X), minf(start.Y, end.Y), maxf(start.X, end.X), maxf(start.Y, end.Y),
		routing.CellSize(cfg.NodeSpacing), routing.GridMargin(cfg.NodeSpacing),
		filtered, cfg.Flowchart.Routing.MaxSteps,
	)
	if cfg.Flowchart.Routing.EnableGridRouter {
		if path := grid.FindPath(start, end, cfg.Flowchart.Routing.TurnPenalty, cfg.Flowchart.Routing.OccupancyWeight, cfg.Flowchart.Routing.MaxSteps); path != nil {
			return path
		}
	}
	return candidates[best].Points
}

func excludeEndpoints(obstacles []routing.Obstacle, from, to string) []routing.Obstacle {
	out := make([]routing.Obstacle, 0, len(obstacles))
	for _, o := range obstacles {
		if o.ID == from || o.ID == to {
			continue
		}
		out = append(out, o)
	}
	return out
}

func parallelOffset(instance int) float64 {
	// 0, then alternating +/- steps: 0, 0.3, -0.3, 0.6, -0.6, ...
	if instance == 0 {
		return 0
	}
	step := (instance+1)/2
	mag := float64(step) * 3 / 10
	if instance%2 == 1 {
		return mag
	}
	return -mag
}

// selfLoopPoints builds the fixed 5-point / 4-segment self-loop path spec.md requires, fanning
// out additional self-loops on the same node by instance.
func selfLoopPoints(n *ir.NodeLayout, instance int, cfg config.Config) []ir.Point {
	loopSize := cfg.NodeSpacing*0.6 + float64(instance)*cfg.NodeSpacing*0.3
	top := n.Y
	right := n.X + n.Width
	y1 := top + n.Height*0.3
	y2 := top + n.Height*0.7

	p0 := ir.Point{X: right, Y: y1}
	p1 := ir.Point{X: right + loopSize, Y: y1}
	p2 := ir.Point{X: right + loopSize, Y: (y1 + y2) / 2}
	p3 := ir.Point{X: right + loopSize, Y: y2}
	p4 := ir.Point{X: right, Y: y2}
	return []ir.Point{p0, p1, p2, p3, p4}
}

// multiRankPoints builds a polyline through a multi-rank edge's dummy chain, anchoring the first
// and last points on the real endpoint boxes.
func multiRankPoints(from, to *ir.NodeLayout, dummyIDs []string, centerOf func(string) ir.Point) []ir.Point {
	fromCenter := ir.Point{X: from.X + from.Width/2, Y: from.Y + from.Height/2}
	toCenter := ir.Point{X: to.X + to.Width/2, Y: to.Y + to.Height/2}

	pts := make([]ir.Point, 0, len(dummyIDs)+2)
	pts = append(pts, fromCenter)
	for _, id := range dummyIDs {
		pts = append(pts, centerOf(id))
	}
	pts = append(pts, toCenter)

	pts[0] = clampToBoundary(pts[0], pts[1], from)
	last := len(pts) - 1
	pts[last] = clampToBoundary(pts[last], pts[last-1], to)
	return pts
}

func clampToBoundary(center, toward ir.Point, n *ir.NodeLayout) ir.Point {
	r := geom.Rect{X: n.X, Y: n.Y, Width: n.Width, Height: n.Height}
	dir := ir.Point{X: toward.X - center.X, Y: toward.Y - center.Y}
	if dir.X == 0 && dir.Y == 0 {
		return center
	}
	// Simple boundary projection: move toward `toward` until leaving the box, axis by axis.
	p := center
	if dir.X > 0 {
		p.X = r.Right()
	} else if dir.X < 0 {
		p.X = r.X
	}
	if dir.Y > 0 {
		p.Y = r.Bottom()
	} else if dir.Y < 0 {
		p.Y = r.Y
	}
	return p
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
