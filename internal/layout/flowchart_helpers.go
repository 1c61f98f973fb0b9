package layout

import (
	"math"

	"github.com/inkmesh/diagramlayout/config"
	"github.com/inkmesh/diagramlayout/ir"
	"github.com/inkmesh/diagramlayout/label"
	"github.com/inkmesh/diagramlayout/metrics"
)

// attachEdgeLabels measures and provisionally anchors an edge's center/start/end labels at the
// midpoint (or first/last segment, for start/end) of its routed path; final placement is refined
// by the collision-aware label placer.
func attachEdgeLabels(el *ir.EdgeLayout, e ir.Edge, m metrics.Measurer, fontSize float64, cfg config.Config) {
	if e.CenterLabel != "" {
		block := label.Measure(m, e.CenterLabel, fontSize, cfg)
		mid := pointAtFraction(el.Points, 0.5)
		el.CenterLabel = &ir.LabelAnchor{Text: block, X: mid.X - block.Width/2, Y: mid.Y - block.Height/2}
	}
	if e.StartLabel != "" {
		block := label.Measure(m, e.StartLabel, fontSize, cfg)
		p := pointAtFraction(el.Points, 0.15)
		el.StartLabel = &ir.LabelAnchor{Text: block, X: p.X, Y: p.Y}
	}
	if e.EndLabel != "" {
		block := label.Measure(m, e.EndLabel, fontSize, cfg)
		p := pointAtFraction(el.Points, 0.85)
		el.EndLabel = &ir.LabelAnchor{Text: block, X: p.X, Y: p.Y}
	}
}

func pointAtFraction(pts []ir.Point, frac float64) ir.Point {
	if len(pts) == 0 {
		return ir.Point{}
	}
	if len(pts) == 1 {
		return pts[0]
	}
	total := 0.0
	lengths := make([]float64, len(pts)-1)
	for i := 0; i+1 < len(pts); i++ {
		d := math.Hypot(pts[i+1].X-pts[i].X, pts[i+1].Y-pts[i].Y)
		lengths[i] = d
		total += d
	}
	if total == 0 {
		return pts[0]
	}
	target := total * frac
	acc := 0.0
	for i, d := range lengths {
		if acc+d >= target {
			t := 0.0
			if d > 0 {
				t = (target - acc) / d
			}
			return ir.Point{
				X: pts[i].X + (pts[i+1].X-pts[i].X)*t,
				Y: pts[i].Y + (pts[i+1].Y-pts[i].Y)*t,
			}
		}
		acc += d
	}
	return pts[len(pts)-1]
}

// buildSubgraphs computes each subgraph's bounding box from its member nodes' placed geometry,
// padded per spec.md §4.2, with extra top padding reserved for the subgraph's own label.
func buildSubgraphs(g *ir.Graph, nodes map[string]*ir.NodeLayout, m metrics.Measurer, fontSize float64, cfg config.Config) []*ir.SubgraphLayout {
	out := make([]*ir.SubgraphLayout, 0, len(g.Subgraphs))
	for _, sg := range g.Subgraphs {
		minX, minY := math.Inf(1), math.Inf(1)
		maxX, maxY := math.Inf(-1), math.Inf(-1)
		found := false
		for _, id := range sg.NodeIDs {
			n, ok := nodes[id]
			if !ok {
				continue
			}
			found = true
			minX = minf(minX, n.X)
			minY = minf(minY, n.Y)
			maxX = maxf(maxX, n.X+n.Width)
			maxY = maxf(maxY, n.Y+n.Height)
		}
		if !found {
			continue
		}

		block := label.Measure(m, sg.Label, fontSize, cfg)
		padMain := cfg.Flowchart.SubgraphPaddingMain
		padCross := cfg.Flowchart.SubgraphPaddingCross
		topExtra := block.Height + fontSize/2

		out = append(out, &ir.SubgraphLayout{
			Label:   block,
			NodeIDs: sg.NodeIDs,
			X:       minX - padCross,
			Y:       minY - padMain - topExtra,
			Width:   (maxX - minX) + 2*padCross,
			Height:  (maxY - minY) + 2*padMain + topExtra,
		})
	}
	return out
}

// buildStateNotes places a note box to the left or right of its anchor node, per spec.md's
// state-note reservation.
func buildStateNotes(g *ir.Graph, nodes map[string]*ir.NodeLayout, m metrics.Measurer, fontSize float64, cfg config.Config) []ir.StateNoteLayout {
	out := make([]ir.StateNoteLayout, 0, len(g.StateNotes))
	for _, note := range g.StateNotes {
		n, ok := nodes[note.NodeID]
		if !ok {
			continue
		}
		block := label.Measure(m, note.Text, fontSize, cfg)
		w := block.Width + 2*cfg.NodePaddingX
		h := block.Height + 2*cfg.NodePaddingY
		x := n.X + n.Width + cfg.NodeSpacing/2
		if note.Position == "left of" {
			x = n.X - cfg.NodeSpacing/2 - w
		}
		out = append(out, ir.StateNoteLayout{
			NodeID: note.NodeID,
			Text:   block,
			X:      x,
			Y:      n.Y + n.Height/2 - h/2,
			Width:  w,
			Height: h,
		})
	}
	return out
}

// normalize shifts every coordinate in l so the overall bounding box's top-left corner sits at
// (padding, padding), per spec.md's "shift into positive quadrant with 8px padding" final pass,
// and sets l.Width/l.Height to the padded extent.
func normalize(l *ir.Layout) {
	const padding = 8.0
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	visit := func(x, y, w, h float64) {
		minX = minf(minX, x)
		minY = minf(minY, y)
		maxX = maxf(maxX, x+w)
		maxY = maxf(maxY, y+h)
	}

	for _, n := range l.Nodes {
		visit(n.X, n.Y, n.Width, n.Height)
	}
	for _, e := range l.Edges {
		for _, p := range e.Points {
			visit(p.X, p.Y, 0, 0)
		}
	}
	for _, s := range l.Subgraphs {
		visit(s.X, s.Y, s.Width, s.Height)
	}
	for _, note := range l.StateNotes {
		visit(note.X, note.Y, note.Width, note.Height)
	}

	if math.IsInf(minX, 1) {
		l.Width, l.Height = 2 * padding, 2 * padding
		return
	}

	dx, dy := padding-minX, padding-minY
	for _, n := range l.Nodes {
		n.X += dx
		n.Y += dy
	}
	for _, e := range l.Edges {
		for i := range e.Points {
			e.Points[i].X += dx
			e.Points[i].Y += dy
		}
		if e.CenterLabel != nil {
			e.CenterLabel.X += dx
			e.CenterLabel.Y += dy
		}
		if e.StartLabel != nil {
			e.StartLabel.X += dx
			e.StartLabel.Y += dy
		}
		if e.EndLabel != nil {
			e.EndLabel.X += dx
			e.EndLabel.Y += dy
		}
	}
	for _, s := range l.Subgraphs {
		s.X += dx
		s.Y += dy
	}
	for i := range l.StateNotes {
		l.StateNotes[i].X += dx
		l.StateNotes[i].Y += dy
	}

	l.Width = maxX - minX + 2*padding
	l.Height = maxY - minY + 2*padding
}
