package layout

import (
	"sort"

	"github.com/inkmesh/diagramlayout/config"
	"github.com/inkmesh/diagramlayout/ir"
	"github.com/inkmesh/diagramlayout/label"
	"github.com/inkmesh/diagramlayout/metrics"
)

// computeMindmap lays out the tree radially: root centered, top-level branches alternating
// left/right by Section parity, each side's subtrees stacked vertically and centered on the
// root, recursing outward by level. Grounded on spec.md's mindmap module description, since the
// reference implementation renders this diagram kind in its presentation layer rather than
// layout.rs.
func computeMindmap(g *ir.Graph, theme config.Theme, cfg config.Config, m metrics.Measurer) ir.Layout {
	fontSize := theme.FontSize
	if fontSize <= 0 {
		fontSize = config.DefaultTheme().FontSize
	}
	mc := cfg.Mindmap

	var payload ir.MindmapPayload
	if g.Mindmap != nil {
		payload = *g.Mindmap
	}
	if payload.Nodes == nil || payload.RootID == "" {
		return ir.Layout{Kind: g.Kind, Width: 16, Height: 16, Mindmap: &ir.MindmapLayout{}}
	}

	blocks := make(map[string]ir.TextBlock, len(payload.Nodes))
	for id, n := range payload.Nodes {
		blocks[id] = label.Measure(m, n.Label, fontSize, cfg)
	}
	nodeW := func(id string) float64 { return blocks[id].Width + 24 }
	nodeH := func(id string) float64 { return blocks[id].Height + 16 }

	subtreeH := make(map[string]float64, len(payload.Nodes))
	var measureSubtree func(id string) float64
	measureSubtree = func(id string) float64 {
		if h, ok := subtreeH[id]; ok {
			return h
		}
		node := payload.Nodes[id]
		own := nodeH(id)
		if node == nil || len(node.Children) == 0 {
			subtreeH[id] = own
			return own
		}
		total := 0.0
		for i, c := range node.Children {
			if i > 0 {
				total += mc.VerticalGap
			}
			total += measureSubtree(c)
		}
		h := maxf(own, total)
		subtreeH[id] = h
		return h
	}
	measureSubtree(payload.RootID)

	layouts := make(map[string]*ir.MindmapNodeLayout, len(payload.Nodes))

	var assign func(id string, xEdge, yTop float64, goRight bool) float64
	assign = func(id string, xEdge, yTop float64, goRight bool) float64 {
		node := payload.Nodes[id]
		subH := subtreeH[id]
		h := nodeH(id)
		w := nodeW(id)
		cy := yTop + subH/2
		var x float64
		if goRight {
			x = xEdge
		} else {
			x = xEdge - w
		}
		layouts[id] = &ir.MindmapNodeLayout{
			ID: id, X: x, Y: cy - h/2, Width: w, Height: h, Label: blocks[id], Level: node.Level,
		}
		if node == nil || len(node.Children) == 0 {
			return cy
		}
		childrenTotal := 0.0
		for i, c := range node.Children {
			if i > 0 {
				childrenTotal += mc.VerticalGap
			}
			childrenTotal += subtreeH[c]
		}
		childYTop := yTop + (subH-childrenTotal)/2
		var childEdge float64
		if goRight {
			childEdge = x + w + mc.HorizontalGap
		} else {
			childEdge = x - mc.HorizontalGap
		}
		for _, c := range node.Children {
			assign(c, childEdge, childYTop, goRight)
			childYTop += subtreeH[c] + mc.VerticalGap
		}
		return cy
	}

	root := payload.Nodes[payload.RootID]
	rootW := nodeW(payload.RootID)
	rootH := nodeH(payload.RootID)

	var leftIDs, rightIDs []string
	if root != nil {
		for _, c := range root.Children {
			if payload.Nodes[c].Section%2 == 0 {
				rightIDs = append(rightIDs, c)
			} else {
				leftIDs = append(leftIDs, c)
			}
		}
	}
	sort.Strings(leftIDs)
	sort.Strings(rightIDs)

	stackHeight := func(ids []string) float64 {
		total := 0.0
		for i, id := range ids {
			if i > 0 {
				total += mc.VerticalGap
			}
			total += subtreeH[id]
		}
		return total
	}
	leftTotal := stackHeight(leftIDs)
	rightTotal := stackHeight(rightIDs)

	rootCY := maxf(maxf(leftTotal, rightTotal), rootH) / 2
	layouts[payload.RootID] = &ir.MindmapNodeLayout{
		ID: payload.RootID, X: -rootW / 2, Y: rootCY - rootH/2, Width: rootW, Height: rootH,
		Label: blocks[payload.RootID], Level: 0,
	}

	leftYTop := rootCY - leftTotal/2
	for _, id := range leftIDs {
		assign(id, -rootW/2-mc.HorizontalGap, leftYTop, false)
		leftYTop += subtreeH[id] + mc.VerticalGap
	}
	rightYTop := rootCY - rightTotal/2
	for _, id := range rightIDs {
		assign(id, rootW/2+mc.HorizontalGap, rightYTop, true)
		rightYTop += subtreeH[id] + mc.VerticalGap
	}

	minX, minY := 0.0, 0.0
	maxX, maxY := rootW, rootH
	for _, nl := range layouts {
		minX = minf(minX, nl.X)
		minY = minf(minY, nl.Y)
		maxX = maxf(maxX, nl.X+nl.Width)
		maxY = maxf(maxY, nl.Y+nl.Height)
	}
	const pad = 16.0
	dx, dy := pad-minX, pad-minY

	nodes := make([]ir.MindmapNodeLayout, 0, len(layouts))
	ids := make([]string, 0, len(layouts))
	for id := range layouts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		nl := *layouts[id]
		nl.X += dx
		nl.Y += dy
		nodes = append(nodes, nl)
	}

	var edges []ir.MindmapEdgeLayout
	for _, id := range ids {
		node := payload.Nodes[id]
		if node == nil {
			continue
		}
		width := maxf(mc.StrokeBase-float64(node.Level)*mc.StrokeStep, 1)
		for _, c := range node.Children {
			edges = append(edges, ir.MindmapEdgeLayout{From: id, To: c, StrokeWidth: width})
		}
	}

	return ir.Layout{
		Kind:   g.Kind,
		Width:  maxX - minX + 2*pad,
		Height: maxY - minY + 2*pad,
		Mindmap: &ir.MindmapLayout{
			Nodes: nodes,
			Edges: edges,
		},
	}
}
