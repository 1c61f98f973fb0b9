package layout

import (
	"sort"

	"github.com/inkmesh/diagramlayout/config"
	"github.com/inkmesh/diagramlayout/ir"
	"github.com/inkmesh/diagramlayout/metrics"
)

// archBounds tracks one group's row-packing cursor, the same shape as c4Bounds.
type archBounds struct {
	startX, stopX float64
	stopY         float64
	widthLimit    float64
	itemsInRow    int
}

// computeArchitecture lays out groups, services, and junctions with the same hierarchical
// row-packer as computeC4 (services are uniform icon-sized boxes rather than label-measured
// ones, matching Mermaid's architecture-beta grammar), then routes edges between the fixed
// compass-direction ports (`svcA:R -- L:svcB`) the grammar names explicitly instead of computing
// ports from node degree the way the flowchart driver does. spec.md §1 lists architecture diagrams
// in scope but the distillation carries no dedicated module section; this driver is grounded on
// computeC4's boundary packing (`c4.go`) plus computeGitGraph's elbowed connector construction
// (`gitArrowPath` in `gitgraph.go`) for the port-to-port routing.
func computeArchitecture(g *ir.Graph, theme config.Theme, cfg config.Config, m metrics.Measurer) ir.Layout {
	ac := cfg.Architecture

	var payload ir.ArchitecturePayload
	if g.Architecture != nil {
		payload = *g.Architecture
	}

	bounds := map[string]*archBounds{"": {widthLimit: 1200}}
	for _, grp := range payload.Groups {
		bounds[grp.ID] = &archBounds{widthLimit: 1200}
	}

	order := make([]string, 0, len(payload.Groups)+1)
	order = append(order, "")
	for _, grp := range payload.Groups {
		order = append(order, grp.ID)
	}

	type placed struct {
		x, y, w, h float64
	}
	svcRect := make(map[string]placed, len(payload.Services))
	juncRect := make(map[string]placed, len(payload.Junctions))

	place := func(groupID string, w, h float64) (float64, float64) {
		bd, ok := bounds[groupID]
		if !ok {
			bd = &archBounds{widthLimit: 1200}
			bounds[groupID] = bd
		}
		if bd.itemsInRow >= ac.ServiceInRow || bd.stopX+w+ac.Margin > bd.widthLimit {
			bd.startX = 0
			bd.stopY += h + ac.Margin
			bd.stopX = 0
			bd.itemsInRow = 0
		}
		x, y := bd.stopX, bd.stopY
		bd.stopX = x + w + ac.Margin
		bd.itemsInRow++
		return x, y
	}

	for _, grpID := range order {
		for _, svc := range payload.Services {
			if svc.GroupID != grpID {
				continue
			}
			x, y := place(grpID, ac.ServiceWidth, ac.ServiceHeight)
			svcRect[svc.ID] = placed{x: x, y: y, w: ac.ServiceWidth, h: ac.ServiceHeight}
		}
		for _, j := range payload.Junctions {
			if j.GroupID != grpID {
				continue
			}
			x, y := place(grpID, 0, 0)
			juncRect[j.ID] = placed{x: x, y: y}
		}
	}

	groupLayouts := make(map[string]*ir.ArchitectureGroupLayout, len(payload.Groups))
	for _, grp := range payload.Groups {
		bd := bounds[grp.ID]
		if bd == nil || (bd.stopX == 0 && bd.stopY == 0 && bd.itemsInRow == 0) {
			groupLayouts[grp.ID] = &ir.ArchitectureGroupLayout{ID: grp.ID, Label: labelBlockOrID(m, grp.Label, grp.ID, theme, cfg)}
			continue
		}
		label := labelBlockOrID(m, grp.Label, grp.ID, theme, cfg)
		groupLayouts[grp.ID] = &ir.ArchitectureGroupLayout{
			ID:     grp.ID,
			X:      -ac.Margin,
			Y:      -ac.Margin - label.Height,
			Width:  bd.stopX + ac.Margin,
			Height: bd.stopY + ac.ServiceHeight + 2*ac.Margin + label.Height,
			Label:  label,
		}
	}

	svcIDs := make([]string, 0, len(svcRect))
	for id := range svcRect {
		svcIDs = append(svcIDs, id)
	}
	sort.Strings(svcIDs)
	services := make([]ir.ArchitectureServiceLayout, 0, len(svcIDs))
	for _, id := range svcIDs {
		r := svcRect[id]
		var label, icon string
		for _, svc := range payload.Services {
			if svc.ID == id {
				label, icon = svc.Label, svc.Icon
				break
			}
		}
		services = append(services, ir.ArchitectureServiceLayout{
			ID: id, X: r.x, Y: r.y, Width: r.w, Height: r.h,
			Icon: icon, Label: labelBlockOrID(m, label, id, theme, cfg),
		})
	}

	juncIDs := make([]string, 0, len(juncRect))
	for id := range juncRect {
		juncIDs = append(juncIDs, id)
	}
	sort.Strings(juncIDs)
	junctions := make([]ir.ArchitectureJunctionLayout, 0, len(juncIDs))
	for _, id := range juncIDs {
		r := juncRect[id]
		junctions = append(junctions, ir.ArchitectureJunctionLayout{ID: id, X: r.x, Y: r.y})
	}

	rectOfNode := func(id string) (placed, bool) {
		if r, ok := svcRect[id]; ok {
			return r, true
		}
		if r, ok := juncRect[id]; ok {
			return r, true
		}
		return placed{}, false
	}

	edges := make([]ir.ArchitectureEdgeLayout, 0, len(payload.Edges))
	for _, e := range payload.Edges {
		fromRect, fromOK := rectOfNode(e.From)
		toRect, toOK := rectOfNode(e.To)
		if !fromOK || !toOK {
			continue
		}
		path := architectureEdgePath(fromRect.x, fromRect.y, fromRect.w, fromRect.h, e.FromSide, toRect.x, toRect.y, toRect.w, toRect.h, e.ToSide)
		edges = append(edges, ir.ArchitectureEdgeLayout{From: e.From, To: e.To, Points: path, Label: e.Label})
	}

	groups := make([]ir.ArchitectureGroupLayout, 0, len(payload.Groups))
	for _, grp := range payload.Groups {
		groups = append(groups, *groupLayouts[grp.ID])
	}

	width, height := 0.0, 0.0
	for _, s := range services {
		width = maxf(width, s.X+s.Width)
		height = maxf(height, s.Y+s.Height)
	}
	for _, grp := range groups {
		width = maxf(width, grp.X+grp.Width)
		height = maxf(height, grp.Y+grp.Height)
	}

	return ir.Layout{
		Kind:   g.Kind,
		Width:  width + ac.Margin,
		Height: height + ac.Margin,
		Architecture: &ir.ArchitectureLayout{
			Groups:    groups,
			Services:  services,
			Junctions: junctions,
			Edges:     edges,
		},
	}
}

// archSidePoint returns the midpoint of the named compass side of a rectangle.
func archSidePoint(x, y, w, h float64, side ir.ArchitectureSide) ir.Point {
	switch side {
	case ir.ArchSideLeft:
		return ir.Point{X: x, Y: y + h/2}
	case ir.ArchSideRight:
		return ir.Point{X: x + w, Y: y + h/2}
	case ir.ArchSideTop:
		return ir.Point{X: x + w/2, Y: y}
	default: // ArchSideBottom
		return ir.Point{X: x + w/2, Y: y + h}
	}
}

// archSideDir returns the outward unit normal of the named compass side.
func archSideDir(side ir.ArchitectureSide) (float64, float64) {
	switch side {
	case ir.ArchSideLeft:
		return -1, 0
	case ir.ArchSideRight:
		return 1, 0
	case ir.ArchSideTop:
		return 0, -1
	default: // ArchSideBottom
		return 0, 1
	}
}

const architectureStub = 16.0

// architectureEdgePath connects two compass ports with a stub-out, an elbow if the stubs don't
// already align, and a stub-in, the same elbowed-connector shape as gitArrowPath but anchored on
// named sides instead of lane coordinates.
func architectureEdgePath(fx, fy, fw, fh float64, fromSide ir.ArchitectureSide, tx, ty, tw, th float64, toSide ir.ArchitectureSide) []ir.Point {
	p1 := archSidePoint(fx, fy, fw, fh, fromSide)
	p2 := archSidePoint(tx, ty, tw, th, toSide)
	dx1, dy1 := archSideDir(fromSide)
	dx2, dy2 := archSideDir(toSide)
	s1 := ir.Point{X: p1.X + dx1*architectureStub, Y: p1.Y + dy1*architectureStub}
	s2 := ir.Point{X: p2.X + dx2*architectureStub, Y: p2.Y + dy2*architectureStub}

	if s1.X == s2.X || s1.Y == s2.Y {
		return dedupArchPoints([]ir.Point{p1, s1, s2, p2})
	}

	var elbow ir.Point
	if dx1 != 0 {
		elbow = ir.Point{X: s2.X, Y: s1.Y}
	} else {
		elbow = ir.Point{X: s1.X, Y: s2.Y}
	}
	return dedupArchPoints([]ir.Point{p1, s1, elbow, s2, p2})
}

func dedupArchPoints(pts []ir.Point) []ir.Point {
	out := pts[:0:0]
	for i, p := range pts {
		if i > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}
