package layout

import (
	"sort"

	"github.com/inkmesh/diagramlayout/config"
	"github.com/inkmesh/diagramlayout/ir"
	"github.com/inkmesh/diagramlayout/label"
	"github.com/inkmesh/diagramlayout/metrics"
)

// c4Bounds tracks one boundary's row-packing cursor, grounded on spec.md §4.8.
type c4Bounds struct {
	startX, stopX float64
	startY, stopY float64
	widthLimit    float64
	shapesInRow   int
}

// computeC4 is a hierarchical row packer: shapes are inserted into their owning boundary's
// current row until it would exceed the configured width or shape-per-row limit, then wrap to
// the next row below, per spec.md §4.8.
func computeC4(g *ir.Graph, theme config.Theme, cfg config.Config, m metrics.Measurer) ir.Layout {
	fontSize := theme.FontSize
	if fontSize <= 0 {
		fontSize = config.DefaultTheme().FontSize
	}
	cc := cfg.C4

	var payload ir.C4Payload
	if g.C4 != nil {
		payload = *g.C4
	}

	bounds := map[string]*c4Bounds{"": {widthLimit: 1400}}
	for _, b := range payload.Boundaries {
		bounds[b.ID] = &c4Bounds{widthLimit: 1400}
	}

	shapeLayouts := make(map[string]*ir.C4ShapeLayout, len(payload.Shapes))
	order := make([]string, 0, len(payload.Boundaries)+1)
	order = append(order, "")
	for _, b := range payload.Boundaries {
		order = append(order, b.ID)
	}

	for _, boundaryID := range order {
		bd, ok := bounds[boundaryID]
		if !ok {
			continue
		}
		for _, shape := range payload.Shapes {
			if shape.BoundaryID != boundaryID {
				continue
			}
			block := label.Measure(m, shape.Label, fontSize, cfg)
			w := maxf(block.Width+cc.Margin*2, 140)
			h := maxf(block.Height+cc.Margin*3, 80)

			if bd.shapesInRow >= cc.ShapeInRow || bd.stopX+w+cc.Margin > bd.widthLimit {
				bd.startX = 0
				bd.startY = bd.stopY + 2*cc.Margin
				bd.stopX = 0
				bd.shapesInRow = 0
			}
			x := bd.stopX
			y := bd.startY

			shapeLayouts[shape.ID] = &ir.C4ShapeLayout{
				ID: shape.ID, X: x, Y: y, Width: w, Height: h, Kind: shape.Kind, Label: block,
			}

			bd.stopX = x + w + cc.Margin
			bd.stopY = maxf(bd.stopY, y+h)
			bd.shapesInRow++
		}
	}

	boundaryLayouts := make(map[string]*ir.C4BoundaryLayout, len(payload.Boundaries))
	for _, b := range payload.Boundaries {
		bd := bounds[b.ID]
		if bd == nil || bd.shapesInRow == 0 && bd.stopX == 0 && bd.stopY == 0 {
			boundaryLayouts[b.ID] = &ir.C4BoundaryLayout{ID: b.ID, Label: b.Label}
			continue
		}
		block := label.Measure(m, b.Label, fontSize, cfg)
		boundaryLayouts[b.ID] = &ir.C4BoundaryLayout{
			ID:     b.ID,
			X:      -cc.Margin,
			Y:      -cc.Margin - block.Height,
			Width:  bd.stopX + cc.Margin,
			Height: bd.stopY + 2*cc.Margin + block.Height,
			Label:  b.Label,
		}
	}

	shapes := make([]ir.C4ShapeLayout, 0, len(shapeLayouts))
	shapeIDs := make([]string, 0, len(shapeLayouts))
	for id := range shapeLayouts {
		shapeIDs = append(shapeIDs, id)
	}
	sort.Strings(shapeIDs)
	for _, id := range shapeIDs {
		shapes = append(shapes, *shapeLayouts[id])
	}

	boundaries := make([]ir.C4BoundaryLayout, 0, len(boundaryLayouts))
	for _, b := range payload.Boundaries {
		boundaries = append(boundaries, *boundaryLayouts[b.ID])
	}

	rels := make([]ir.C4RelLayout, 0, len(payload.Rels))
	for _, r := range payload.Rels {
		from, fromOK := shapeLayouts[r.From]
		to, toOK := shapeLayouts[r.To]
		if !fromOK || !toOK {
			continue
		}
		fromBox := rectOf(from.X, from.Y, from.Width, from.Height)
		toBox := rectOf(to.X, to.Y, to.Width, to.Height)
		start := raycastToward(fromBox, toBox)
		end := raycastToward(toBox, fromBox)
		rels = append(rels, ir.C4RelLayout{From: r.From, To: r.To, StartPoint: start, EndPoint: end, Label: r.Label})
	}

	width, height := 0.0, 0.0
	for _, s := range shapes {
		width = maxf(width, s.X+s.Width)
		height = maxf(height, s.Y+s.Height)
	}
	for _, b := range boundaries {
		width = maxf(width, b.X+b.Width)
		height = maxf(height, b.Y+b.Height)
	}

	return ir.Layout{
		Kind:   g.Kind,
		Width:  width + cc.Margin,
		Height: height + cc.Margin,
		C4: &ir.C4Layout{
			Shapes:     shapes,
			Boundaries: boundaries,
			Rels:       rels,
		},
	}
}

type c4Rect struct{ x, y, w, h float64 }

func rectOf(x, y, w, h float64) c4Rect { return c4Rect{x, y, w, h} }

// raycastToward returns the point where a ray from from's center toward to's center crosses
// from's own rectangle boundary, a closed-form per-quadrant intersection per spec.md §4.8.
func raycastToward(from, to c4Rect) ir.Point {
	fcx, fcy := from.x+from.w/2, from.y+from.h/2
	tcx, tcy := to.x+to.w/2, to.y+to.h/2
	dx, dy := tcx-fcx, tcy-fcy
	if dx == 0 && dy == 0 {
		return ir.Point{X: fcx, Y: fcy}
	}
	halfW, halfH := from.w/2, from.h/2
	var scale float64
	if dx != 0 {
		scale = halfW / absf(dx)
	} else {
		scale = 1e9
	}
	if dy != 0 {
		scale = minf(scale, halfH/absf(dy))
	}
	return ir.Point{X: fcx + dx*scale, Y: fcy + dy*scale}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
