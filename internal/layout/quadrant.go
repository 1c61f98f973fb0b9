package layout

import (
	"github.com/inkmesh/diagramlayout/config"
	"github.com/inkmesh/diagramlayout/internal/geom"
	"github.com/inkmesh/diagramlayout/ir"
	"github.com/inkmesh/diagramlayout/label"
	"github.com/inkmesh/diagramlayout/metrics"
)

var quadrantPalette = []string{
	"#6366f1", "#f59e0b", "#10b981", "#ef4444", "#8b5cf6", "#06b6d4",
}

// computeQuadrant places the axis grid, axis/quadrant labels, and scattered points of a
// quadrant chart, grounded on original_source/src/layout/quadrant.rs.
func computeQuadrant(g *ir.Graph, theme config.Theme, cfg config.Config, m metrics.Measurer) ir.Layout {
	fontSize := theme.FontSize
	if fontSize <= 0 {
		fontSize = config.DefaultTheme().FontSize
	}

	var payload ir.QuadrantPayload
	if g.Quadrant != nil {
		payload = *g.Quadrant
	}

	padding := fontSize * 1.6
	gridSize := cfg.Quadrant.GridSize

	measureOpt := func(s string) *ir.TextBlock {
		if s == "" {
			return nil
		}
		b := label.Measure(m, s, fontSize, cfg)
		return &b
	}

	title := measureOpt(payload.Title)
	titleHeight := 0.0
	if title != nil {
		titleHeight = title.Height + padding
	}

	xLeft := measureOpt(payload.XAxisLeft)
	xRight := measureOpt(payload.XAxisRight)
	yBottom := measureOpt(payload.YAxisBottom)
	yTop := measureOpt(payload.YAxisTop)

	var qLabels [4]*ir.TextBlock
	for i, s := range payload.QuadrantLabels {
		qLabels[i] = measureOpt(s)
	}

	yAxisWidth := padding
	if yBottom != nil {
		yAxisWidth = yBottom.Height + padding
	}
	xAxisHeight := padding
	if xLeft != nil {
		xAxisHeight = xLeft.Height + padding
	}

	gridX := yAxisWidth + padding
	gridY := titleHeight + padding

	points := make([]ir.QuadrantPointLayout, 0, len(payload.Points))
	for i, p := range payload.Points {
		px := gridX + geom.Clamp(p.X, 0, 1)*gridSize
		py := gridY + (1-geom.Clamp(p.Y, 0, 1))*gridSize
		points = append(points, ir.QuadrantPointLayout{
			Label: label.Measure(m, p.Label, fontSize, cfg),
			X:     px,
			Y:     py,
			Color: quadrantPalette[i%len(quadrantPalette)],
		})
	}

	width := gridX + gridSize + padding*2
	height := gridY + gridSize + xAxisHeight + padding

	return ir.Layout{
		Kind:   g.Kind,
		Width:  width,
		Height: height,
		Quadrant: &ir.QuadrantLayout{
			Title:          title,
			TitleY:         titleHeight / 2,
			XAxisLeft:      xLeft,
			XAxisRight:     xRight,
			YAxisBottom:    yBottom,
			YAxisTop:       yTop,
			QuadrantLabels: qLabels,
			Points:         points,
			GridX:          gridX,
			GridY:          gridY,
			GridWidth:      gridSize,
			GridHeight:     gridSize,
		},
	}
}
