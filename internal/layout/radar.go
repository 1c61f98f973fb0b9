package layout

import (
	"github.com/inkmesh/diagramlayout/config"
	"github.com/inkmesh/diagramlayout/ir"
	"github.com/inkmesh/diagramlayout/label"
	"github.com/inkmesh/diagramlayout/metrics"
)

// computeRadar places a fixed-size canvas with one legend row per dataset, grounded on
// original_source/src/layout/radar.rs. The radial axis grid and per-axis scaling are a
// renderer/theme concern driven directly by the payload's Axes and Datasets values.
func computeRadar(g *ir.Graph, theme config.Theme, cfg config.Config, m metrics.Measurer) ir.Layout {
	fontSize := theme.FontSize
	if fontSize <= 0 {
		fontSize = config.DefaultTheme().FontSize
	}
	rc := cfg.Radar

	centerX := rc.Width / 2
	centerY := rc.Height / 2
	legendOffset := rc.MaxRadius * 0.875
	legendBaseX := centerX + legendOffset
	legendBaseY := centerY - legendOffset
	legendRowHeight := fontSize + 6

	var payload ir.RadarPayload
	if g.Radar != nil {
		payload = *g.Radar
	}

	legend := make([]ir.RadarLegendItem, 0, len(payload.Datasets))
	for i, ds := range payload.Datasets {
		block := label.Measure(m, ds.Name, fontSize, cfg)
		w := rc.LegendBox + rc.LegendGap + block.Width
		h := maxf(block.Height, rc.LegendBox)
		legend = append(legend, ir.RadarLegendItem{
			Name:   ds.Name,
			Label:  block,
			X:      legendBaseX,
			Y:      legendBaseY + float64(i)*legendRowHeight,
			Width:  w,
			Height: h,
		})
	}

	return ir.Layout{
		Kind:   g.Kind,
		Width:  rc.Width,
		Height: rc.Height,
		Radar: &ir.RadarLayout{
			Width:     rc.Width,
			Height:    rc.Height,
			CenterX:   centerX,
			CenterY:   centerY,
			MaxRadius: rc.MaxRadius,
			Legend:    legend,
		},
	}
}
