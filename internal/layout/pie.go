package layout

import (
	"fmt"
	"math"
	"sort"

	"github.com/inkmesh/diagramlayout/config"
	"github.com/inkmesh/diagramlayout/internal/palette"
	"github.com/inkmesh/diagramlayout/ir"
	"github.com/inkmesh/diagramlayout/label"
	"github.com/inkmesh/diagramlayout/metrics"
)

// computePie places a pie's slices around a ring sized to a fixed 450px canvas height, plus a legend
// column to the right and an optional title above the centre, grounded on
// original_source/src/layout/pie.rs.
func computePie(g *ir.Graph, theme config.Theme, cfg config.Config, m metrics.Measurer) ir.Layout {
	pc := cfg.Pie
	if pc.RenderMode == "error" {
		return buildErrorLayout(pc.ErrorViewBoxWidth, pc.ErrorViewBoxHeight, pc.ErrorRenderWidth, pc.ErrorRenderHeight,
			pc.ErrorMessage, pc.ErrorVersion, pc.ErrorTextX, pc.ErrorTextY, pc.ErrorTextSize,
			pc.ErrorVersionX, pc.ErrorVersionY, pc.ErrorVersionSize, pc.IconScale, pc.IconTX, pc.IconTY)
	}

	fontSize := theme.FontSize
	if fontSize <= 0 {
		fontSize = config.DefaultTheme().FontSize
	}

	var payload ir.PiePayload
	if g.Pie != nil {
		payload = *g.Pie
	}

	cyc := palette.NewCycle()

	type datum struct {
		index int
		label string
		value float64
	}
	total := 0.0
	for _, s := range payload.Slices {
		total += maxf(s.Value, 0)
	}
	fallbackTotal := maxf(float64(len(payload.Slices)), 1)
	if total <= 0 {
		total = fallbackTotal
	}

	var filtered []datum
	for i, s := range payload.Slices {
		v := maxf(s.Value, 0)
		percent := 0.0
		if total > 0 {
			percent = v / total * 100
		}
		if percent >= pc.MinPercent {
			filtered = append(filtered, datum{index: i, label: s.Label, value: v})
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].value != filtered[j].value {
			return filtered[i].value > filtered[j].value
		}
		return filtered[i].index < filtered[j].index
	})

	const height = 450.0
	pieWidth := height
	radius := maxf(minf(pieWidth, height)/2-pc.Margin, 1)
	centerX := pieWidth / 2
	centerY := height / 2
	legendX := centerX + radius + pc.Margin*0.6

	slices := make([]ir.PieSliceLayout, 0, len(filtered))
	angle := 0.0
	for _, d := range filtered {
		var span float64
		if total > 0 {
			span = d.value / total * 2 * math.Pi
		} else {
			span = 2 * math.Pi / fallbackTotal
		}
		slices = append(slices, ir.PieSliceLayout{
			Label:      d.label,
			Value:      d.value,
			Percent:    d.value / total * 100,
			StartAngle: angle,
			EndAngle:   angle + span,
			Color:      cyc.Color(d.label),
		})
		angle += span
	}

	legendItemHeight := pc.LegendRectSize + pc.LegendSpacing
	legendOffset := legendItemHeight * float64(len(payload.Slices)) / 2

	legendWidth := 0.0
	legend := make([]ir.PieLegendItem, 0, len(payload.Slices))
	for i, s := range payload.Slices {
		text := s.Label
		if payload.ShowData {
			text = s.Label + " [" + formatPieValue(s.Value) + "]"
		}
		block := label.Measure(m, text, fontSize, cfg)
		legendWidth = maxf(legendWidth, block.Width)
		vertical := float64(i)*legendItemHeight - legendOffset
		legend = append(legend, ir.PieLegendItem{
			Label:  s.Label,
			Color:  cyc.Color(s.Label),
			X:      legendX,
			Y:      centerY + vertical,
			Width:  pc.LegendRectSize,
			Height: pc.LegendRectSize,
		})
	}

	width := legendX + pc.LegendRectSize + pc.LegendSpacing + legendWidth + pc.Margin*0.4

	var title *ir.LabelAnchor
	if payload.Title != "" {
		block := label.Measure(m, payload.Title, fontSize, cfg)
		title = &ir.LabelAnchor{
			Text: block,
			X:    centerX,
			Y:    centerY - (height-50)/2,
		}
	}

	return ir.Layout{
		Kind:   g.Kind,
		Width:  maxf(width, 200),
		Height: maxf(height, 1),
		Pie: &ir.PieLayout{
			CenterX: centerX,
			CenterY: centerY,
			Radius:  radius,
			Slices:  slices,
			Legend:  legend,
			Title:   title,
		},
	}
}

func formatPieValue(v float64) string {
	rounded := math.Round(v*100) / 100
	if math.Abs(rounded-math.Round(rounded)) < 0.001 {
		return fmt.Sprintf("%.0f", rounded)
	}
	return fmt.Sprintf("%.2f", rounded)
}
