package layout

import (
	"github.com/inkmesh/diagramlayout/config"
	"github.com/inkmesh/diagramlayout/ir"
	"github.com/inkmesh/diagramlayout/label"
	"github.com/inkmesh/diagramlayout/metrics"
)

// computeTimeline lays periods out left to right in declaration order, stacking each period's
// events underneath it and each section as a coloured band spanning the periods it owns,
// grounded on spec.md's timeline module description.
func computeTimeline(g *ir.Graph, theme config.Theme, cfg config.Config, m metrics.Measurer) ir.Layout {
	fontSize := theme.FontSize
	if fontSize <= 0 {
		fontSize = config.DefaultTheme().FontSize
	}
	tc := cfg.Timeline

	var payload ir.TimelinePayload
	if g.Timeline != nil {
		payload = *g.Timeline
	}

	var titleBlock *ir.TextBlock
	titleHeight := 0.0
	if payload.Title != "" {
		b := label.Measure(m, payload.Title, fontSize*1.2, cfg)
		titleBlock = &b
		titleHeight = b.Height + 16
	}

	sectionY := titleHeight
	periodY := sectionY
	hasSections := false
	for _, s := range payload.Sections {
		if s.Name != "" {
			hasSections = true
		}
	}
	if hasSections {
		periodY = sectionY + tc.SectionHeight + tc.PeriodGap
	}

	var sections []ir.TimelineSectionLayout
	var periods []ir.TimelinePeriodLayout

	x := 0.0
	maxHeight := periodY
	for _, sec := range payload.Sections {
		sectionStartX := x
		for _, p := range sec.Periods {
			periodBlock := label.Measure(m, p.Period, fontSize, cfg)
			width := maxf(tc.PeriodWidth, periodBlock.Width+16)

			events := make([]ir.TextBlock, 0, len(p.Events))
			eventsHeight := 0.0
			for _, ev := range p.Events {
				b := label.Measure(m, ev, fontSize, cfg)
				events = append(events, b)
				eventsHeight += b.Height + tc.EventGap
				width = maxf(width, b.Width+16)
			}
			height := periodBlock.Height + 8 + eventsHeight

			periods = append(periods, ir.TimelinePeriodLayout{
				Period: p.Period, X: x, Y: periodY, Width: width, Height: height, Events: events,
			})
			maxHeight = maxf(maxHeight, periodY+height)
			x += width + tc.PeriodGap
		}
		if sec.Name != "" {
			sections = append(sections, ir.TimelineSectionLayout{
				Name: sec.Name, X: sectionStartX, Y: sectionY, Width: maxf(x-sectionStartX-tc.PeriodGap, 1), Height: tc.SectionHeight,
			})
		}
	}

	width := maxf(x-tc.PeriodGap, 1)

	layout := ir.TimelineLayout{Title: titleBlock, Sections: sections, Periods: periods}

	return ir.Layout{
		Kind:     g.Kind,
		Width:    width,
		Height:   maxHeight,
		Timeline: &layout,
	}
}
