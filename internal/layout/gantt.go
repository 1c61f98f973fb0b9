package layout

import (
	"time"

	"github.com/inkmesh/diagramlayout/config"
	"github.com/inkmesh/diagramlayout/ir"
	"github.com/inkmesh/diagramlayout/label"
	"github.com/inkmesh/diagramlayout/metrics"
)

// computeGantt maps each task's [Start,End) unix-second span onto a linear time axis, stacking
// one row per task within its section's band, grounded on spec.md's gantt module description.
func computeGantt(g *ir.Graph, theme config.Theme, cfg config.Config, m metrics.Measurer) ir.Layout {
	fontSize := theme.FontSize
	if fontSize <= 0 {
		fontSize = config.DefaultTheme().FontSize
	}
	gc := cfg.Gantt

	var payload ir.GanttPayload
	if g.Gantt != nil {
		payload = *g.Gantt
	}

	labelColW := 0.0
	for _, t := range payload.Tasks {
		b := label.Measure(m, t.Label, fontSize, cfg)
		labelColW = maxf(labelColW, b.Width+12)
	}

	minStart, maxEnd := int64(0), int64(0)
	first := true
	for _, t := range payload.Tasks {
		if first || t.Start < minStart {
			minStart = t.Start
		}
		if first || t.End > maxEnd {
			maxEnd = t.End
		}
		first = false
	}
	if maxEnd <= minStart {
		maxEnd = minStart + 1
	}
	span := maxEnd - minStart

	const chartWidth = 960.0
	gridX := labelColW
	gridWidth := chartWidth
	rowHeight := gc.BarHeight + gc.BarGap

	xFor := func(t int64) float64 {
		frac := float64(t-minStart) / float64(span)
		return gridX + frac*gridWidth
	}

	sectionOrder := make([]string, 0)
	sectionSeen := map[string]bool{}
	for _, sec := range payload.Sections {
		if sec == "" {
			continue
		}
		if !sectionSeen[sec] {
			sectionSeen[sec] = true
			sectionOrder = append(sectionOrder, sec)
		}
	}

	bySection := map[string][]ir.GanttTask{}
	for _, t := range payload.Tasks {
		bySection[t.Section] = append(bySection[t.Section], t)
	}

	y := gc.AxisHeight
	var sections []ir.GanttSectionLayout
	var bars []ir.GanttBarLayout

	emit := func(sec string) {
		rows := bySection[sec]
		if len(rows) == 0 {
			return
		}
		startY := y
		for _, t := range rows {
			startX := xFor(t.Start)
			endX := xFor(t.End)
			w := maxf(endX-startX, 2)
			h := gc.BarHeight
			if t.Milestone {
				w = h
			}
			bars = append(bars, ir.GanttBarLayout{
				ID: t.ID, Label: label.Measure(m, t.Label, fontSize, cfg),
				X: startX, Y: y, Width: w, Height: h,
				Milestone: t.Milestone, Active: t.Active, Done: t.Done, Critical: t.Critical,
			})
			y += rowHeight
		}
		if sec != "" {
			sections = append(sections, ir.GanttSectionLayout{
				Label: sec, Y: startY, Height: y - startY,
			})
		}
	}
	for _, sec := range sectionOrder {
		emit(sec)
	}
	if rows, ok := bySection[""]; ok && len(rows) > 0 {
		emit("")
	}

	numTicks := gc.MaxTicks
	if numTicks < 2 {
		numTicks = 2
	}
	ticks := make([]ir.AxisTick, 0, numTicks+1)
	for i := 0; i <= numTicks; i++ {
		frac := float64(i) / float64(numTicks)
		t := minStart + int64(frac*float64(span))
		ticks = append(ticks, ir.AxisTick{Position: xFor(t), Label: formatGanttTick(t)})
	}

	return ir.Layout{
		Kind:   g.Kind,
		Width:  gridX + gridWidth + 16,
		Height: y + 16,
		Gantt: &ir.GanttLayout{
			Sections:   sections,
			Bars:       bars,
			AxisTicks:  ticks,
			GridX:      gridX,
			GridY:      gc.AxisHeight,
			GridWidth:  gridWidth,
			GridHeight: y - gc.AxisHeight,
		},
	}
}

func formatGanttTick(unixSeconds int64) string {
	return time.Unix(unixSeconds, 0).UTC().Format("2006-01-02")
}
