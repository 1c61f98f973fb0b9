package layout

import (
	"math"

	"github.com/inkmesh/diagramlayout/config"
	"github.com/inkmesh/diagramlayout/ir"
	"github.com/inkmesh/diagramlayout/label"
	"github.com/inkmesh/diagramlayout/metrics"
)

// computeXYChart grids the configured canvas into one column per x category, places grouped
// bars side-by-side within each column, and maps line series onto the same category/value
// scale, grounded on spec.md's xy-chart module description.
func computeXYChart(g *ir.Graph, theme config.Theme, cfg config.Config, m metrics.Measurer) ir.Layout {
	fontSize := theme.FontSize
	if fontSize <= 0 {
		fontSize = config.DefaultTheme().FontSize
	}
	xc := cfg.XYChart

	var payload ir.XYChartPayload
	if g.XYChart != nil {
		payload = *g.XYChart
	}

	yMin, yMax := payload.YMin, payload.YMax
	if payload.YAutoRange || yMax <= yMin {
		yMin, yMax = math.MaxFloat64, -math.MaxFloat64
		for _, s := range payload.Bars {
			for _, v := range s.Values {
				yMin = minf(yMin, v)
				yMax = maxf(yMax, v)
			}
		}
		for _, s := range payload.Lines {
			for _, v := range s.Values {
				yMin = minf(yMin, v)
				yMax = maxf(yMax, v)
			}
		}
		if yMin > yMax {
			yMin, yMax = 0, 1
		}
		if yMin > 0 {
			yMin = 0
		}
		if yMax <= yMin {
			yMax = yMin + 1
		}
	}

	var title *ir.TextBlock
	titleHeight := 0.0
	if payload.Title != "" {
		b := label.Measure(m, payload.Title, fontSize*1.2, cfg)
		title = &b
		titleHeight = b.Height + 12
	}

	leftAxisWidth := fontSize*3 + 16
	bottomAxisHeight := fontSize + 16

	gridX := leftAxisWidth
	gridY := titleHeight + 8
	gridW := maxf(xc.Width-gridX-16, 1)
	gridH := maxf(xc.Height-gridY-bottomAxisHeight, 1)

	numCats := len(payload.XCategories)
	if numCats == 0 {
		numCats = 1
	}
	catWidth := gridW / float64(numCats)

	yForValue := func(v float64) float64 {
		frac := (v - yMin) / (yMax - yMin)
		return gridY + gridH*(1-frac)
	}

	xTicks := make([]ir.AxisTick, 0, numCats)
	for i, cat := range payload.XCategories {
		xTicks = append(xTicks, ir.AxisTick{Position: gridX + (float64(i)+0.5)*catWidth, Label: cat})
	}

	numYTicks := xc.MaxYTicks
	if numYTicks < 2 {
		numYTicks = 2
	}
	yTicks := make([]ir.AxisTick, 0, numYTicks)
	for i := 0; i <= numYTicks; i++ {
		frac := float64(i) / float64(numYTicks)
		v := yMin + frac*(yMax-yMin)
		yTicks = append(yTicks, ir.AxisTick{Position: yForValue(v), Label: formatPieValue(v)})
	}

	numBarSeries := len(payload.Bars)
	barSlot := catWidth
	if numBarSeries > 0 {
		barSlot = catWidth / float64(numBarSeries)
	}

	var bars []ir.XYBarLayout
	for si, series := range payload.Bars {
		for ci, v := range series.Values {
			if ci >= numCats {
				break
			}
			barX := gridX + float64(ci)*catWidth + float64(si)*barSlot + xc.BarGap/2
			barW := maxf(barSlot-xc.BarGap, 1)
			zeroY := yForValue(maxf(yMin, 0))
			valY := yForValue(v)
			top := minf(zeroY, valY)
			h := math.Abs(zeroY - valY)
			bars = append(bars, ir.XYBarLayout{
				Series: series.Name, CategoryIndex: ci, X: barX, Y: top, Width: barW, Height: maxf(h, 1),
			})
		}
	}

	var lines []ir.XYLineLayout
	for _, series := range payload.Lines {
		pts := make([]ir.Point, 0, len(series.Values))
		for ci, v := range series.Values {
			if ci >= numCats {
				break
			}
			pts = append(pts, ir.Point{
				X: gridX + (float64(ci)+0.5)*catWidth,
				Y: yForValue(v),
			})
		}
		lines = append(lines, ir.XYLineLayout{Series: series.Name, Points: pts})
	}

	return ir.Layout{
		Kind:   g.Kind,
		Width:  xc.Width,
		Height: xc.Height,
		XYChart: &ir.XYChartLayout{
			Title:      title,
			XTicks:     xTicks,
			YTicks:     yTicks,
			Bars:       bars,
			Lines:      lines,
			GridX:      gridX,
			GridY:      gridY,
			GridWidth:  gridW,
			GridHeight: gridH,
		},
	}
}
