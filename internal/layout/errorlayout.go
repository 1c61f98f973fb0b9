package layout

import (
	"math"

	"github.com/inkmesh/diagramlayout/ir"
)

// buildErrorLayout emits a fixed-size placeholder instead of a diagram body when a kind's
// RenderMode config is "error", per spec.md §4.10. Pie and treemap each call this with their own
// config block's values.
func buildErrorLayout(viewBoxW, viewBoxH, renderW float64, renderH *float64, message, version string,
	textX, textY, textSize, versionX, versionY, versionSize, iconScale, iconTX, iconTY float64) ir.Layout {
	viewBoxW = maxf(viewBoxW, 1)
	viewBoxH = maxf(viewBoxH, 1)
	renderW = maxf(renderW, 1)
	derivedH := renderW * viewBoxH / viewBoxW
	h := derivedH
	if renderH != nil {
		h = *renderH
	} else {
		h = math.Round(derivedH)
	}
	h = maxf(h, 1)

	return ir.Layout{
		Width:  renderW,
		Height: h,
		Error: &ir.ErrorLayout{
			ViewBoxWidth:  viewBoxW,
			ViewBoxHeight: viewBoxH,
			RenderWidth:   renderW,
			RenderHeight:  h,
			Message:       message,
			Version:       version,
			TextX:         textX,
			TextY:         textY,
			TextSize:      textSize,
			VersionX:      versionX,
			VersionY:      versionY,
			VersionSize:   versionSize,
			IconScale:     iconScale,
			IconTX:        iconTX,
			IconTY:        iconTY,
		},
	}
}
