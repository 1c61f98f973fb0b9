package layout

import (
	"sort"

	"github.com/inkmesh/diagramlayout/config"
	"github.com/inkmesh/diagramlayout/ir"
	"github.com/inkmesh/diagramlayout/metrics"
)

// computeTreemap recursively slices each rectangle along its wider dimension (widest-dimension
// slice-and-dice), proportioning children by their subtree value, grounded on spec.md's treemap
// module description.
func computeTreemap(g *ir.Graph, theme config.Theme, cfg config.Config, m metrics.Measurer) ir.Layout {
	tc := cfg.Treemap
	if tc.RenderMode == "error" {
		return buildErrorLayout(tc.ErrorViewBoxWidth, tc.ErrorViewBoxHeight, tc.ErrorRenderWidth, tc.ErrorRenderHeight,
			tc.ErrorMessage, tc.ErrorVersion, tc.ErrorTextX, tc.ErrorTextY, tc.ErrorTextSize,
			tc.ErrorVersionX, tc.ErrorVersionY, tc.ErrorVersionSize, tc.IconScale, tc.IconTX, tc.IconTY)
	}

	var payload ir.TreemapPayload
	if g.Treemap != nil {
		payload = *g.Treemap
	}
	if payload.Root == nil {
		return ir.Layout{Kind: g.Kind, Width: tc.Width, Height: tc.Height, Treemap: &ir.TreemapLayout{}}
	}

	var nodeValue func(n *ir.TreemapNode) float64
	nodeValue = func(n *ir.TreemapNode) float64 {
		if len(n.Children) == 0 {
			return maxf(n.Value, 0)
		}
		total := 0.0
		for _, c := range n.Children {
			total += nodeValue(c)
		}
		return maxf(total, 0)
	}

	var nodes []ir.TreemapNodeLayout

	var place func(n *ir.TreemapNode, x, y, w, h float64, depth int)
	place = func(n *ir.TreemapNode, x, y, w, h float64, depth int) {
		pad := tc.Padding
		value := nodeValue(n)
		nodes = append(nodes, ir.TreemapNodeLayout{
			Label: n.Label, Value: value, Depth: depth, X: x, Y: y, Width: maxf(w, 0), Height: maxf(h, 0),
		})
		if len(n.Children) == 0 {
			return
		}
		innerX, innerY := x+pad, y+pad
		innerW, innerH := maxf(w-2*pad, 0), maxf(h-2*pad, 0)

		children := append([]*ir.TreemapNode{}, n.Children...)
		sort.SliceStable(children, func(i, j int) bool { return nodeValue(children[i]) > nodeValue(children[j]) })

		total := 0.0
		for _, c := range children {
			total += nodeValue(c)
		}
		if total <= 0 {
			total = maxf(float64(len(children)), 1)
		}

		horizontal := innerW >= innerH
		cursor := 0.0
		for _, c := range children {
			share := nodeValue(c) / total
			if nodeValue(c) <= 0 {
				share = 1 / total
			}
			if horizontal {
				cw := innerW * share
				place(c, innerX+cursor, innerY, cw, innerH, depth+1)
				cursor += cw
			} else {
				ch := innerH * share
				place(c, innerX, innerY+cursor, innerW, ch, depth+1)
				cursor += ch
			}
		}
	}

	place(payload.Root, 0, 0, tc.Width, tc.Height, 0)

	return ir.Layout{
		Kind:    g.Kind,
		Width:   tc.Width,
		Height:  tc.Height,
		Treemap: &ir.TreemapLayout{Nodes: nodes},
	}
}
