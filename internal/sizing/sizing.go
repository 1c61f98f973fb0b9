// Package sizing computes a node's (width, height) from its measured label and shape, per
// spec.md §4.2 "Node sizing". Shape-specific padding factors account for the extra margin each
// shape's outline needs around its label (a diamond's diagonal sides, a hexagon's chamfers, a
// cylinder's end caps) and are further scaled by a per-diagram-kind table, since state/class/ER/
// requirement diagrams draw the same shapes at different visual densities than flowcharts.
package sizing

import (
	"math"

	"github.com/inkmesh/diagramlayout/config"
	"github.com/inkmesh/diagramlayout/ir"
)

// Kind selects the per-diagram-kind scale table applied on top of the shape padding factor.
type Kind int

const (
	KindFlowchart Kind = iota
	KindState
	KindClass
	KindClassWithDivider
	KindER
	KindRequirement
)

// kindScale returns the (x, y) multiplier for a Kind, per spec.md §4.2.
func kindScale(k Kind) (float64, float64) {
	switch k {
	case KindState:
		return 0.18, 0.47
	case KindClass:
		return 0.4, 0.8
	case KindClassWithDivider:
		return 0.4, 0.85
	case KindER:
		return 0.83, 1.07
	case KindRequirement:
		return 0.1, 1.0
	default:
		return 1.0, 1.0
	}
}

// Size computes the final node box for a label already measured into block, for the given shape
// and diagram Kind.
func Size(block ir.TextBlock, shape ir.Shape, k Kind, cfg config.Config, fontSize float64) (width, height float64) {
	w := block.Width + 2*cfg.NodePaddingX
	h := block.Height + 2*cfg.NodePaddingY

	fx, fy := shapePaddingFactor(shape, block)
	w *= fx
	h *= fy

	sx, sy := kindScale(k)
	w *= sx
	h *= sy

	w, h = applyMinimums(w, h, shape, k, cfg, fontSize)

	if shape == ir.ShapeDiamond {
		d := math.Max(w, h) * 0.95
		return d, d
	}
	if shape == ir.ShapeForkJoin {
		return forkJoinSize(cfg)
	}

	return w, h
}

// shapePaddingFactor returns the extra (x, y) multiplier a shape's outline needs beyond the
// label's own padded box, to keep the label clear of slanted or curved borders.
func shapePaddingFactor(shape ir.Shape, block ir.TextBlock) (float64, float64) {
	switch shape {
	case ir.ShapeRoundRect, ir.ShapeStadium:
		return 1.1, 1.0
	case ir.ShapeCircle, ir.ShapeDoubleCircle:
		return 1.3, 1.3
	case ir.ShapeHexagon:
		return 1.4, 1.0
	case ir.ShapeParallelogram, ir.ShapeTrapezoid:
		return 1.3, 1.0
	case ir.ShapeSubroutine:
		return 1.15, 1.1
	case ir.ShapeCylinder:
		return 1.1, 1.4
	case ir.ShapeAsymmetric:
		return 1.25, 1.0
	case ir.ShapeActorBox:
		return 1.0, 1.0
	case ir.ShapeText:
		return 1.0, 1.0
	default:
		return 1.0, 1.0
	}
}

// applyMinimums enforces per-kind and per-shape floors, per spec.md §4.2: class nodes are at
// least 6.5*fontSize tall, requirement nodes at least cfg.Requirement.MinWidthFactor*fontSize wide
// and MinHeightFactor*fontSize tall (12 and 14.2 by default), circles are at least 2*fontSize in
// diameter, and stick-figure actor
// boxes use a fixed minimum box.
func applyMinimums(w, h float64, shape ir.Shape, k Kind, cfg config.Config, fontSize float64) (float64, float64) {
	switch k {
	case KindClass, KindClassWithDivider:
		if minH := 6.5 * fontSize; h < minH {
			h = minH
		}
	case KindRequirement:
		if minW := cfg.Requirement.MinWidthFactor * fontSize; w < minW {
			w = minW
		}
		if minH := cfg.Requirement.MinHeightFactor * fontSize; h < minH {
			h = minH
		}
	}

	switch shape {
	case ir.ShapeCircle, ir.ShapeDoubleCircle:
		minDiameter := 2 * fontSize
		if w < minDiameter {
			w = minDiameter
		}
		if h < minDiameter {
			h = minDiameter
		}
	case ir.ShapeActorBox:
		minW, minH := 40.0, 60.0
		if w < minW {
			w = minW
		}
		if h < minH {
			h = minH
		}
	}

	return w, h
}

// forkJoinSize returns the fixed thin-bar dimensions for fork/join pseudostates, independent of
// any label (they never carry one).
func forkJoinSize(cfg config.Config) (float64, float64) {
	return cfg.NodeSpacing * 0.1, cfg.NodeSpacing
}
