// Package layout is the heavy engine behind the public layout.Compute facade: a dispatcher that
// routes a Graph to its diagram-kind-specific driver, plus the shared flowchart driver used by
// every rank-layered diagram kind (flowchart, class, state, ER, requirement, journey, block,
// packet).
package layout

import (
	"github.com/inkmesh/diagramlayout/config"
	"github.com/inkmesh/diagramlayout/ir"
	"github.com/inkmesh/diagramlayout/metrics"
)

// Compute is the pure entry point: it never mutates g and returns a fresh Layout built from g's
// current contents, theme, and cfg.
func Compute(g *ir.Graph, theme config.Theme, cfg config.Config) ir.Layout {
	m := metrics.Default()

	var result ir.Layout
	switch {
	case g.Kind.UsesFlowchartDriver():
		result = computeFlowchart(g, theme, cfg, m)
	case g.Kind == ir.KindSequence:
		result = computeSequence(g, theme, cfg, m)
	case g.Kind == ir.KindPie:
		result = computePie(g, theme, cfg, m)
	case g.Kind == ir.KindQuadrant:
		result = computeQuadrant(g, theme, cfg, m)
	case g.Kind == ir.KindGantt:
		result = computeGantt(g, theme, cfg, m)
	case g.Kind == ir.KindSankey:
		result = computeSankey(g, theme, cfg, m)
	case g.Kind == ir.KindGitGraph:
		result = computeGitGraph(g, theme, cfg, m)
	case g.Kind == ir.KindC4:
		result = computeC4(g, theme, cfg, m)
	case g.Kind == ir.KindMindmap:
		result = computeMindmap(g, theme, cfg, m)
	case g.Kind == ir.KindXYChart:
		result = computeXYChart(g, theme, cfg, m)
	case g.Kind == ir.KindTimeline:
		result = computeTimeline(g, theme, cfg, m)
	case g.Kind == ir.KindTreemap:
		result = computeTreemap(g, theme, cfg, m)
	case g.Kind == ir.KindRadar:
		result = computeRadar(g, theme, cfg, m)
	case g.Kind == ir.KindArchitecture:
		result = computeArchitecture(g, theme, cfg, m)
	default:
		result = computeFlowchart(g, theme, cfg, m)
	}

	resolveLabelPositions(&result, g, theme, cfg, m)
	return result
}
