package layout

import (
	"testing"

	"github.com/teleivo/assertive/assert"

	"github.com/inkmesh/diagramlayout/config"
	"github.com/inkmesh/diagramlayout/ir"
)

func TestResolveLabelPositionsSkipsNonFlowchartKinds(t *testing.T) {
	g := &ir.Graph{Kind: ir.KindSankey}
	result := &ir.Layout{
		Edges: []*ir.EdgeLayout{{From: "a", To: "b", Points: []ir.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}}},
	}

	// Must not panic or mutate result.Edges for a payload-driven kind whose result.Edges is
	// disconnected from g.Edges (see the comment at the top of the function's body).
	resolveLabelPositions(result, g, testTheme(), testConfig(), testMeasurer())

	assert.EqualValuesf(t, len(result.Edges), 1, "edge count should be untouched")
}

func TestResolveLabelPositionsPlacesCenterLabelOffNodes(t *testing.T) {
	g := &ir.Graph{
		Kind: ir.KindFlowchart,
		Nodes: map[string]*ir.Node{
			"a": {ID: "a", Label: "A"},
			"b": {ID: "b", Label: "B"},
		},
		NodeOrder: []string{"a", "b"},
		Edges:     []ir.Edge{{From: "a", To: "b", Directed: true, CenterLabel: "a long edge label"}},
	}

	l := computeFlowchart(g, testTheme(), testConfig(), testMeasurer())
	resolveLabelPositions(&l, g, testTheme(), testConfig(), testMeasurer())

	assert.EqualValuesf(t, len(l.Edges), 1, "edge count")
	if l.Edges[0].CenterLabel == nil {
		t.Fatalf("expected a placed center label")
	}
	lbl := l.Edges[0].CenterLabel
	for id, n := range l.Nodes {
		overlapsX := lbl.X < n.X+n.Width && lbl.X+lbl.Text.Width > n.X
		overlapsY := lbl.Y < n.Y+n.Height && lbl.Y+lbl.Text.Height > n.Y
		assert.Falsef(t, overlapsX && overlapsY, "center label should not overlap node %s", id)
	}
}
