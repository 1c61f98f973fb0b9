package layout

import (
	"testing"

	"github.com/teleivo/assertive/assert"

	"github.com/inkmesh/diagramlayout/ir"
)

func TestComputeSequencePlacesLifelinesAndMessages(t *testing.T) {
	g := &ir.Graph{
		Kind: ir.KindSequence,
		Nodes: map[string]*ir.Node{
			"alice": {ID: "alice", Label: "Alice"},
			"bob":   {ID: "bob", Label: "Bob"},
		},
		NodeOrder: []string{"alice", "bob"},
		Edges: []ir.Edge{
			{From: "alice", To: "bob", Directed: true, CenterLabel: "hello"},
			{From: "bob", To: "alice", Directed: true, CenterLabel: "hi"},
		},
		Sequence: &ir.SequencePayload{Participants: []string{"alice", "bob"}},
	}

	l := computeSequence(g, testTheme(), testConfig(), testMeasurer())

	if l.Sequence == nil {
		t.Fatalf("expected a populated Sequence layout")
	}
	assert.EqualValuesf(t, len(l.Sequence.Lifelines), 2, "lifeline count")
	assert.Truef(t, l.Sequence.Lifelines[0].X != l.Sequence.Lifelines[1].X, "lifelines should be placed at distinct X coordinates")
}

func TestComputePieAllocatesFullCircle(t *testing.T) {
	g := &ir.Graph{
		Kind: ir.KindPie,
		Pie: &ir.PiePayload{
			Slices: []ir.PieSlice{
				{Label: "A", Value: 30},
				{Label: "B", Value: 70},
			},
		},
	}

	l := computePie(g, testTheme(), testConfig(), testMeasurer())

	if l.Pie == nil {
		t.Fatalf("expected a populated Pie layout")
	}
	assert.EqualValuesf(t, len(l.Pie.Slices), 2, "slice count")
	assert.EqualValuesf(t, l.Pie.Slices[0].StartAngle, 0.0, "first slice should start at angle 0")
	last := l.Pie.Slices[len(l.Pie.Slices)-1]
	const twoPi = 6.283185307179586
	const eps = 1e-6
	assert.Truef(t, last.EndAngle > twoPi-eps && last.EndAngle < twoPi+eps, "slices should sweep a full circle, got end angle %v", last.EndAngle)
}

func TestComputeSankeyPlacesNodesAndLinks(t *testing.T) {
	g := &ir.Graph{
		Kind: ir.KindSankey,
		Nodes: map[string]*ir.Node{
			"a": {ID: "a", Label: "A"},
			"b": {ID: "b", Label: "B"},
		},
		NodeOrder: []string{"a", "b"},
		Sankey: &ir.SankeyPayload{
			Links: []ir.SankeyLink{{Source: "a", Target: "b", Value: 10}},
		},
	}

	l := computeSankey(g, testTheme(), testConfig(), testMeasurer())

	if l.Sankey == nil {
		t.Fatalf("expected a populated Sankey layout")
	}
	assert.EqualValuesf(t, len(l.Sankey.Nodes), 2, "node count")
	assert.EqualValuesf(t, len(l.Sankey.Links), 1, "link count")
}

func TestComputeGitGraphPlacesCommitsOnBranches(t *testing.T) {
	g := &ir.Graph{
		Kind: ir.KindGitGraph,
		GitGraph: &ir.GitGraphPayload{
			Branches: []ir.GitBranch{{Name: "main"}, {Name: "feature"}},
			Commits: []ir.GitCommit{
				{ID: "c1", Seq: 0, Branch: "main"},
				{ID: "c2", Seq: 1, Branch: "feature", Parents: []string{"c1"}},
				{ID: "c3", Seq: 2, Branch: "main", Parents: []string{"c1", "c2"}, Type: ir.CommitMerge},
			},
		},
	}

	l := computeGitGraph(g, testTheme(), testConfig(), testMeasurer())

	if l.GitGraph == nil {
		t.Fatalf("expected a populated GitGraph layout")
	}
	assert.EqualValuesf(t, len(l.GitGraph.Commits), 3, "commit count")
	assert.EqualValuesf(t, len(l.GitGraph.Branches), 2, "branch count")
}

func TestComputeC4NestsShapesInBoundaries(t *testing.T) {
	g := &ir.Graph{
		Kind: ir.KindC4,
		C4: &ir.C4Payload{
			Boundaries: []ir.C4Boundary{{ID: "b1", Label: "System Boundary"}},
			Shapes: []ir.C4Shape{
				{ID: "s1", Label: "User", Kind: ir.C4Person},
				{ID: "s2", Label: "API", Kind: ir.C4System, BoundaryID: "b1"},
			},
			Rels: []ir.C4Rel{{From: "s1", To: "s2", Label: "uses"}},
		},
	}

	l := computeC4(g, testTheme(), testConfig(), testMeasurer())

	if l.C4 == nil {
		t.Fatalf("expected a populated C4 layout")
	}
	assert.EqualValuesf(t, len(l.C4.Shapes), 2, "shape count")
	assert.EqualValuesf(t, len(l.C4.Boundaries), 1, "boundary count")
	assert.EqualValuesf(t, len(l.C4.Rels), 1, "relationship count")
}

func TestComputeMindmapPlacesChildrenAroundRoot(t *testing.T) {
	g := &ir.Graph{
		Kind: ir.KindMindmap,
		Mindmap: &ir.MindmapPayload{
			RootID: "root",
			Nodes: map[string]*ir.MindmapNode{
				"root":  {ID: "root", Label: "Root", Level: 0, Children: []string{"c1", "c2"}},
				"c1":    {ID: "c1", Label: "Child 1", Level: 1, Section: 0},
				"c2":    {ID: "c2", Label: "Child 2", Level: 1, Section: 1},
			},
		},
	}

	l := computeMindmap(g, testTheme(), testConfig(), testMeasurer())

	if l.Mindmap == nil {
		t.Fatalf("expected a populated Mindmap layout")
	}
	assert.EqualValuesf(t, len(l.Mindmap.Nodes), 3, "node count")
	assert.EqualValuesf(t, len(l.Mindmap.Edges), 2, "edge count (root->c1, root->c2)")
}

func TestComputeQuadrantPlacesPointsInGrid(t *testing.T) {
	g := &ir.Graph{
		Kind: ir.KindQuadrant,
		Quadrant: &ir.QuadrantPayload{
			Title:       "Priorities",
			XAxisLeft:   "Low",
			XAxisRight:  "High",
			YAxisBottom: "Low",
			YAxisTop:    "High",
			Points:      []ir.QuadrantPoint{{Label: "A", X: 0.2, Y: 0.8}},
		},
	}

	l := computeQuadrant(g, testTheme(), testConfig(), testMeasurer())

	if l.Quadrant == nil {
		t.Fatalf("expected a populated Quadrant layout")
	}
	assert.EqualValuesf(t, len(l.Quadrant.Points), 1, "point count")
	assert.Truef(t, l.Quadrant.GridWidth > 0 && l.Quadrant.GridHeight > 0, "quadrant grid should have positive extent")
}

func TestComputeXYChartPlacesBarsPerCategory(t *testing.T) {
	g := &ir.Graph{
		Kind: ir.KindXYChart,
		XYChart: &ir.XYChartPayload{
			XCategories: []string{"Jan", "Feb", "Mar"},
			YAutoRange:  true,
			Bars:        []ir.XYSeries{{Name: "Sales", Values: []float64{1, 2, 3}}},
		},
	}

	l := computeXYChart(g, testTheme(), testConfig(), testMeasurer())

	if l.XYChart == nil {
		t.Fatalf("expected a populated XYChart layout")
	}
	assert.EqualValuesf(t, len(l.XYChart.Bars), 3, "bar count (one per category)")
}

func TestComputeTimelinePlacesPeriodsInOrder(t *testing.T) {
	g := &ir.Graph{
		Kind: ir.KindTimeline,
		Timeline: &ir.TimelinePayload{
			Sections: []ir.TimelineSection{
				{Name: "2020s", Periods: []ir.TimelinePeriod{
					{Period: "2020", Events: []string{"Launch"}},
					{Period: "2021", Events: []string{"Growth", "Expansion"}},
				}},
			},
		},
	}

	l := computeTimeline(g, testTheme(), testConfig(), testMeasurer())

	if l.Timeline == nil {
		t.Fatalf("expected a populated Timeline layout")
	}
	assert.EqualValuesf(t, len(l.Timeline.Periods), 2, "period count")
	assert.Truef(t, l.Timeline.Periods[1].X > l.Timeline.Periods[0].X, "periods should be placed left to right in order")
}

func TestComputeTreemapNestsChildrenInsideParent(t *testing.T) {
	g := &ir.Graph{
		Kind: ir.KindTreemap,
		Treemap: &ir.TreemapPayload{
			Root: &ir.TreemapNode{
				Label: "root",
				Children: []*ir.TreemapNode{
					{Label: "a", Value: 40},
					{Label: "b", Value: 60},
				},
			},
		},
	}

	l := computeTreemap(g, testTheme(), testConfig(), testMeasurer())

	if l.Treemap == nil {
		t.Fatalf("expected a populated Treemap layout")
	}
	assert.Truef(t, len(l.Treemap.Nodes) >= 2, "should place at least the two leaf rectangles")
}

func TestComputeGanttPlacesBarsOnSections(t *testing.T) {
	g := &ir.Graph{
		Kind: ir.KindGantt,
		Gantt: &ir.GanttPayload{
			Sections: []string{"Design"},
			Tasks: []ir.GanttTask{
				{ID: "t1", Label: "Wireframes", Section: "Design", Start: 0, End: 86400},
				{ID: "t2", Label: "Review", Section: "Design", Start: 86400, End: 172800, DependsOn: []string{"t1"}},
			},
		},
	}

	l := computeGantt(g, testTheme(), testConfig(), testMeasurer())

	if l.Gantt == nil {
		t.Fatalf("expected a populated Gantt layout")
	}
	assert.EqualValuesf(t, len(l.Gantt.Bars), 2, "bar count")
	assert.EqualValuesf(t, len(l.Gantt.Sections), 1, "section count")
}

func TestComputeRadarBuildsLegendPerDataset(t *testing.T) {
	g := &ir.Graph{
		Kind: ir.KindRadar,
		Radar: &ir.RadarPayload{
			Axes: []string{"Speed", "Power", "Range"},
			Datasets: []ir.RadarDataset{
				{Name: "A", Values: []float64{1, 2, 3}},
				{Name: "B", Values: []float64{3, 2, 1}},
			},
		},
	}

	l := computeRadar(g, testTheme(), testConfig(), testMeasurer())

	if l.Radar == nil {
		t.Fatalf("expected a populated Radar layout")
	}
	assert.EqualValuesf(t, len(l.Radar.Legend), 2, "legend count (one per dataset)")
	assert.Truef(t, l.Radar.Width > 0 && l.Radar.Height > 0, "radar canvas should have positive extent")
}

func TestComputeArchitecturePacksServicesIntoGroupsAndRoutesEdges(t *testing.T) {
	g := &ir.Graph{
		Kind: ir.KindArchitecture,
		Architecture: &ir.ArchitecturePayload{
			Groups: []ir.ArchitectureGroup{{ID: "vpc", Label: "VPC"}},
			Services: []ir.ArchitectureService{
				{ID: "web", Label: "Web", GroupID: "vpc"},
				{ID: "db", Label: "DB", GroupID: "vpc"},
				{ID: "cache", Label: "Cache"},
			},
			Junctions: []ir.ArchitectureJunction{{ID: "j1", GroupID: "vpc"}},
			Edges: []ir.ArchitectureEdge{
				{From: "web", FromSide: ir.ArchSideBottom, To: "db", ToSide: ir.ArchSideTop},
				{From: "web", FromSide: ir.ArchSideRight, To: "cache", ToSide: ir.ArchSideLeft},
			},
		},
	}

	l := computeArchitecture(g, testTheme(), testConfig(), testMeasurer())

	if l.Architecture == nil {
		t.Fatalf("expected a populated Architecture layout")
	}
	assert.EqualValuesf(t, len(l.Architecture.Services), 3, "service count")
	assert.EqualValuesf(t, len(l.Architecture.Groups), 1, "group count")
	assert.EqualValuesf(t, len(l.Architecture.Junctions), 1, "junction count")
	assert.EqualValuesf(t, len(l.Architecture.Edges), 2, "edge count")

	grp := l.Architecture.Groups[0]
	for _, svc := range l.Architecture.Services {
		if svc.ID == "cache" {
			continue // top-level, not nested in the group
		}
		assert.Truef(t, svc.X >= grp.X && svc.Y >= grp.Y, "service %s should sit inside its group's box", svc.ID)
		assert.Truef(t, svc.X+svc.Width <= grp.X+grp.Width, "service %s should not overflow the group's width", svc.ID)
	}

	for _, e := range l.Architecture.Edges {
		assert.Truef(t, len(e.Points) >= 2, "routed architecture edge should have at least 2 points")
	}
}

func TestArchitectureEdgePathStraightWhenSidesAlign(t *testing.T) {
	// web's bottom port and db's top port: stubs extend toward each other on the same X, so the
	// path should collapse to a straight vertical run with no elbow.
	pts := architectureEdgePath(0, 0, 80, 80, ir.ArchSideBottom, 0, 200, 80, 80, ir.ArchSideTop)

	for i := 0; i+1 < len(pts); i++ {
		assert.EqualValuesf(t, pts[i].X, pts[i+1].X, "aligned bottom->top port path should stay on one X")
	}
}

func TestArchitectureEdgePathElbowsWhenSidesDontAlign(t *testing.T) {
	pts := architectureEdgePath(0, 0, 80, 80, ir.ArchSideRight, 200, 200, 80, 80, ir.ArchSideTop)

	assert.Truef(t, len(pts) >= 4, "misaligned ports should route through a stub-elbow-stub path")
}

func TestArchSidePointMidpoints(t *testing.T) {
	tests := []struct {
		side ir.ArchitectureSide
		want ir.Point
	}{
		{ir.ArchSideLeft, ir.Point{X: 0, Y: 40}},
		{ir.ArchSideRight, ir.Point{X: 80, Y: 40}},
		{ir.ArchSideTop, ir.Point{X: 40, Y: 0}},
		{ir.ArchSideBottom, ir.Point{X: 40, Y: 80}},
	}
	for _, test := range tests {
		got := archSidePoint(0, 0, 80, 80, test.side)
		assert.EqualValues(t, got, test.want)
	}
}
