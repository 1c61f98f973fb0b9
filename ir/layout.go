package ir

// Layout is the pure output of the layout engine: absolute geometry for every visible element of
// a Graph, plus routed edges and any diagram-kind-specific blocks. Exactly one of the
// diagram-specific blocks below is set, matching the Graph's Kind (or none, for diagrams that
// produce only Nodes/Edges/Subgraphs).
type Layout struct {
	Kind   Kind
	Width  float64
	Height float64

	Nodes     map[string]*NodeLayout
	Edges     []*EdgeLayout
	Subgraphs []*SubgraphLayout

	Sequence *SequenceLayout
	Pie      *PieLayout
	Quadrant *QuadrantLayout
	Gantt    *GanttLayout
	Sankey   *SankeyLayout
	GitGraph *GitGraphLayout
	C4       *C4Layout
	Mindmap  *MindmapLayout
	XYChart  *XYChartLayout
	Timeline *TimelineLayout
	Treemap  *TreemapLayout
	Radar    *RadarLayout
	Architecture *ArchitectureLayout

	StateNotes []StateNoteLayout

	Error *ErrorLayout
}

// Point is an absolute (x,y) coordinate in unitless pixels.
type Point struct {
	X, Y float64
}

// TextBlock is the measured result of wrapping and sizing a label, per spec.md §4.1.2.
type TextBlock struct {
	Lines  []string
	Width  float64
	Height float64
}

// NodeLayout is the placed geometry of one node.
type NodeLayout struct {
	ID     string
	X, Y   float64
	Width  float64
	Height float64
	Label  TextBlock
	Shape  Shape
	Style  StyleOverride
	Link   string

	// AnchorSubgraph is the index into Layout.Subgraphs this node stands in for, or -1 if this
	// node is not a subgraph anchor.
	AnchorSubgraph int
	// Hidden marks an anchor node standing in for a subgraph: excluded from obstacle sets and
	// from visible output, but still referenced by edges (whose endpoints are proxied to the
	// subgraph border).
	Hidden bool
}

// EdgeLayout is one routed edge.
type EdgeLayout struct {
	From, To string

	// Points is the routed poly-line; Points[0] is the start anchor on From's boundary,
	// Points[len-1] is the end anchor on To's boundary. len(Points) >= 2 always.
	Points []Point

	Directed   bool
	ArrowStart ArrowKind
	ArrowEnd   ArrowKind

	Decorations []string
	Style       EdgeStyle
	StyleOverride StyleOverride

	CenterLabel *LabelAnchor
	StartLabel  *LabelAnchor
	EndLabel    *LabelAnchor
}

// LabelAnchor is a placed label: its measured text plus the top-left corner chosen by the
// collision-aware label placer (or, before placement has run, the provisional anchor point).
type LabelAnchor struct {
	Text  TextBlock
	X, Y  float64
}

// SubgraphLayout is the placed bounding box of a subgraph cluster.
type SubgraphLayout struct {
	Label      TextBlock
	NodeIDs    []string
	X, Y       float64
	Width      float64
	Height     float64
	Style      StyleOverride
}

// StateNoteLayout places a note box next to its anchor node.
type StateNoteLayout struct {
	NodeID string
	Text   TextBlock
	X, Y   float64
	Width  float64
	Height float64
}

// ErrorLayout is a fixed-size placeholder rendered instead of a diagram body when a configured
// error render mode is active (pie/treemap), per spec.md §4.10.
type ErrorLayout struct {
	ViewBoxWidth, ViewBoxHeight float64
	RenderWidth, RenderHeight   float64
	Message, Version            string
	TextX, TextY, TextSize      float64
	VersionX, VersionY, VersionSize float64
	IconScale, IconTX, IconTY  float64
}
