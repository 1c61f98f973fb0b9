package ir

// Graph is the parsed diagram intermediate representation the layout engine consumes. It is
// produced by the parser (an external collaborator) and never mutated by the layout engine
// itself; [layout.Compute] is a pure function of (Graph, Theme, Config).
type Graph struct {
	Kind      Kind
	Direction Direction

	// Nodes maps node id to its definition. Keys are unique; NodeOrder records declaration order
	// for tie-breaking since map iteration order is not stable.
	Nodes     map[string]*Node
	NodeOrder []string

	Edges []Edge

	Subgraphs []Subgraph

	NodeClasses     map[string][]string // node id -> class names applied to it
	SubgraphClasses map[string][]string
	ClassDefs       map[string]StyleOverride

	// Per-diagram-kind payloads. At most the payload matching Kind is populated; the rest are
	// left at their zero value.
	Sequence  *SequencePayload
	Pie       *PiePayload
	Quadrant  *QuadrantPayload
	Gantt     *GanttPayload
	Sankey    *SankeyPayload
	GitGraph  *GitGraphPayload
	C4        *C4Payload
	Mindmap   *MindmapPayload
	XYChart   *XYChartPayload
	Timeline  *TimelinePayload
	Treemap   *TreemapPayload
	Radar     *RadarPayload
	Architecture *ArchitecturePayload
	StateNotes []StateNote
}

// NodeIDsInOrder returns the graph's node ids in declaration order, falling back to Nodes'
// iteration order for any id missing from NodeOrder (defensive; parsers are expected to keep
// these in sync).
func (g *Graph) NodeIDsInOrder() []string {
	seen := make(map[string]bool, len(g.NodeOrder))
	out := make([]string, 0, len(g.Nodes))
	for _, id := range g.NodeOrder {
		if _, ok := g.Nodes[id]; ok && !seen[id] {
			out = append(out, id)
			seen[id] = true
		}
	}
	if len(out) == len(g.Nodes) {
		return out
	}
	for id := range g.Nodes {
		if !seen[id] {
			out = append(out, id)
			seen[id] = true
		}
	}
	return out
}

// Node is a diagram node with an optional shape and style overrides.
type Node struct {
	ID    string
	Label string
	Shape Shape
	Link  string
	Style StyleOverride
}

// Edge connects two nodes, optionally labelled and decorated.
type Edge struct {
	From, To string

	CenterLabel string
	StartLabel  string
	EndLabel    string

	Directed bool

	ArrowStart ArrowKind
	ArrowEnd   ArrowKind

	// Decorations are renderer-facing markers (e.g. "async", "cross") that do not affect layout
	// geometry directly but travel through to the output.
	Decorations []string

	Style         EdgeStyle
	StyleOverride StyleOverride
}

// Subgraph groups a set of nodes, optionally with its own direction and label.
type Subgraph struct {
	ID        string
	Label     string
	NodeIDs   []string
	Direction *Direction // nil means "inherit the graph's direction"
}

// StyleOverride is an opaque bag of renderer-facing CSS-like property overrides resolved from
// class definitions; the layout engine reads only the subset documented on each payload/shape
// (e.g. padding), treating the rest as pass-through data for the renderer.
type StyleOverride map[string]string

// StateNote attaches a note to a state-diagram node; position is renderer-facing, but the layout
// engine needs to know a note exists to reserve space next to its anchor node (see
// layout.flowchartDriver's state-note reservation pass).
type StateNote struct {
	NodeID   string
	Text     string
	Position string // "left of" | "right of"
}
