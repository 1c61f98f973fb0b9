package ir

// SequencePayload holds the sequence-diagram-specific source data: participants, nested frames,
// notes, boxes, activations, and autonumbering. Edges carrying the messages themselves live in
// Graph.Edges in declared order; a frame's Start/End indices index into that slice.
type SequencePayload struct {
	Participants []string

	Frames []SequenceFrame

	Notes []SequenceNote

	// Boxes group a contiguous run of participants visually (rect around lifelines).
	Boxes []SequenceBox

	// Activations record activate/deactivate pairs per participant in declaration order.
	Activations []SequenceActivation

	Autonumber *int // nil means autonumbering is off; else the starting value
}

// SequenceFrameKind is the kind of a nested sequence frame.
type SequenceFrameKind int

const (
	FrameAlt SequenceFrameKind = iota
	FrameOpt
	FrameLoop
	FramePar
	FrameRect
	FrameCritical
	FrameBreak
)

// SequenceFrame is a nested alt/opt/loop/par/rect/critical/break block spanning a contiguous
// range of message indices, optionally divided into sections (the "else"/"and"/"option" arms).
type SequenceFrame struct {
	Kind       SequenceFrameKind
	Label      string
	Start, End int // inclusive message indices into Graph.Edges
	// SectionStarts holds the message index at which each additional section (beyond the first)
	// begins; a divider is drawn just above each.
	SectionStarts []int
	SectionLabels []string
	Parent        int // index into Frames of the enclosing frame, or -1 for top level
}

// SequenceNote is anchored to one or two participants at a given message index.
type SequenceNote struct {
	Participants []string
	Text         string
	Position     string // "left of" | "right of" | "over"
	AtIndex      int    // message index the note is anchored before
}

// SequenceBox groups a contiguous run of participants with an optional label/colour.
type SequenceBox struct {
	Participants []string
	Label        string
}

// SequenceActivation is one activate/deactivate pair for a participant.
type SequenceActivation struct {
	Participant string
	StartIndex  int
	EndIndex    int
}

// PiePayload holds pie-chart slices and display options.
type PiePayload struct {
	Slices   []PieSlice
	ShowData bool
	Title    string
}

// PieSlice is one labelled value in a pie chart, in declared order.
type PieSlice struct {
	Label string
	Value float64
}

// QuadrantPayload holds quadrant-chart axis labels, quadrant labels, and scattered points.
type QuadrantPayload struct {
	Title         string
	XAxisLeft     string
	XAxisRight    string
	YAxisBottom   string
	YAxisTop      string
	QuadrantLabels [4]string // 0=top-right,1=top-left,2=bottom-left,3=bottom-right
	Points        []QuadrantPoint
}

// QuadrantPoint is a labelled data point in normalised [0,1] axis space.
type QuadrantPoint struct {
	Label string
	X, Y  float64
}

// GanttPayload holds a flattened task list for a Gantt chart.
type GanttPayload struct {
	Title    string
	Sections []string // section name per task, "" if ungrouped
	Tasks    []GanttTask
}

// GanttTask is one bar in a Gantt chart.
type GanttTask struct {
	ID         string
	Label      string
	Section    string
	Start      int64 // unix seconds
	End        int64
	Milestone  bool
	Active     bool
	Done       bool
	Critical   bool
	DependsOn  []string
}

// SankeyPayload holds sankey flow edges; values live alongside the edge rather than duplicating
// Graph.Edges since sankey has no other edge semantics (no arrows, no routing).
type SankeyPayload struct {
	Links []SankeyLink
}

// SankeyLink is one flow from Source to Target carrying Value units.
type SankeyLink struct {
	Source, Target string
	Value          float64
}

// GitGraphPayload holds branches and commits for a git-graph diagram.
type GitGraphPayload struct {
	Branches []GitBranch
	Commits  []GitCommit
}

// GitBranch is one lane in a git graph.
type GitBranch struct {
	Name  string
	Order *int // explicit order if the source specified one, else nil
}

// GitCommitType distinguishes normal, merge, and cherry-pick commits.
type GitCommitType int

const (
	CommitNormal GitCommitType = iota
	CommitMerge
	CommitCherryPick
	CommitHighlight
)

// GitCommit is one commit node in a git graph.
type GitCommit struct {
	ID         string
	Seq        int // declaration sequence number, used for sorting and for reroute detection
	Branch     string
	Parents    []string
	Type       GitCommitType
	Tags       []string
	CustomID   bool // true if the id was explicitly given (affects label display)
	CustomType string
}

// C4Payload holds C4-diagram shapes, nested boundaries, and relationships.
type C4Payload struct {
	Shapes      []C4Shape
	Boundaries  []C4Boundary
	Rels        []C4Rel
}

// C4ShapeKind distinguishes person/system/container/component shapes.
type C4ShapeKind int

const (
	C4Person C4ShapeKind = iota
	C4System
	C4Container
	C4Component
)

// C4Shape is one box in a C4 diagram, nested inside BoundaryID (empty for top level).
type C4Shape struct {
	ID          string
	Label       string
	Description string
	Technology  string
	Kind        C4ShapeKind
	BoundaryID  string
}

// C4Boundary is a nested grouping box (system/container/enterprise boundary).
type C4Boundary struct {
	ID       string
	Label    string
	ParentID string // empty for top level
}

// C4Rel is a relationship arrow between two shapes (by id, shape or boundary).
type C4Rel struct {
	From, To string
	Label    string
}

// MindmapPayload holds the node tree for a mindmap.
type MindmapPayload struct {
	Nodes  map[string]*MindmapNode
	RootID string
}

// MindmapNode is one node in the mindmap tree.
type MindmapNode struct {
	ID       string
	Label    string
	Level    int
	Section  int // top-level branch index, used for left/right alternation
	Children []string
	Shape    Shape
}

// XYChartPayload holds categorical/numeric axis data for a bar+line xy-chart.
type XYChartPayload struct {
	Title        string
	XCategories  []string
	YMin, YMax   float64
	YAutoRange   bool
	Bars         []XYSeries
	Lines        []XYSeries
}

// XYSeries is one bar or line series of values, one per x category.
type XYSeries struct {
	Name   string
	Values []float64
}

// TimelinePayload holds a sequence of time periods each with one or more events, grouped into
// optional sections.
type TimelinePayload struct {
	Title    string
	Sections []TimelineSection
}

// TimelineSection groups a run of periods under an optional section name.
type TimelineSection struct {
	Name    string
	Periods []TimelinePeriod
}

// TimelinePeriod is one time label with its associated events.
type TimelinePeriod struct {
	Period string
	Events []string
}

// TreemapPayload holds a nested value tree for a treemap.
type TreemapPayload struct {
	Root *TreemapNode
}

// TreemapNode is one rectangle (leaf has a Value, branch's value is implied by children).
type TreemapNode struct {
	Label    string
	Value    float64
	Children []*TreemapNode
}

// RadarPayload holds axis names and one or more datasets for a radar chart. Per
// original_source/src/layout/radar.rs the layout engine only needs the node identities for its
// legend; per-axis numeric scaling is a renderer concern driven by Theme.
type RadarPayload struct {
	Axes     []string
	Datasets []RadarDataset
}

// RadarDataset is one named polygon of values, one per axis.
type RadarDataset struct {
	Name   string
	Values []float64
}

// ArchitectureSide is a compass-direction port on an architecture service or group, the fixed
// docking point Mermaid's architecture-beta grammar names explicitly in edge statements
// (`svcA:R -- L:svcB`) rather than leaving to port assignment like the flowchart driver.
type ArchitectureSide int

const (
	ArchSideLeft ArchitectureSide = iota
	ArchSideRight
	ArchSideTop
	ArchSideBottom
)

// ArchitecturePayload holds the groups, services, junctions, and edges of an architecture
// diagram. Services and junctions nest inside groups the way C4Shapes nest inside C4Boundaries.
type ArchitecturePayload struct {
	Groups    []ArchitectureGroup
	Services  []ArchitectureService
	Junctions []ArchitectureJunction
	Edges     []ArchitectureEdge
}

// ArchitectureGroup is a nested grouping box (ParentID empty for top level).
type ArchitectureGroup struct {
	ID       string
	Label    string
	Icon     string
	ParentID string
}

// ArchitectureService is one icon+label box, optionally nested in a group.
type ArchitectureService struct {
	ID      string
	Label   string
	Icon    string
	GroupID string
}

// ArchitectureJunction is an invisible routing point used to bend an edge without attaching it
// to a service, optionally nested in a group.
type ArchitectureJunction struct {
	ID      string
	GroupID string
}

// ArchitectureEdge connects two services/junctions at fixed compass ports.
type ArchitectureEdge struct {
	From     string
	FromSide ArchitectureSide
	To       string
	ToSide   ArchitectureSide
	Label    string
}
