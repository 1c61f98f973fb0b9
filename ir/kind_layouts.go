package ir

// SequenceLayout places actor lifelines, frames, notes, activations, and autonumber markers.
type SequenceLayout struct {
	Lifelines   []LifelineLayout
	Frames      []SequenceFrameLayout
	Notes       []SequenceNoteLayout
	Activations []ActivationLayout
	Numbers     []NumberMarker
	Boxes       []SequenceBoxLayout
	Footboxes   bool
}

// LifelineLayout is one participant's actor box plus the vertical line beneath it.
type LifelineLayout struct {
	Participant string
	X           float64
	ActorY      float64
	ActorWidth  float64
	ActorHeight float64
	LineBottom  float64
	Label       TextBlock
}

// SequenceFrameLayout is the placed bounding box of an alt/opt/loop/par/rect/critical/break
// frame, plus its section dividers.
type SequenceFrameLayout struct {
	Kind            SequenceFrameKind
	Label           string
	X, Y            float64
	Width, Height   float64
	SectionDividers []float64 // y coordinates
	SectionLabels   []string
}

// SequenceNoteLayout is a placed note box.
type SequenceNoteLayout struct {
	Text          TextBlock
	X, Y          float64
	Width, Height float64
}

// ActivationLayout is one placed activation bar.
type ActivationLayout struct {
	Participant   string
	X, Y          float64
	Width, Height float64
	Depth         int
}

// NumberMarker places an autonumber integer to the left of a message start point.
type NumberMarker struct {
	Number int
	X, Y   float64
}

// SequenceBoxLayout is a placed grouping box around a run of lifelines.
type SequenceBoxLayout struct {
	Label         string
	X, Y          float64
	Width, Height float64
}

// PieLayout places pie slices, a legend, and an optional title.
type PieLayout struct {
	CenterX, CenterY float64
	Radius           float64
	Slices           []PieSliceLayout
	Legend           []PieLegendItem
	Title            *LabelAnchor
}

// PieSliceLayout is one slice's angular sweep and colour.
type PieSliceLayout struct {
	Label      string
	Value      float64
	Percent    float64
	StartAngle float64 // radians, 0 = 12 o'clock, clockwise
	EndAngle   float64
	Color      string
}

// PieLegendItem is one legend row.
type PieLegendItem struct {
	Label  string
	Color  string
	X, Y   float64
	Width, Height float64
}

// QuadrantLayout places the axis grid, axis labels, quadrant labels, and scattered points.
type QuadrantLayout struct {
	Title          *TextBlock
	TitleY         float64
	XAxisLeft      *TextBlock
	XAxisRight     *TextBlock
	YAxisBottom    *TextBlock
	YAxisTop       *TextBlock
	QuadrantLabels [4]*TextBlock
	Points         []QuadrantPointLayout
	GridX, GridY   float64
	GridWidth      float64
	GridHeight     float64
}

// QuadrantPointLayout is one placed, coloured data point.
type QuadrantPointLayout struct {
	Label TextBlock
	X, Y  float64
	Color string
}

// GanttLayout places task bars on a time axis grouped into section bands.
type GanttLayout struct {
	Sections   []GanttSectionLayout
	Bars       []GanttBarLayout
	AxisTicks  []AxisTick
	GridX      float64
	GridY      float64
	GridWidth  float64
	GridHeight float64
}

// GanttSectionLayout is one labelled horizontal band.
type GanttSectionLayout struct {
	Label  string
	Y      float64
	Height float64
}

// GanttBarLayout is one placed task bar.
type GanttBarLayout struct {
	ID            string
	Label         TextBlock
	X, Y          float64
	Width, Height float64
	Milestone     bool
	Active        bool
	Done          bool
	Critical      bool
}

// AxisTick is one placed tick mark with its label, shared by gantt/xychart/timeline/quadrant
// axes.
type AxisTick struct {
	Position float64 // pixel coordinate along the axis
	Label    string
}

// SankeyLayout places nodes in ranked columns and flow links between them.
type SankeyLayout struct {
	Nodes []SankeyNodeLayout
	Links []SankeyLinkLayout
}

// SankeyNodeLayout is one placed rank-column node.
type SankeyNodeLayout struct {
	ID            string
	X, Y          float64
	Width, Height float64
}

// SankeyLinkLayout is one placed flow; the renderer draws a cubic Bézier between the two
// anchors using Thickness as the stroke width.
type SankeyLinkLayout struct {
	Source, Target   string
	SourceY, TargetY float64 // link's vertical anchor on the source/target node's right/left edge
	Thickness        float64
}

// GitGraphLayout places branch lanes, commits, tags, and arrows.
type GitGraphLayout struct {
	Branches []GitBranchLayout
	Commits  []GitCommitLayout
	Arrows   []GitArrowLayout
}

// GitBranchLayout is one lane's reserved cross-axis coordinate.
type GitBranchLayout struct {
	Name string
	Lane float64
}

// GitCommitLayout is one placed commit dot plus its label and tags.
type GitCommitLayout struct {
	ID          string
	X, Y        float64
	Branch      string
	Label       *GitCommitLabel
	Tags        []GitTagLayout
	Type        GitCommitType
}

// GitCommitLabel places a commit's label, rotated or axis-aligned.
type GitCommitLabel struct {
	Text     string
	X, Y     float64
	Rotation float64 // degrees; 0 when axis-aligned
}

// GitTagLayout places one stacked tag polygon above a commit.
type GitTagLayout struct {
	Text string
	X, Y float64
}

// GitArrowLayout is one routed parent->commit connector.
type GitArrowLayout struct {
	From, To string
	Points   []Point
	Rerouted bool
	ColorIdx int
}

// C4Layout places shapes, boundaries, and relationship arrows.
type C4Layout struct {
	Shapes      []C4ShapeLayout
	Boundaries  []C4BoundaryLayout
	Rels        []C4RelLayout
}

// C4ShapeLayout is one placed box.
type C4ShapeLayout struct {
	ID            string
	X, Y          float64
	Width, Height float64
	Kind          C4ShapeKind
	Label         TextBlock
}

// C4BoundaryLayout is one placed grouping box.
type C4BoundaryLayout struct {
	ID            string
	X, Y          float64
	Width, Height float64
	Label         string
}

// C4RelLayout is one routed relationship arrow with ray-cast boundary intersection endpoints.
type C4RelLayout struct {
	From, To   string
	StartPoint Point
	EndPoint   Point
	Label      string
}

// MindmapLayout places a radially-fanned node tree.
type MindmapLayout struct {
	Nodes []MindmapNodeLayout
	Edges []MindmapEdgeLayout
}

// MindmapNodeLayout is one placed mindmap node.
type MindmapNodeLayout struct {
	ID            string
	X, Y          float64
	Width, Height float64
	Label         TextBlock
	Level         int
	Section       int
}

// MindmapEdgeLayout is one straight centre-to-centre connector.
type MindmapEdgeLayout struct {
	From, To    string
	StrokeWidth float64
}

// XYChartLayout places bar/line series against a categorical x axis and numeric y axis.
type XYChartLayout struct {
	Title      *TextBlock
	XTicks     []AxisTick
	YTicks     []AxisTick
	Bars       []XYBarLayout
	Lines      []XYLineLayout
	GridX      float64
	GridY      float64
	GridWidth  float64
	GridHeight float64
}

// XYBarLayout is one placed bar.
type XYBarLayout struct {
	Series        string
	CategoryIndex int
	X, Y          float64
	Width, Height float64
}

// XYLineLayout is one placed line series as a poly-line.
type XYLineLayout struct {
	Series string
	Points []Point
}

// TimelineLayout places time periods in a row, with events stacked under each and sections
// stacked above as coloured bands.
type TimelineLayout struct {
	Title    *TextBlock
	Sections []TimelineSectionLayout
	Periods  []TimelinePeriodLayout
}

// TimelineSectionLayout is one section band spanning a contiguous run of periods.
type TimelineSectionLayout struct {
	Name          string
	X, Y          float64
	Width, Height float64
}

// TimelinePeriodLayout is one placed period column with its stacked events.
type TimelinePeriodLayout struct {
	Period        string
	X, Y          float64
	Width, Height float64
	Events        []TextBlock
}

// TreemapLayout places a nested rectangle tree.
type TreemapLayout struct {
	Nodes []TreemapNodeLayout
}

// TreemapNodeLayout is one placed rectangle; Depth is used by the renderer to vary fill.
type TreemapNodeLayout struct {
	Label         string
	Value         float64
	Depth         int
	X, Y          float64
	Width, Height float64
}

// RadarLayout places a fixed-size canvas with a legend entry per dataset, per
// original_source/src/layout/radar.rs; the radial axis grid itself is a Theme/Renderer concern
// driven by Axes and Datasets values carried on the Graph.
type RadarLayout struct {
	Width, Height float64
	CenterX       float64
	CenterY       float64
	MaxRadius     float64
	Legend        []RadarLegendItem
}

// RadarLegendItem is one placed legend row.
type RadarLegendItem struct {
	Name          string
	Label         TextBlock
	X, Y          float64
	Width, Height float64
}

// ArchitectureLayout places groups, services, junctions, and routed edges, grounded on the same
// hierarchical row-packing shape as C4Layout (services nest in groups the way C4 shapes nest in
// boundaries) plus fixed-port edge routing in place of C4's center-to-center raycast.
type ArchitectureLayout struct {
	Groups    []ArchitectureGroupLayout
	Services  []ArchitectureServiceLayout
	Junctions []ArchitectureJunctionLayout
	Edges     []ArchitectureEdgeLayout
}

// ArchitectureGroupLayout is one placed grouping box.
type ArchitectureGroupLayout struct {
	ID            string
	X, Y          float64
	Width, Height float64
	Label         TextBlock
}

// ArchitectureServiceLayout is one placed icon+label box.
type ArchitectureServiceLayout struct {
	ID            string
	X, Y          float64
	Width, Height float64
	Icon          string
	Label         TextBlock
}

// ArchitectureJunctionLayout is one placed routing point (zero size, centre only).
type ArchitectureJunctionLayout struct {
	ID   string
	X, Y float64
}

// ArchitectureEdgeLayout is one routed connector docked at fixed compass ports on its endpoints.
type ArchitectureEdgeLayout struct {
	From, To string
	Points   []Point
	Label    string
}
