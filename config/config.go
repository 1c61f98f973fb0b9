// Package config defines the layout engine's configuration surface: every numeric knob named in
// spec.md §6, each with the documented default. Config is opaque to the core in the sense that
// the engine never validates it beyond clamping to sane ranges — an out-of-range value produces
// an unusual but still representable layout, per spec.md §7.
package config

import "encoding/json"

// Config enumerates every layout-affecting parameter, per spec.md §6. Every field has a default
// set by [Default]; JSON overlays (the CLI's -c/--configFile, or a parsed %%{init: ...}%%
// payload) only need to set the fields they override, matching src/config.rs's "every constant
// is a field with a default" design (see SPEC_FULL.md "Supplemented features").
type Config struct {
	NodeSpacing       float64 `json:"nodeSpacing"`
	RankSpacing       float64 `json:"rankSpacing"`
	NodePaddingX      float64 `json:"nodePaddingX"`
	NodePaddingY      float64 `json:"nodePaddingY"`
	LabelLineHeight   float64 `json:"labelLineHeight"`
	MaxLabelWidthChars int    `json:"maxLabelWidthChars"`
	FastTextMetrics   bool    `json:"fastTextMetrics"`

	Flowchart    FlowchartConfig    `json:"flowchart"`
	Sequence     SequenceConfig     `json:"sequence"`
	Pie          PieConfig          `json:"pie"`
	GitGraph     GitGraphConfig     `json:"gitGraph"`
	C4           C4Config           `json:"c4"`
	Mindmap      MindmapConfig      `json:"mindmap"`
	Treemap      TreemapConfig      `json:"treemap"`
	Requirement  RequirementConfig  `json:"requirement"`
	Sankey       SankeyConfig       `json:"sankey"`
	Gantt        GanttConfig        `json:"gantt"`
	XYChart      XYChartConfig      `json:"xychart"`
	Quadrant     QuadrantConfig     `json:"quadrant"`
	Radar        RadarConfig        `json:"radar"`
	Timeline     TimelineConfig     `json:"timeline"`
	Architecture ArchitectureConfig `json:"architecture"`
}

// FlowchartConfig configures the rank-layered generic engine, per spec.md §4.2.
type FlowchartConfig struct {
	Routing RoutingConfig `json:"routing"`

	// OrderingPasses is the number of alternating down/up barycenter-ordering sweeps (spec.md's
	// "≥ 4 passes, configurable").
	OrderingPasses int `json:"orderingPasses"`

	// SubgraphPaddingMain/Cross are the padding added around the bounding box of a subgraph's
	// member nodes (main-axis ≈ 40, cross-axis ≈ 30 for flowchart): Main above and below, Cross
	// left and right, whatever the diagram direction. Subgraphs are not anchored or laid out
	// recursively; each box covers only its own listed member nodes as already placed.
	SubgraphPaddingMain  float64 `json:"subgraphPaddingMain"`
	SubgraphPaddingCross float64 `json:"subgraphPaddingCross"`

	// HubDegreeThreshold, LeafDegreeThreshold and HubToLeafDegreeThreshold name the node-degree
	// limits of a hub/leaf port override. The flowchart driver does not read them: ports always
	// come from routing.EdgeSides on the two node boxes, whatever the nodes' degrees.
	HubDegreeThreshold int `json:"hubDegreeThreshold"`
	LeafDegreeThreshold      int `json:"leafDegreeThreshold"`
	HubToLeafDegreeThreshold int `json:"hubToLeafDegreeThreshold"`

	AspectRatioThreshold float64 `json:"aspectRatioThreshold"`
}

// RoutingConfig configures orthogonal candidate generation and the A* fallback router.
type RoutingConfig struct {
	EnableGridRouter bool    `json:"enableGridRouter"`
	GridCell         float64 `json:"gridCell"`
	TurnPenalty      float64 `json:"turnPenalty"`
	OccupancyWeight  float64 `json:"occupancyWeight"`
	MaxSteps         int     `json:"maxSteps"`
}

// SequenceConfig configures the sequence-diagram driver.
type SequenceConfig struct {
	ActorPaddingX float64 `json:"actorPaddingX"`
	ActorMinWidth float64 `json:"actorMinWidth"`
	ActorMinHeight float64 `json:"actorMinHeight"`
	MessageBaselinePad float64 `json:"messageBaselinePad"`
	NoteGapY      float64 `json:"noteGapY"`
	ActivationWidth float64 `json:"activationWidth"`
	MessageSpacing  float64 `json:"messageSpacing"`
	LifelineGap     float64 `json:"lifelineGap"`
	BoxPadding      float64 `json:"boxPadding"`
	FrameTextHeight float64 `json:"frameTextHeight"`
}

// PieConfig configures the pie driver, including the Error render-mode placeholder.
type PieConfig struct {
	MinPercent float64 `json:"minPercent"`
	Margin     float64 `json:"margin"`
	// LegendRectSize/LegendSpacing size the colour swatch and the gap before the label in each
	// legend row.
	LegendRectSize float64 `json:"legendRectSize"`
	LegendSpacing  float64 `json:"legendSpacing"`

	RenderMode         string   `json:"renderMode"` // "" or "error"
	ErrorViewBoxWidth  float64  `json:"errorViewBoxWidth"`
	ErrorViewBoxHeight float64  `json:"errorViewBoxHeight"`
	ErrorRenderWidth   float64  `json:"errorRenderWidth"`
	ErrorRenderHeight  *float64 `json:"errorRenderHeight"`
	ErrorMessage       string   `json:"errorMessage"`
	ErrorVersion       string   `json:"errorVersion"`
	ErrorTextX         float64  `json:"errorTextX"`
	ErrorTextY         float64  `json:"errorTextY"`
	ErrorTextSize      float64  `json:"errorTextSize"`
	ErrorVersionX      float64  `json:"errorVersionX"`
	ErrorVersionY      float64  `json:"errorVersionY"`
	ErrorVersionSize   float64  `json:"errorVersionSize"`
	IconScale          float64  `json:"iconScale"`
	IconTX             float64  `json:"iconTx"`
	IconTY             float64  `json:"iconTy"`
}

// GitGraphConfig configures the gitgraph driver.
type GitGraphConfig struct {
	BranchSpacing       float64 `json:"branchSpacing"`
	RotateExtra         float64 `json:"rotateExtra"`
	CommitStep          float64 `json:"commitStep"`
	LayoutOffset        float64 `json:"layoutOffset"`
	ParallelCommits     bool    `json:"parallelCommits"`
	ShowCommitLabel     bool    `json:"showCommitLabel"`
	RotateCommitLabel   bool    `json:"rotateCommitLabel"`
	TagSpacingY         float64 `json:"tagSpacingY"`
	ArrowRadius         float64 `json:"arrowRadius"`
	ArrowRerouteRadius  float64 `json:"arrowRerouteRadius"`
	CommitRadius        float64 `json:"commitRadius"`
	MergeRadius         float64 `json:"mergeRadius"`
	MainBranchName      string  `json:"mainBranchName"`
}

// C4Config configures the C4 row-packing driver.
type C4Config struct {
	Margin         float64 `json:"margin"`
	ShapeInRow     int     `json:"shapeInRow"`
	BoundaryInRow  int     `json:"boundaryInRow"`
}

// MindmapConfig configures the radial-fan mindmap driver.
type MindmapConfig struct {
	HorizontalGap float64 `json:"horizontalGap"`
	VerticalGap   float64 `json:"verticalGap"`
	StrokeBase    float64 `json:"strokeBase"`
	StrokeStep    float64 `json:"strokeStep"`
}

// TreemapConfig configures the treemap driver, including the Error render-mode placeholder.
type TreemapConfig struct {
	Width              float64  `json:"width"`
	Height             float64  `json:"height"`
	Padding            float64  `json:"padding"`
	RenderMode         string   `json:"renderMode"`
	ErrorViewBoxWidth  float64  `json:"errorViewBoxWidth"`
	ErrorViewBoxHeight float64  `json:"errorViewBoxHeight"`
	ErrorRenderWidth   float64  `json:"errorRenderWidth"`
	ErrorRenderHeight  *float64 `json:"errorRenderHeight"`
	ErrorMessage       string   `json:"errorMessage"`
	ErrorVersion       string   `json:"errorVersion"`
	ErrorTextX         float64  `json:"errorTextX"`
	ErrorTextY         float64  `json:"errorTextY"`
	ErrorTextSize      float64  `json:"errorTextSize"`
	ErrorVersionX      float64  `json:"errorVersionX"`
	ErrorVersionY      float64  `json:"errorVersionY"`
	ErrorVersionSize   float64  `json:"errorVersionSize"`
	IconScale          float64  `json:"iconScale"`
	IconTX             float64  `json:"iconTx"`
	IconTY             float64  `json:"iconTy"`
}

// TimelineConfig configures the timeline driver's period columns and section bands.
type TimelineConfig struct {
	PeriodWidth   float64 `json:"periodWidth"`
	PeriodGap     float64 `json:"periodGap"`
	EventHeight   float64 `json:"eventHeight"`
	EventGap      float64 `json:"eventGap"`
	SectionHeight float64 `json:"sectionHeight"`
}

// RequirementConfig configures requirement-diagram node minimum sizes, per spec.md §4.2 ("Node
// sizing").
type RequirementConfig struct {
	MinWidthFactor  float64 `json:"minWidthFactor"`  // x fontSize
	MinHeightFactor float64 `json:"minHeightFactor"` // x fontSize
}

// SankeyConfig configures the sankey driver's fixed canvas, per spec.md §4.5.
type SankeyConfig struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	NodeWidth float64 `json:"nodeWidth"`
	GapX      float64 `json:"gapX"`
}

// GanttConfig configures the gantt driver's row and axis layout.
type GanttConfig struct {
	BarHeight  float64 `json:"barHeight"`
	BarGap     float64 `json:"barGap"`
	SectionGap float64 `json:"sectionGap"`
	AxisHeight float64 `json:"axisHeight"`
	MaxTicks   int     `json:"maxTicks"`
}

// XYChartConfig configures the xychart driver.
type XYChartConfig struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	MaxYTicks  int     `json:"maxYTicks"`
	BarGap     float64 `json:"barGap"`
}

// QuadrantConfig configures the quadrant driver.
type QuadrantConfig struct {
	GridSize float64 `json:"gridSize"`
}

// RadarConfig configures the radar driver's fixed canvas, per
// original_source/src/layout/radar.rs.
type RadarConfig struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	MaxRadius  float64 `json:"maxRadius"`
	LegendBox  float64 `json:"legendBox"`
	LegendGap  float64 `json:"legendGap"`
}

// ArchitectureConfig configures the architecture driver's fixed-size service boxes and
// group row-packing, per spec.md §1's architecture diagram scope entry (the distilled spec
// carries no dedicated module section for this kind; sizes are chosen to match the icon+label
// service box proportions used by the other icon-bearing kinds, e.g. C4Config.Margin).
type ArchitectureConfig struct {
	ServiceWidth  float64 `json:"serviceWidth"`
	ServiceHeight float64 `json:"serviceHeight"`
	Margin        float64 `json:"margin"`
	ServiceInRow  int     `json:"serviceInRow"`
}

// Default returns a Config populated with the documented defaults from spec.md §6.
func Default() Config {
	errHeight := 100.0
	return Config{
		NodeSpacing:        50,
		RankSpacing:        50,
		NodePaddingX:       30,
		NodePaddingY:       15,
		LabelLineHeight:    1.5,
		MaxLabelWidthChars: 22,
		FastTextMetrics:    true,

		Flowchart: FlowchartConfig{
			Routing: RoutingConfig{
				EnableGridRouter: true,
				GridCell:         8,
				TurnPenalty:      2,
				OccupancyWeight:  1,
				MaxSteps:         10000,
			},
			OrderingPasses:           4,
			SubgraphPaddingMain:      40,
			SubgraphPaddingCross:     30,
			HubDegreeThreshold:       6,
			LeafDegreeThreshold:      4,
			HubToLeafDegreeThreshold: 10,
			AspectRatioThreshold:     1.35,
		},
		Sequence: SequenceConfig{
			ActorPaddingX:      2.5,
			ActorMinWidth:      150,
			ActorMinHeight:     65,
			MessageBaselinePad: 2.9,
			NoteGapY:           10,
			ActivationWidth:    10,
			MessageSpacing:     40,
			LifelineGap:        50,
			BoxPadding:         10,
			FrameTextHeight:    20,
		},
		Pie: PieConfig{
			MinPercent:         0,
			Margin:             40,
			LegendRectSize:     18,
			LegendSpacing:      4,
			ErrorViewBoxWidth:  512,
			ErrorViewBoxHeight: 512,
			ErrorRenderWidth:   512,
			ErrorRenderHeight:  &errHeight,
			ErrorMessage:       "Syntax error",
			ErrorVersion:       "",
			ErrorTextX:         256,
			ErrorTextY:         200,
			ErrorTextSize:      28,
			ErrorVersionX:      256,
			ErrorVersionY:      320,
			ErrorVersionSize:   16,
			IconScale:          1,
			IconTX:             206,
			IconTY:             50,
		},
		GitGraph: GitGraphConfig{
			BranchSpacing:      50,
			RotateExtra:        0,
			CommitStep:         40,
			LayoutOffset:       10,
			ParallelCommits:    false,
			ShowCommitLabel:    true,
			RotateCommitLabel:  true,
			TagSpacingY:        14,
			ArrowRadius:        6,
			ArrowRerouteRadius: 12,
			CommitRadius:       6,
			MergeRadius:        9,
			MainBranchName:     "main",
		},
		C4: C4Config{
			Margin:        20,
			ShapeInRow:    4,
			BoundaryInRow: 2,
		},
		Mindmap: MindmapConfig{
			HorizontalGap: 50,
			VerticalGap:   10,
			StrokeBase:    1,
			StrokeStep:    1,
		},
		Treemap: TreemapConfig{
			Width:              960,
			Height:             500,
			Padding:            2,
			ErrorViewBoxWidth:  512,
			ErrorViewBoxHeight: 512,
			ErrorRenderWidth:   512,
			ErrorRenderHeight:  &errHeight,
			ErrorMessage:       "Syntax error",
			ErrorVersion:       "",
			ErrorTextX:         256,
			ErrorTextY:         200,
			ErrorTextSize:      28,
			ErrorVersionX:      256,
			ErrorVersionY:      320,
			ErrorVersionSize:   16,
			IconScale:          1,
			IconTX:             206,
			IconTY:             50,
		},
		Requirement: RequirementConfig{
			MinWidthFactor:  12,
			MinHeightFactor: 14.2,
		},
		Sankey: SankeyConfig{
			Width:     560,
			Height:    360,
			NodeWidth: 10,
			GapX:      40,
		},
		Gantt: GanttConfig{
			BarHeight:  20,
			BarGap:     6,
			SectionGap: 10,
			AxisHeight: 30,
			MaxTicks:   10,
		},
		XYChart: XYChartConfig{
			Width:     700,
			Height:    450,
			MaxYTicks: 6,
			BarGap:    4,
		},
		Quadrant: QuadrantConfig{
			GridSize: 360,
		},
		Radar: RadarConfig{
			Width:     680,
			Height:    680,
			MaxRadius: 290,
			LegendBox: 11,
			LegendGap: 3,
		},
		Timeline: TimelineConfig{
			PeriodWidth:   180,
			PeriodGap:     10,
			EventHeight:   24,
			EventGap:      6,
			SectionHeight: 30,
		},
		Architecture: ArchitectureConfig{
			ServiceWidth:  80,
			ServiceHeight: 80,
			Margin:        20,
			ServiceInRow:  4,
		},
	}
}

// Overlay decodes JSON into a copy of cfg, leaving any field the JSON does not mention at its
// current value. This implements the "%%{init: ...}%%-overlays-the-theme-before-layout"
// contract from spec.md §6: call Overlay(Default(), initJSON) to get the effective Config.
func Overlay(base Config, data []byte) (Config, error) {
	if len(data) == 0 {
		return base, nil
	}
	out := base
	if err := json.Unmarshal(data, &out); err != nil {
		return base, err
	}
	return out, nil
}
