// Package ir defines the intermediate representation consumed and produced by the layout
// engine: [Graph] is the parsed diagram the engine lays out, [Layout] is the placed geometry it
// produces. Both are plain data — the parser and renderer are external collaborators that speak
// this representation; nothing in this package depends on either.
package ir

// Kind identifies the diagram grammar a [Graph] was parsed from. The layout engine's Compute
// switches on Kind to choose a driver.
type Kind int

const (
	KindFlowchart Kind = iota
	KindClass
	KindState
	KindER
	KindRequirement
	KindJourney
	KindBlock
	KindPacket
	KindSequence
	KindGitGraph
	KindSankey
	KindPie
	KindQuadrant
	KindSankeyAlt // reserved: some parsers alias "sankey-beta" to a distinct kind
	KindMindmap
	KindTimeline
	KindXYChart
	KindTreemap
	KindGantt
	KindRadar
	KindArchitecture
	KindC4
)

func (k Kind) String() string {
	switch k {
	case KindFlowchart:
		return "flowchart"
	case KindClass:
		return "class"
	case KindState:
		return "state"
	case KindER:
		return "er"
	case KindRequirement:
		return "requirement"
	case KindJourney:
		return "journey"
	case KindBlock:
		return "block"
	case KindPacket:
		return "packet"
	case KindSequence:
		return "sequence"
	case KindGitGraph:
		return "gitGraph"
	case KindSankey:
		return "sankey"
	case KindPie:
		return "pie"
	case KindQuadrant:
		return "quadrant"
	case KindMindmap:
		return "mindmap"
	case KindTimeline:
		return "timeline"
	case KindXYChart:
		return "xychart"
	case KindTreemap:
		return "treemap"
	case KindGantt:
		return "gantt"
	case KindRadar:
		return "radar"
	case KindArchitecture:
		return "architecture"
	case KindC4:
		return "c4"
	default:
		return "unknown"
	}
}

// usesFlowchartDriver reports whether the flowchart rank-layered engine lays this kind out,
// per spec.md §4.2.
func (k Kind) usesFlowchartDriver() bool {
	switch k {
	case KindFlowchart, KindClass, KindState, KindER, KindRequirement, KindJourney, KindBlock, KindPacket:
		return true
	default:
		return false
	}
}

// UsesFlowchartDriver reports whether the generic rank-layered engine lays this kind out.
func (k Kind) UsesFlowchartDriver() bool { return k.usesFlowchartDriver() }

// Direction is the primary axis a diagram flows along.
type Direction int

const (
	TopDown Direction = iota
	BottomTop
	LeftRight
	RightLeft
)

func (d Direction) String() string {
	switch d {
	case TopDown:
		return "TD"
	case BottomTop:
		return "BT"
	case LeftRight:
		return "LR"
	case RightLeft:
		return "RL"
	default:
		return "TD"
	}
}

// IsHorizontal reports whether the main axis of flow is horizontal (LR/RL).
func (d Direction) IsHorizontal() bool {
	return d == LeftRight || d == RightLeft
}

// Shape is the geometric shape used to render a node.
type Shape int

const (
	ShapeRectangle Shape = iota
	ShapeRoundRect
	ShapeStadium
	ShapeDiamond
	ShapeCircle
	ShapeDoubleCircle
	ShapeHexagon
	ShapeParallelogram
	ShapeTrapezoid
	ShapeSubroutine
	ShapeCylinder
	ShapeAsymmetric
	ShapeForkJoin
	ShapeActorBox
	ShapeText
)

// ShapeFromString maps an unrecognized or arbitrary shape string to a [Shape], defaulting to
// [ShapeRectangle] per spec.md §7 ("Unknown node shapes default to Rectangle").
func ShapeFromString(s string) Shape {
	switch s {
	case "round", "rounded":
		return ShapeRoundRect
	case "stadium":
		return ShapeStadium
	case "diamond", "decision", "rhombus":
		return ShapeDiamond
	case "circle":
		return ShapeCircle
	case "doublecircle":
		return ShapeDoubleCircle
	case "hexagon":
		return ShapeHexagon
	case "parallelogram":
		return ShapeParallelogram
	case "trapezoid":
		return ShapeTrapezoid
	case "subroutine":
		return ShapeSubroutine
	case "cylinder":
		return ShapeCylinder
	case "asymmetric":
		return ShapeAsymmetric
	case "fork", "join":
		return ShapeForkJoin
	case "actor":
		return ShapeActorBox
	case "text":
		return ShapeText
	case "rectangle", "":
		return ShapeRectangle
	default:
		return ShapeRectangle
	}
}

// EdgeStyle is the stroke style of an edge.
type EdgeStyle int

const (
	EdgeSolid EdgeStyle = iota
	EdgeDotted
	EdgeThick
)

// ArrowKind is the decoration drawn at an edge endpoint.
type ArrowKind int

const (
	ArrowNone ArrowKind = iota
	ArrowNormal
	ArrowCircle
	ArrowCross
)

// Side is a node edge (L/R/T/B) used for port assignment, per the Port glossary entry.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)
