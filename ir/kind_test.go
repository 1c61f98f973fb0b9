package ir

import (
	"testing"

	"github.com/teleivo/assertive/assert"
)

func TestKindStringCoversAllKinds(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindFlowchart, "flowchart"},
		{KindClass, "class"},
		{KindState, "state"},
		{KindER, "er"},
		{KindRequirement, "requirement"},
		{KindJourney, "journey"},
		{KindBlock, "block"},
		{KindPacket, "packet"},
		{KindSequence, "sequence"},
		{KindGitGraph, "gitGraph"},
		{KindSankey, "sankey"},
		{KindPie, "pie"},
		{KindQuadrant, "quadrant"},
		{KindMindmap, "mindmap"},
		{KindTimeline, "timeline"},
		{KindXYChart, "xychart"},
		{KindTreemap, "treemap"},
		{KindGantt, "gantt"},
		{KindRadar, "radar"},
		{KindArchitecture, "architecture"},
		{KindC4, "c4"},
		{Kind(999), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.want, func(t *testing.T) {
			assert.EqualValues(t, test.kind.String(), test.want)
		})
	}
}

func TestUsesFlowchartDriverPartition(t *testing.T) {
	rankLayered := map[Kind]bool{
		KindFlowchart:   true,
		KindClass:       true,
		KindState:       true,
		KindER:          true,
		KindRequirement: true,
		KindJourney:     true,
		KindBlock:       true,
		KindPacket:      true,
	}

	all := []Kind{
		KindFlowchart, KindClass, KindState, KindER, KindRequirement, KindJourney, KindBlock,
		KindPacket, KindSequence, KindGitGraph, KindSankey, KindPie, KindQuadrant, KindMindmap,
		KindTimeline, KindXYChart, KindTreemap, KindGantt, KindRadar, KindArchitecture, KindC4,
	}

	for _, k := range all {
		t.Run(k.String(), func(t *testing.T) {
			assert.EqualValues(t, k.UsesFlowchartDriver(), rankLayered[k])
		})
	}
}

func TestArchitectureDoesNotUseFlowchartDriver(t *testing.T) {
	assert.False(t, KindArchitecture.UsesFlowchartDriver())
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{TopDown, "TD"},
		{BottomTop, "BT"},
		{LeftRight, "LR"},
		{RightLeft, "RL"},
		{Direction(99), "TD"},
	}

	for _, test := range tests {
		t.Run(test.want, func(t *testing.T) {
			assert.EqualValues(t, test.dir.String(), test.want)
		})
	}
}

func TestDirectionIsHorizontal(t *testing.T) {
	assert.True(t, LeftRight.IsHorizontal())
	assert.True(t, RightLeft.IsHorizontal())
	assert.False(t, TopDown.IsHorizontal())
	assert.False(t, BottomTop.IsHorizontal())
}

func TestShapeFromStringDefaultsToRectangle(t *testing.T) {
	assert.EqualValues(t, ShapeFromString("totally-unknown"), ShapeRectangle)
	assert.EqualValues(t, ShapeFromString(""), ShapeRectangle)
}

func TestShapeFromStringKnownAliases(t *testing.T) {
	tests := []struct {
		in   string
		want Shape
	}{
		{"round", ShapeRoundRect},
		{"rounded", ShapeRoundRect},
		{"stadium", ShapeStadium},
		{"diamond", ShapeDiamond},
		{"decision", ShapeDiamond},
		{"rhombus", ShapeDiamond},
		{"circle", ShapeCircle},
		{"doublecircle", ShapeDoubleCircle},
		{"hexagon", ShapeHexagon},
		{"parallelogram", ShapeParallelogram},
		{"trapezoid", ShapeTrapezoid},
		{"subroutine", ShapeSubroutine},
		{"cylinder", ShapeCylinder},
		{"asymmetric", ShapeAsymmetric},
		{"fork", ShapeForkJoin},
		{"join", ShapeForkJoin},
		{"actor", ShapeActorBox},
		{"text", ShapeText},
		{"rectangle", ShapeRectangle},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			assert.EqualValues(t, ShapeFromString(test.in), test.want)
		})
	}
}
