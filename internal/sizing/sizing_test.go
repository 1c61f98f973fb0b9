package sizing

import (
	"testing"

	"github.com/teleivo/assertive/assert"

	"github.com/inkmesh/diagramlayout/config"
	"github.com/inkmesh/diagramlayout/ir"
)

func TestSizeAppliesNodePadding(t *testing.T) {
	cfg := config.Default()
	block := ir.TextBlock{Lines: []string{"hi"}, Width: 20, Height: 16}

	w, h := Size(block, ir.ShapeRectangle, KindFlowchart, cfg, 16)

	assert.Truef(t, w > block.Width, "Size width %v should exceed label width %v", w, block.Width)
	assert.Truef(t, h > block.Height, "Size height %v should exceed label height %v", h, block.Height)
}

func TestDiamondBecomesSquare(t *testing.T) {
	cfg := config.Default()
	block := ir.TextBlock{Lines: []string{"x"}, Width: 10, Height: 16}

	w, h := Size(block, ir.ShapeDiamond, KindFlowchart, cfg, 16)

	assert.EqualValuesf(t, w, h, "diamond should be square, got %vx%v", w, h)
}

func TestClassNodeMeetsMinimumHeight(t *testing.T) {
	cfg := config.Default()
	block := ir.TextBlock{Lines: []string{"x"}, Width: 5, Height: 16}

	_, h := Size(block, ir.ShapeRectangle, KindClass, cfg, 16)

	assert.Truef(t, h >= 6.5*16, "class node height %v should be >= 6.5*fontSize", h)
}

func TestRequirementNodeMeetsMinimumSize(t *testing.T) {
	cfg := config.Default()
	block := ir.TextBlock{Lines: []string{"x"}, Width: 5, Height: 5}

	w, h := Size(block, ir.ShapeRectangle, KindRequirement, cfg, 16)

	assert.Truef(t, w >= 12*16, "requirement node width %v should be >= 12*fontSize", w)
	assert.Truef(t, h >= 14.2*16, "requirement node height %v should be >= 14.2*fontSize", h)
}

func TestForkJoinIsFixedThinBar(t *testing.T) {
	cfg := config.Default()
	block := ir.TextBlock{}

	w1, h1 := Size(block, ir.ShapeForkJoin, KindFlowchart, cfg, 16)
	w2, h2 := Size(block, ir.ShapeForkJoin, KindFlowchart, cfg, 24)

	assert.EqualValuesf(t, w1, w2, "fork/join width should not depend on font size")
	assert.EqualValuesf(t, h1, h2, "fork/join height should not depend on font size")
}
