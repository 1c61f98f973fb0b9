package config

import (
	"testing"

	"github.com/teleivo/assertive/assert"
)

func TestDefaultSetsDocumentedValues(t *testing.T) {
	cfg := Default()

	assert.EqualValuesf(t, cfg.NodeSpacing, 50, "NodeSpacing")
	assert.EqualValuesf(t, cfg.RankSpacing, 50, "RankSpacing")
	assert.EqualValuesf(t, cfg.NodePaddingX, 30, "NodePaddingX")
	assert.EqualValuesf(t, cfg.NodePaddingY, 15, "NodePaddingY")
	assert.EqualValuesf(t, cfg.MaxLabelWidthChars, 22, "MaxLabelWidthChars")
	assert.Truef(t, cfg.FastTextMetrics, "FastTextMetrics")

	assert.EqualValuesf(t, cfg.Flowchart.OrderingPasses, 4, "Flowchart.OrderingPasses")
	assert.Truef(t, cfg.Flowchart.OrderingPasses >= 4, "spec.md requires >= 4 ordering passes")
	assert.EqualValuesf(t, cfg.Flowchart.HubDegreeThreshold, 6, "HubDegreeThreshold")

	assert.EqualValuesf(t, cfg.Architecture.ServiceWidth, 80, "Architecture.ServiceWidth")
	assert.EqualValuesf(t, cfg.Architecture.ServiceHeight, 80, "Architecture.ServiceHeight")
	assert.EqualValuesf(t, cfg.Architecture.Margin, 20, "Architecture.Margin")
	assert.EqualValuesf(t, cfg.Architecture.ServiceInRow, 4, "Architecture.ServiceInRow")

	assert.EqualValuesf(t, cfg.C4.Margin, 20, "C4.Margin")
	assert.EqualValuesf(t, cfg.Sankey.Width, 560, "Sankey.Width")
	assert.EqualValuesf(t, cfg.Radar.Width, 680, "Radar.Width")
	assert.EqualValuesf(t, cfg.Timeline.PeriodWidth, 180, "Timeline.PeriodWidth")

	if cfg.Pie.ErrorRenderHeight == nil {
		t.Fatalf("Pie.ErrorRenderHeight should not be nil")
	}
	assert.EqualValuesf(t, *cfg.Pie.ErrorRenderHeight, 100, "Pie.ErrorRenderHeight")
}

func TestOverlayWithEmptyDataReturnsBaseUnchanged(t *testing.T) {
	base := Default()

	got, err := Overlay(base, nil)

	assert.NoErrorf(t, err, "Overlay")
	assert.EqualValues(t, got, base)
}

func TestOverlayMergesOverSpecifiedFieldsOnly(t *testing.T) {
	base := Default()

	got, err := Overlay(base, []byte(`{"nodeSpacing": 99, "c4": {"margin": 5}}`))

	assert.NoErrorf(t, err, "Overlay")
	assert.EqualValuesf(t, got.NodeSpacing, 99, "overlaid NodeSpacing")
	assert.EqualValuesf(t, got.C4.Margin, 5, "overlaid C4.Margin")
	// Fields untouched by the overlay retain the base's defaults.
	assert.EqualValuesf(t, got.RankSpacing, base.RankSpacing, "untouched RankSpacing")
	assert.EqualValuesf(t, got.C4.ShapeInRow, base.C4.ShapeInRow, "untouched C4.ShapeInRow")
}

func TestOverlayRejectsInvalidJSON(t *testing.T) {
	base := Default()

	got, err := Overlay(base, []byte(`not json`))

	assert.Errorf(t, err, "Overlay")
	assert.EqualValues(t, got, base)
}

func TestDefaultThemeSetsFontDefaults(t *testing.T) {
	theme := DefaultTheme()

	assert.EqualValuesf(t, theme.FontSize, 16, "FontSize")
	assert.Truef(t, theme.FontFamily != "", "FontFamily should not be empty")
}
