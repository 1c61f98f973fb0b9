package label

import (
	"testing"

	"github.com/teleivo/assertive/assert"

	"github.com/inkmesh/diagramlayout/config"
	"github.com/inkmesh/diagramlayout/metrics"
)

func TestSplitLines(t *testing.T) {
	tests := map[string]struct {
		in   string
		want []string
	}{
		"BrSelfClosing": {in: "a<br/>b", want: []string{"a", "b"}},
		"BrOpen":        {in: "a<br>b", want: []string{"a", "b"}},
		"EscapedNewline": {in: `a\nb`, want: []string{"a", "b"}},
		"TrimsWhitespace": {
			in:   "  hello  \n  world  ",
			want: []string{"hello", "world"},
		},
		"NoBreaks": {in: "single line", want: []string{"single line"}},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := SplitLines(test.in)

			assert.EqualValuesf(t, test.want, got, "SplitLines(%q)", test.in)
		})
	}
}

func TestWrapLineDoesNotWrapShortText(t *testing.T) {
	m := metrics.Default()

	got := WrapLine(m, "short", 1000, 16)

	assert.EqualValuesf(t, 1, len(got), "WrapLine(short) line count")
}

func TestWrapLineSplitsLongText(t *testing.T) {
	m := metrics.Default()

	got := WrapLine(m, "this is a rather long line that should be wrapped", 100, 16)

	assert.Truef(t, len(got) > 1, "expected wrapping, got %v", got)
}

func TestMeasureUsesBaselineFontSize(t *testing.T) {
	m := metrics.Default()
	cfg := config.Default()

	small := MeasureWithFontSize(m, "Label", 10, cfg, false)
	baseline := Measure(m, "Label", 10, cfg)

	assert.Truef(t, baseline.Width > small.Width, "Measure should size at the 16px baseline, not the smaller theme font")
}

func TestMeasureEmptyTextProducesOneBlankLine(t *testing.T) {
	m := metrics.Default()
	cfg := config.Default()

	got := Measure(m, "", 16, cfg)

	assert.EqualValuesf(t, []string{""}, got.Lines, "Measure(\"\").Lines")
}
