// Package label measures and wraps diagram labels into an [ir.TextBlock], the shared unit every
// sizing and placement decision downstream consumes. It is grounded on
// original_source/src/layout/text.rs's measure_label/split_lines/wrap_line trio: split on
// explicit line breaks first, then optionally greedy-wrap each resulting line to a
// character-budget-derived pixel width.
package label

import (
	"strings"

	"github.com/inkmesh/diagramlayout/config"
	"github.com/inkmesh/diagramlayout/ir"
	"github.com/inkmesh/diagramlayout/metrics"
)

// MeasureBaselineFontSize is the floor font size text is measured at regardless of the theme's
// configured size, matching text.rs's measure_label: diagram-renderer node sizing is calibrated
// against a 16px baseline even for smaller theme fonts.
const MeasureBaselineFontSize = 16.0

// Measure splits text on line breaks, greedily word-wraps each line to the configured
// character-width budget, and returns the resulting block sized at max(fontSize, 16).
func Measure(m metrics.Measurer, text string, fontSize float64, cfg config.Config) ir.TextBlock {
	if fontSize < MeasureBaselineFontSize {
		fontSize = MeasureBaselineFontSize
	}
	return MeasureWithFontSize(m, text, fontSize, cfg, true)
}

// MeasureWithFontSize measures text at exactly fontSize, optionally skipping word-wrap (used for
// labels that must stay on one line, e.g. axis tick labels).
func MeasureWithFontSize(m metrics.Measurer, text string, fontSize float64, cfg config.Config, wrap bool) ir.TextBlock {
	raw := SplitLines(text)
	maxWidth := maxLabelWidthPx(m, cfg.MaxLabelWidthChars, fontSize)

	var lines []string
	for _, line := range raw {
		if wrap {
			lines = append(lines, WrapLine(m, line, maxWidth, fontSize)...)
		} else {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		lines = []string{""}
	}

	maxLen := 0
	var maxWidthPx float64
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
		if w := m.TextWidth(line, fontSize); w > maxWidthPx {
			maxWidthPx = w
		}
	}
	avgChar := m.AverageCharWidth(fontSize)
	guardWidth := float64(maxLen) * avgChar
	width := maxWidthPx
	if guardWidth > width {
		width = guardWidth
	}
	height := float64(len(lines)) * fontSize * cfg.LabelLineHeight

	return ir.TextBlock{Lines: lines, Width: width, Height: height}
}

// SplitLines normalises <br>, <br/>, and \n escapes to real newlines, splits on them, and trims
// surrounding whitespace from each resulting line.
func SplitLines(text string) []string {
	s := strings.ReplaceAll(text, "<br/>", "\n")
	s = strings.ReplaceAll(s, "<br>", "\n")
	s = strings.ReplaceAll(s, `\n`, "\n")

	parts := strings.Split(s, "\n")
	lines := make([]string, len(parts))
	for i, p := range parts {
		lines[i] = strings.TrimSpace(p)
	}
	return lines
}

// WrapLine greedily packs whitespace-separated words of line into rows no wider than maxWidth,
// per text.rs's wrap_line. A single word wider than maxWidth is kept on its own line rather than
// being split mid-word.
func WrapLine(m metrics.Measurer, line string, maxWidth, fontSize float64) []string {
	if m.TextWidth(line, fontSize) <= maxWidth {
		return []string{line}
	}

	var lines []string
	var current string
	for _, word := range strings.Fields(line) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if m.TextWidth(candidate, fontSize) > maxWidth && current != "" {
			lines = append(lines, current)
			current = word
		} else {
			current = candidate
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

func maxLabelWidthPx(m metrics.Measurer, maxChars int, fontSize float64) float64 {
	if maxChars < 1 {
		maxChars = 1
	}
	return float64(maxChars) * m.AverageCharWidth(fontSize)
}
