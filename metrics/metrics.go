// Package metrics measures text width and height for label layout. It is the leaf dependency of
// the whole engine (spec.md §2): every node-sizing and label-placement decision starts from a
// [Measurer] call. The default implementation is an ASCII fast path calibrated against real
// diagram-renderer output at a 16px baseline; there is no font-shaping dependency in this pack,
// so non-ASCII text falls back to the same per-rune table rather than failing closed.
package metrics

import "unicode/utf8"

// Measurer measures the rendered pixel width of a string at a given font size. Implementations
// must be safe for concurrent use; [Default] is stateless and trivially is.
type Measurer interface {
	TextWidth(text string, fontSize float64) float64
	AverageCharWidth(fontSize float64) float64
}

// Default returns the ASCII fast-path Measurer used whenever config.FastTextMetrics is set (the
// default). It never returns an error: unmeasurable runes fall back to the table's default
// factor rather than failing, since this pack carries no font-shaping library to consult
// instead.
func Default() Measurer {
	return asciiMeasurer{}
}

type asciiMeasurer struct{}

// TextWidth sums charWidthFactor(r)*fontSize over every rune of text, the fast path described in
// text.rs's fallback_text_width.
func (asciiMeasurer) TextWidth(text string, fontSize float64) float64 {
	var w float64
	for _, r := range text {
		w += charWidthFactor(r)
	}
	return w * fontSize
}

// AverageCharWidth returns fontSize*0.56, the fast-path constant used for label-width-budget and
// guard-width calculations (text.rs's average_char_width fast branch).
func (asciiMeasurer) AverageCharWidth(fontSize float64) float64 {
	return fontSize * 0.56
}

// charWidthFactor returns the calibrated width factor for one rune, relative to font size,
// ported verbatim from the fast-path character table. Runes outside the table (including
// multi-byte runes this pack has no shaping data for) use the 0.568 default factor.
func charWidthFactor(r rune) float64 {
	if !utf8.ValidRune(r) {
		return 0.568
	}
	switch r {
	case ' ':
		return 0.306
	case '\\', '.', ',', ':', ';', '|', '!', '(', ')', '[', ']', '{', '}':
		return 0.321
	case 'A':
		return 0.652
	case 'B':
		return 0.648
	case 'C':
		return 0.734
	case 'D':
		return 0.723
	case 'E':
		return 0.594
	case 'F':
		return 0.575
	case 'G', 'H':
		return 0.742
	case 'I':
		return 0.272
	case 'J':
		return 0.557
	case 'K':
		return 0.648
	case 'L':
		return 0.559
	case 'M':
		return 0.903
	case 'N':
		return 0.763
	case 'O':
		return 0.754
	case 'P':
		return 0.623
	case 'Q':
		return 0.755
	case 'R':
		return 0.637
	case 'S':
		return 0.633
	case 'T':
		return 0.599
	case 'U':
		return 0.746
	case 'V':
		return 0.661
	case 'W':
		return 0.958
	case 'X':
		return 0.655
	case 'Y':
		return 0.646
	case 'Z':
		return 0.621
	case 'a':
		return 0.550
	case 'b':
		return 0.603
	case 'c':
		return 0.547
	case 'd':
		return 0.609
	case 'e':
		return 0.570
	case 'f':
		return 0.340
	case 'g', 'h':
		return 0.600
	case 'i':
		return 0.235
	case 'j':
		return 0.227
	case 'k':
		return 0.522
	case 'l':
		return 0.239
	case 'm':
		return 0.867
	case 'n':
		return 0.585
	case 'o':
		return 0.574
	case 'p':
		return 0.595
	case 'q':
		return 0.585
	case 'r':
		return 0.364
	case 's':
		return 0.523
	case 't':
		return 0.305
	case 'u':
		return 0.585
	case 'v':
		return 0.545
	case 'w':
		return 0.811
	case 'x':
		return 0.538
	case 'y':
		return 0.556
	case 'z':
		return 0.550
	case '0':
		return 0.613
	case '1':
		return 0.396
	case '2':
		return 0.609
	case '3':
		return 0.597
	case '4':
		return 0.614
	case '5':
		return 0.586
	case '6':
		return 0.608
	case '7':
		return 0.559
	case '8':
		return 0.611
	case '9':
		return 0.595
	case '@', '#', '%', '&':
		return 0.946
	default:
		return 0.568
	}
}
