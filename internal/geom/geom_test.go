package geom

import (
	"testing"

	"github.com/teleivo/assertive/assert"
)

func TestRectIntersects(t *testing.T) {
	tests := map[string]struct {
		a, b Rect
		want bool
	}{
		"Overlapping":   {a: Rect{0, 0, 10, 10}, b: Rect{5, 5, 10, 10}, want: true},
		"Disjoint":      {a: Rect{0, 0, 10, 10}, b: Rect{20, 20, 10, 10}, want: false},
		"TouchingEdge":  {a: Rect{0, 0, 10, 10}, b: Rect{10, 0, 10, 10}, want: false},
		"FullyContains": {a: Rect{0, 0, 10, 10}, b: Rect{2, 2, 2, 2}, want: true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := test.a.Intersects(test.b)

			assert.EqualValuesf(t, test.want, got, "Rect(%v).Intersects(%v)", test.a, test.b)
		})
	}
}

func TestRectOverlapArea(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 10, Height: 10}

	got := a.OverlapArea(b)

	assert.EqualValuesf(t, 25.0, got, "OverlapArea")
}

func TestRectInflate(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 10, Height: 10}

	got := r.Inflate(5, 2)

	assert.EqualValuesf(t, Rect{X: 5, Y: 8, Width: 20, Height: 14}, got, "Inflate(5,2)")
}

func TestClamp(t *testing.T) {
	tests := map[string]struct {
		v, lo, hi float64
		want      float64
	}{
		"InRange":  {v: 5, lo: 0, hi: 10, want: 5},
		"BelowLow": {v: -5, lo: 0, hi: 10, want: 0},
		"AboveHigh": {v: 15, lo: 0, hi: 10, want: 10},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := Clamp(test.v, test.lo, test.hi)

			assert.EqualValuesf(t, test.want, got, "Clamp(%v,%v,%v)", test.v, test.lo, test.hi)
		})
	}
}

func TestUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 20, Y: 20, Width: 10, Height: 10}

	got := a.Union(b)

	assert.EqualValuesf(t, Rect{X: 0, Y: 0, Width: 30, Height: 30}, got, "Union")
}
