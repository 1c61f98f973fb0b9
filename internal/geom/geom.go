// Package geom provides the small set of 2D geometry helpers shared by node sizing, edge routing,
// and label placement: rectangle overlap/containment, inflation, and clamping.
package geom

import "math"

// Point is an (x, y) coordinate in unitless pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle with (X, Y) as its top-left corner.
type Rect struct {
	X, Y, Width, Height float64
}

// Right returns the rectangle's right edge coordinate.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the rectangle's bottom edge coordinate.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX returns the rectangle's horizontal center.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the rectangle's vertical center.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Center returns the rectangle's center point.
func (r Rect) Center() Point { return Point{X: r.CenterX(), Y: r.CenterY()} }

// Inflate returns r expanded by dx on each horizontal side and dy on each vertical side. Negative
// values shrink the rectangle.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{
		X:      r.X - dx,
		Y:      r.Y - dy,
		Width:  r.Width + 2*dx,
		Height: r.Height + 2*dy,
	}
}

// Contains reports whether p lies within r, inclusive of the boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Intersects reports whether r and other overlap by any positive area.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// OverlapArea returns the area of intersection between r and other, or 0 if they don't overlap.
func (r Rect) OverlapArea(other Rect) float64 {
	w := math.Min(r.Right(), other.Right()) - math.Max(r.X, other.X)
	h := math.Min(r.Bottom(), other.Bottom()) - math.Max(r.Y, other.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	x0 := math.Min(r.X, other.X)
	y0 := math.Min(r.Y, other.Y)
	x1 := math.Max(r.Right(), other.Right())
	y1 := math.Max(r.Bottom(), other.Bottom())
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Clamp returns v restricted to [lo, hi]. If lo > hi, lo is returned.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Hypot(dx, dy)
}

// Lerp linearly interpolates between a and b at parameter t (0 returns a, 1 returns b).
func Lerp(a, b Point, t float64) Point {
	return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}
