// Package palette assigns stable, cyclic colours to diagram elements (pie slices, git branches,
// mindmap sections) from a small discrete set, built on top of go-gg/palette's continuous RGB
// gradient. Colours cycle by modulo: the 13th distinct key gets the same colour as the first.
package palette

import (
	"fmt"
	"image/color"

	gg "github.com/aclements/go-gg/palette"
)

// defaultStops are the 12 Mermaid-familiar hues spread evenly around the gradient; keys past the
// 12th reuse the colours of the first 12 in order.
var defaultStops = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
	{R: 0xe3, G: 0x77, B: 0xc2, A: 0xff},
	{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
	{R: 0xbc, G: 0xbd, B: 0x22, A: 0xff},
	{R: 0x17, G: 0xbe, B: 0xcf, A: 0xff},
	{R: 0xae, G: 0xc7, B: 0xe8, A: 0xff},
	{R: 0xff, G: 0xbb, B: 0x78, A: 0xff},
}

// Cycle assigns a colour to each distinct key on first sight and memoizes it, so the same key
// (a slice label, a branch name, a section index) always maps to the same colour within one
// Cycle's lifetime.
type Cycle struct {
	gradient gg.Continuous
	n        int
	assigned map[string]string
	order    []string
}

// NewCycle builds a Cycle over the default 12-hue gradient.
func NewCycle() *Cycle {
	return &Cycle{
		gradient: gg.RGBGradient{Colors: defaultStops},
		n:        len(defaultStops),
		assigned: make(map[string]string),
	}
}

// Color returns the hex colour for key, assigning the next unused slot around the gradient the
// first time key is seen.
func (c *Cycle) Color(key string) string {
	if hex, ok := c.assigned[key]; ok {
		return hex
	}
	idx := len(c.order)
	t := float64(idx%c.n) / float64(c.n)
	hex := toHex(c.gradient.Map(t))
	c.assigned[key] = hex
	c.order = append(c.order, key)
	return hex
}

// ColorAt returns the hex colour at a fixed cyclic index, ignoring memoization; used when the
// caller already has a stable integer index (e.g. a git branch's declared lane).
func ColorAt(idx int) string {
	n := len(defaultStops)
	i := ((idx % n) + n) % n
	return toHex(defaultStops[i])
}

func toHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
