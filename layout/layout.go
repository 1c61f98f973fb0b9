// Package layout is the public entry point of the diagram layout engine: [Compute] is a pure
// function from a parsed diagram ([ir.Graph]) plus theme and configuration to absolute geometry
// ([ir.Layout]). It performs no I/O and never mutates its input.
package layout

import (
	"github.com/inkmesh/diagramlayout/config"
	engine "github.com/inkmesh/diagramlayout/internal/layout"
	"github.com/inkmesh/diagramlayout/ir"
)

// Compute lays out g using theme for text measurement and cfg for every spacing/threshold
// decision. Calling Compute twice with identical arguments returns byte-for-byte identical
// results (spec.md's determinism invariant): the engine carries no global or time-based state.
func Compute(g ir.Graph, theme config.Theme, cfg config.Config) ir.Layout {
	return engine.Compute(&g, theme, cfg)
}
