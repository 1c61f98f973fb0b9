package ir

import (
	"testing"

	"github.com/teleivo/assertive/assert"
)

func TestNodeIDsInOrderUsesDeclarationOrder(t *testing.T) {
	g := Graph{
		Nodes: map[string]*Node{
			"a": {ID: "a"},
			"b": {ID: "b"},
			"c": {ID: "c"},
		},
		NodeOrder: []string{"c", "a", "b"},
	}

	got := g.NodeIDsInOrder()

	assert.EqualValues(t, got, []string{"c", "a", "b"})
}

func TestNodeIDsInOrderFallsBackForMissingEntries(t *testing.T) {
	g := Graph{
		Nodes: map[string]*Node{
			"a": {ID: "a"},
			"b": {ID: "b"},
		},
		// NodeOrder is missing "b", defensively handled by appending any leftover ids.
		NodeOrder: []string{"a"},
	}

	got := g.NodeIDsInOrder()

	assert.EqualValues(t, len(got), 2)
	assert.EqualValues(t, got[0], "a")
}

func TestNodeIDsInOrderIgnoresOrderEntriesNotInNodes(t *testing.T) {
	g := Graph{
		Nodes: map[string]*Node{
			"a": {ID: "a"},
		},
		NodeOrder: []string{"a", "stale"},
	}

	got := g.NodeIDsInOrder()

	assert.EqualValues(t, got, []string{"a"})
}
