package rank

import (
	"testing"

	"github.com/teleivo/assertive/assert"
)

func TestAssignRanksLinearChain(t *testing.T) {
	nodes := []string{"a", "b", "c"}
	edges := []Edge{{From: "a", To: "b"}, {From: "b", To: "c"}}

	got := AssignRanks(nodes, edges)

	assert.EqualValuesf(t, 0, got["a"], "rank of a")
	assert.EqualValuesf(t, 1, got["b"], "rank of b")
	assert.EqualValuesf(t, 2, got["c"], "rank of c")
}

func TestAssignRanksIgnoresCycleBackEdge(t *testing.T) {
	nodes := []string{"a", "b", "c"}
	edges := []Edge{{From: "a", To: "b"}, {From: "b", To: "c"}, {From: "c", To: "a"}}

	got := AssignRanks(nodes, edges)

	assert.EqualValuesf(t, 0, got["a"], "rank of a despite the c->a back-edge")
	assert.EqualValuesf(t, 1, got["b"], "rank of b")
	assert.EqualValuesf(t, 2, got["c"], "rank of c")
}

func TestAssignRanksDiamond(t *testing.T) {
	nodes := []string{"a", "b", "c", "d"}
	edges := []Edge{
		{From: "a", To: "b"}, {From: "a", To: "c"},
		{From: "b", To: "d"}, {From: "c", To: "d"},
	}

	got := AssignRanks(nodes, edges)

	assert.EqualValuesf(t, 0, got["a"], "rank of a")
	assert.EqualValuesf(t, 1, got["b"], "rank of b")
	assert.EqualValuesf(t, 1, got["c"], "rank of c")
	assert.EqualValuesf(t, 2, got["d"], "rank of d")
}

func TestInsertDummiesSpansOneRank(t *testing.T) {
	rank := map[string]int{"a": 0, "b": 1, "c": 2}
	edges := []Edge{{From: "a", To: "c"}}

	expanded, dummyRank, chains := InsertDummies(edges, rank)

	assert.EqualValuesf(t, 2, len(expanded), "a->c spanning 2 ranks should expand into 2 hops")
	assert.EqualValuesf(t, 1, len(chains[0].DummyIDs), "one dummy node should bridge rank 1")
	for _, e := range expanded {
		lo, hi := rankOf(rank, dummyRank, e.From), rankOf(rank, dummyRank, e.To)
		assert.Truef(t, abs(hi-lo) == 1, "expanded edge %v->%v should span exactly one rank, got %d->%d", e.From, e.To, lo, hi)
	}
}

func TestInsertDummiesLeavesSingleRankEdgesAlone(t *testing.T) {
	rank := map[string]int{"a": 0, "b": 1}
	edges := []Edge{{From: "a", To: "b"}}

	expanded, _, chains := InsertDummies(edges, rank)

	assert.EqualValuesf(t, 1, len(expanded), "single-rank edge should pass through unchanged")
	assert.EqualValuesf(t, 0, len(chains[0].DummyIDs), "no dummies expected")
}

func TestOrderPreservesLayerMembership(t *testing.T) {
	rank := map[string]int{"a": 0, "b": 0, "c": 1, "d": 1}
	layers := InitialOrder([]string{"a", "b", "c", "d"}, rank)
	edges := []Edge{{From: "a", To: "d"}, {From: "b", To: "c"}}

	got := Order(layers, edges, 4)

	assert.EqualValuesf(t, 2, len(got[0]), "rank 0 should still have 2 nodes")
	assert.EqualValuesf(t, 2, len(got[1]), "rank 1 should still have 2 nodes")
}

func TestAssignCoordinatesSeparatesRanks(t *testing.T) {
	layers := Layers{{"a"}, {"b"}}
	size := map[string]Size{"a": {Main: 10, Cross: 10}, "b": {Main: 10, Cross: 10}}

	coords := AssignCoordinates(layers, size, 20, 30)

	assert.Truef(t, coords["b"].Main > coords["a"].Main, "rank 1 should be offset past rank 0 plus spacing")
}

func rankOf(rank, dummyRank map[string]int, id string) int {
	if r, ok := rank[id]; ok {
		return r
	}
	return dummyRank[id]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
