package rank

import "sort"

// Layers groups node ids by rank, in ascending rank order; Layers[r] is rank r's node ids in
// their current cross-axis order.
type Layers [][]string

// InitialOrder buckets nodeIDs by rank, preserving nodeIDs' own relative order within each rank
// as the starting point for barycenter sweeps (declaration order is a reasonable, deterministic
// seed ordering).
func InitialOrder(nodeIDs []string, rank map[string]int) Layers {
	maxRank := 0
	for _, id := range nodeIDs {
		if r := rank[id]; r > maxRank {
			maxRank = r
		}
	}
	layers := make(Layers, maxRank+1)
	for _, id := range nodeIDs {
		r := rank[id]
		layers[r] = append(layers[r], id)
	}
	return layers
}

// Order runs `passes` alternating down-sweep/up-sweep barycenter orderings over layers using
// edges to compute each node's neighbour positions, per spec.md's "barycenter-based
// crossing-minimization ordering with alternating sweeps" (config.Flowchart.OrderingPasses,
// default 4). It mutates and returns layers.
func Order(layers Layers, edges []Edge, passes int) Layers {
	if passes < 1 {
		passes = 1
	}
	pos := indexPositions(layers)

	down := neighborsByTarget(edges)
	up := neighborsBySource(edges)

	for p := 0; p < passes; p++ {
		if p%2 == 0 {
			sweep(layers, pos, down, true)
		} else {
			sweep(layers, pos, up, false)
		}
	}
	return layers
}

// sweep reorders every rank (from rank 1 upward if forward, from the second-to-last rank downward
// otherwise) by the barycenter of each node's neighbours in the adjacent, already-fixed rank.
func sweep(layers Layers, pos map[string]int, neighbors map[string][]string, forward bool) {
	n := len(layers)
	if forward {
		for r := 1; r < n; r++ {
			reorderRank(layers, r, pos, neighbors)
		}
	} else {
		for r := n - 2; r >= 0; r-- {
			reorderRank(layers, r, pos, neighbors)
		}
	}
}

func reorderRank(layers Layers, r int, pos map[string]int, neighbors map[string][]string) {
	type scored struct {
		id    string
		value float64
		has   bool
	}
	row := layers[r]
	scoredRow := make([]scored, len(row))
	for i, id := range row {
		ns := neighbors[id]
		if len(ns) == 0 {
			scoredRow[i] = scored{id: id, has: false}
			continue
		}
		sum := 0
		for _, nb := range ns {
			sum += pos[nb]
		}
		scoredRow[i] = scored{id: id, value: float64(sum) / float64(len(ns)), has: true}
	}

	// Stable sort by barycenter value; nodes with no neighbours keep their current relative
	// position (sort.SliceStable with equal-ish keys preserves original order for ties).
	orig := make(map[string]int, len(row))
	for i, id := range row {
		orig[id] = i
	}
	sort.SliceStable(scoredRow, func(i, j int) bool {
		a, b := scoredRow[i], scoredRow[j]
		if !a.has && !b.has {
			return orig[a.id] < orig[b.id]
		}
		if !a.has {
			return false
		}
		if !b.has {
			return true
		}
		return a.value < b.value
	})

	for i, s := range scoredRow {
		row[i] = s.id
		pos[s.id] = i
	}
}

func indexPositions(layers Layers) map[string]int {
	pos := make(map[string]int)
	for _, row := range layers {
		for i, id := range row {
			pos[id] = i
		}
	}
	return pos
}

func neighborsByTarget(edges []Edge) map[string][]string {
	m := make(map[string][]string)
	for _, e := range edges {
		m[e.To] = append(m[e.To], e.From)
	}
	return m
}

func neighborsBySource(edges []Edge) map[string][]string {
	m := make(map[string][]string)
	for _, e := range edges {
		m[e.From] = append(m[e.From], e.To)
	}
	return m
}
