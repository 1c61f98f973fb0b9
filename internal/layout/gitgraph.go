package layout

import (
	"sort"

	"github.com/inkmesh/diagramlayout/config"
	"github.com/inkmesh/diagramlayout/ir"
	"github.com/inkmesh/diagramlayout/metrics"
)

// computeGitGraph assigns one lane per branch (ordered by explicit Order, falling back to
// `index/10^digits(index)` so insertion order breaks ties the same way as an unordered branch
// declaration), steps commits sequentially along the main axis by CommitStep+LayoutOffset in
// declaration-sequence order, and routes parent->commit arrows as straight lines within a branch
// or an S-bend through a cross-axis midpoint when they cross lanes. Grounded on
// original_source/src/layout/gitgraph.rs, with the SVG arc/lane-collision-avoidance routing
// (gitgraph_arrow_path/find_lane) reduced to the single S-bend polyline gitArrowPath computes:
// the full implementation's recursive lane search exists to avoid overlapping curved SVG paths
// sharing a screen row, a rendering concern this IR's straight-segment GitArrowLayout does not
// have.
func computeGitGraph(g *ir.Graph, theme config.Theme, cfg config.Config, m metrics.Measurer) ir.Layout {
	gg := cfg.GitGraph

	var payload ir.GitGraphPayload
	if g.GitGraph != nil {
		payload = *g.GitGraph
	}
	branches := payload.Branches
	if len(branches) == 0 {
		branches = []ir.GitBranch{{Name: gg.MainBranchName}}
	}

	type branchEntry struct {
		branch ir.GitBranch
		order  float64
	}
	entries := make([]branchEntry, len(branches))
	for i, b := range branches {
		order := defaultBranchOrder(i)
		if b.Order != nil {
			order = float64(*b.Order)
		}
		entries[i] = branchEntry{branch: b, order: order}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].order < entries[j].order })

	laneOf := make(map[string]float64, len(entries))
	colorIdxOf := make(map[string]int, len(entries))
	branchLayouts := make([]ir.GitBranchLayout, 0, len(entries))
	for i, e := range entries {
		lane := float64(i) * gg.BranchSpacing
		laneOf[e.branch.Name] = lane
		colorIdxOf[e.branch.Name] = i
		branchLayouts = append(branchLayouts, ir.GitBranchLayout{Name: e.branch.Name, Lane: lane})
	}

	commits := append([]ir.GitCommit{}, payload.Commits...)
	sort.SliceStable(commits, func(i, j int) bool { return commits[i].Seq < commits[j].Seq })

	isVertical := g.Direction == ir.TopDown || g.Direction == ir.BottomTop
	reverse := g.Direction == ir.BottomTop || g.Direction == ir.RightLeft
	order := make([]ir.GitCommit, len(commits))
	copy(order, commits)
	if reverse {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}

	pos := 0.0
	step := gg.CommitStep + gg.LayoutOffset
	commitPos := make(map[string]ir.Point, len(order))
	commitLayouts := make([]ir.GitCommitLayout, 0, len(order))

	for _, c := range order {
		lane := laneOf[c.Branch]
		var x, y float64
		switch g.Direction {
		case ir.TopDown:
			x, y = lane, pos
		case ir.BottomTop:
			x, y = lane, -pos
		case ir.RightLeft:
			x, y = -pos, lane
		default: // LeftRight
			x, y = pos, lane
		}
		commitPos[c.ID] = ir.Point{X: x, Y: y}

		showLabel := gg.ShowCommitLabel && c.Type != ir.CommitCherryPick &&
			(c.Type != ir.CommitMerge || c.CustomID)
		var labelLayout *ir.GitCommitLabel
		if showLabel {
			labelLayout = &ir.GitCommitLabel{Text: c.ID, X: x, Y: y}
			if isVertical {
				labelLayout.X = x - gg.CommitRadius - 4
			} else {
				labelLayout.Y = y - gg.CommitRadius - 4
			}
		}

		var tags []ir.GitTagLayout
		for i, tag := range c.Tags {
			tx, ty := x, y
			offset := float64(i) * gg.TagSpacingY
			if isVertical {
				tx = x + gg.CommitRadius + 8
				ty = y - offset
			} else {
				tx = x
				ty = y - gg.CommitRadius - 8 - offset
			}
			tags = append(tags, ir.GitTagLayout{Text: tag, X: tx, Y: ty})
		}

		commitLayouts = append(commitLayouts, ir.GitCommitLayout{
			ID: c.ID, X: x, Y: y, Branch: c.Branch, Label: labelLayout, Tags: tags, Type: c.Type,
		})
		pos += step
	}

	arrows := make([]ir.GitArrowLayout, 0, len(commits))
	for _, c := range commits {
		for _, parentID := range c.Parents {
			p1, ok1 := commitPos[parentID]
			p2, ok2 := commitPos[c.ID]
			if !ok1 || !ok2 {
				continue
			}
			path := gitArrowPath(isVertical, p1, p2)
			arrows = append(arrows, ir.GitArrowLayout{
				From: parentID, To: c.ID, Points: path,
				Rerouted: len(path) > 2, ColorIdx: colorIdxOf[c.Branch],
			})
		}
	}

	minX, minY := 0.0, 0.0
	maxX, maxY := 1.0, 1.0
	first := true
	consider := func(x, y float64) {
		if first {
			minX, minY, maxX, maxY = x, y, x, y
			first = false
			return
		}
		minX, minY = minf(minX, x), minf(minY, y)
		maxX, maxY = maxf(maxX, x), maxf(maxY, y)
	}
	for _, b := range branchLayouts {
		if isVertical {
			consider(b.Lane, 0)
			consider(b.Lane, pos)
		} else {
			consider(0, b.Lane)
			consider(pos, b.Lane)
		}
	}
	for _, c := range commitLayouts {
		r := gg.CommitRadius
		if c.Type == ir.CommitMerge {
			r = gg.MergeRadius
		}
		consider(c.X-r, c.Y-r)
		consider(c.X+r, c.Y+r)
	}
	const diagramPadding = 30.0
	minX -= diagramPadding
	minY -= diagramPadding
	maxX += diagramPadding
	maxY += diagramPadding

	for i := range branchLayouts {
		if isVertical {
			branchLayouts[i].Lane -= minX
		} else {
			branchLayouts[i].Lane -= minY
		}
	}
	for i := range commitLayouts {
		commitLayouts[i].X -= minX
		commitLayouts[i].Y -= minY
		if commitLayouts[i].Label != nil {
			commitLayouts[i].Label.X -= minX
			commitLayouts[i].Label.Y -= minY
		}
		for j := range commitLayouts[i].Tags {
			commitLayouts[i].Tags[j].X -= minX
			commitLayouts[i].Tags[j].Y -= minY
		}
	}
	for i := range arrows {
		for j := range arrows[i].Points {
			arrows[i].Points[j].X -= minX
			arrows[i].Points[j].Y -= minY
		}
	}

	return ir.Layout{
		Kind:   g.Kind,
		Width:  maxf(maxX-minX, 1),
		Height: maxf(maxY-minY, 1),
		GitGraph: &ir.GitGraphLayout{
			Branches: branchLayouts,
			Commits:  commitLayouts,
			Arrows:   arrows,
		},
	}
}

// defaultBranchOrder ports gitgraph.rs's default_branch_order: branch 0 is 0, branch N gets
// N/10^digits(N) so insertion order sorts lexicographically-by-digit rather than numerically.
func defaultBranchOrder(index int) float64 {
	if index == 0 {
		return 0
	}
	denom := 1.0
	for v := index; v > 0; v /= 10 {
		denom *= 10
	}
	return float64(index) / denom
}

// gitArrowPath draws a straight line within one lane, or an S-bend through the midpoint of the
// main axis when the parent and commit sit in different lanes.
func gitArrowPath(isVertical bool, p1, p2 ir.Point) []ir.Point {
	if isVertical {
		if p1.X == p2.X {
			return []ir.Point{p1, p2}
		}
		midY := (p1.Y + p2.Y) / 2
		return []ir.Point{p1, {X: p1.X, Y: midY}, {X: p2.X, Y: midY}, p2}
	}
	if p1.Y == p2.Y {
		return []ir.Point{p1, p2}
	}
	midX := (p1.X + p2.X) / 2
	return []ir.Point{p1, {X: midX, Y: p1.Y}, {X: midX, Y: p2.Y}, p2}
}
