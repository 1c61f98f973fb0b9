package layout

import (
	"sort"

	"github.com/inkmesh/diagramlayout/config"
	"github.com/inkmesh/diagramlayout/internal/geom"
	"github.com/inkmesh/diagramlayout/ir"
	"github.com/inkmesh/diagramlayout/label"
	"github.com/inkmesh/diagramlayout/metrics"
)

// computeSankey ranks nodes by longest path from sources, scales node heights to their max
// in/out total, and iteratively settles each rank's node y to the minimum incoming link top,
// grounded on original_source/src/layout/sankey.rs.
func computeSankey(g *ir.Graph, theme config.Theme, cfg config.Config, m metrics.Measurer) ir.Layout {
	sc := cfg.Sankey
	nodeIDs := g.NodeIDsInOrder()
	n := len(nodeIDs)
	idx := make(map[string]int, n)
	for i, id := range nodeIDs {
		idx[id] = i
	}

	var payload ir.SankeyPayload
	if g.Sankey != nil {
		payload = *g.Sankey
	}

	type linkData struct {
		from, to int
		value    float64
	}
	var links []linkData
	incoming := make([][]int, n)
	outgoing := make([][]int, n)
	indegree := make([]int, n)
	inTotal := make([]float64, n)
	outTotal := make([]float64, n)

	for _, l := range payload.Links {
		fi, ok1 := idx[l.Source]
		ti, ok2 := idx[l.Target]
		if !ok1 || !ok2 {
			continue
		}
		value := maxf(l.Value, 0)
		li := len(links)
		links = append(links, linkData{from: fi, to: ti, value: value})
		outgoing[fi] = append(outgoing[fi], li)
		incoming[ti] = append(incoming[ti], li)
		indegree[ti]++
		outTotal[fi] += value
		inTotal[ti] += value
	}

	ranks := make([]int, n)
	indegreeWork := append([]int{}, indegree...)
	var queue []int
	for i, d := range indegreeWork {
		if d == 0 {
			queue = append(queue, i)
		}
	}
	var topo []int
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		topo = append(topo, node)
		for _, li := range outgoing[node] {
			to := links[li].to
			if indegreeWork[to] > 0 {
				indegreeWork[to]--
				if indegreeWork[to] == 0 {
					queue = append(queue, to)
				}
			}
		}
	}
	if len(topo) == n {
		for _, node := range topo {
			for _, li := range outgoing[node] {
				to := links[li].to
				if ranks[to] < ranks[node]+1 {
					ranks[to] = ranks[node] + 1
				}
			}
		}
	}

	maxRank := 0
	for _, r := range ranks {
		if r > maxRank {
			maxRank = r
		}
	}
	numRanks := maxRank + 1
	gapX := 0.0
	if numRanks > 1 {
		gapX = maxf((sc.Width-sc.NodeWidth*float64(numRanks))/float64(numRanks-1), 0)
	}

	totals := make([]float64, n)
	maxTotal := 1.0
	for i := 0; i < n; i++ {
		t := maxf(inTotal[i], outTotal[i])
		if t <= 0 {
			t = 1
		}
		totals[i] = t
		maxTotal = maxf(maxTotal, t)
	}
	scale := sc.Height / maxTotal

	nodeX := make([]float64, n)
	nodeY := make([]float64, n)
	nodeH := make([]float64, n)
	for i := 0; i < n; i++ {
		nodeX[i] = float64(ranks[i]) * (sc.NodeWidth + gapX)
		nodeH[i] = totals[i] * scale
	}

	rankNodes := make([][]int, numRanks)
	for i := 0; i < n; i++ {
		rankNodes[ranks[i]] = append(rankNodes[ranks[i]], i)
	}
	for _, rn := range rankNodes {
		sort.Slice(rn, func(a, b int) bool { return nodeIDs[rn[a]] < nodeIDs[rn[b]] })
	}

	outboundOrder := make([][]int, n)
	for i, edges := range outgoing {
		edges2 := append([]int{}, edges...)
		sort.Slice(edges2, func(a, b int) bool {
			ta, tb := links[edges2[a]].to, links[edges2[b]].to
			if ranks[ta] != ranks[tb] {
				return ranks[ta] > ranks[tb]
			}
			return nodeIDs[ta] < nodeIDs[tb]
		})
		outboundOrder[i] = edges2
	}

	edgeThickness := make([]float64, len(links))
	for i, l := range links {
		edgeThickness[i] = l.value * scale
	}

	linkTop := make([]float64, len(links))
	outboundOffset := make([]float64, len(links))
	computeLinkTops := func(positions []float64) {
		acc := make([]float64, n)
		for source := 0; source < n; source++ {
			for _, li := range outboundOrder[source] {
				off := acc[source]
				outboundOffset[li] = off
				linkTop[li] = positions[source] + off
				acc[source] += edgeThickness[li]
			}
		}
	}

	for rank := 1; rank <= maxRank; rank++ {
		computeLinkTops(nodeY)
		for _, node := range rankNodes[rank] {
			found := false
			minV := 0.0
			for _, li := range incoming[node] {
				if ranks[links[li].from] >= rank {
					continue
				}
				if !found || linkTop[li] < minV {
					minV = linkTop[li]
					found = true
				}
			}
			if !found {
				continue
			}
			maxY := maxf(sc.Height-nodeH[node], 0)
			nodeY[node] = geom.Clamp(minV, 0, maxY)
		}
	}
	computeLinkTops(nodeY)

	nodes := make(map[string]*ir.NodeLayout, n)
	sankeyNodes := make([]ir.SankeyNodeLayout, 0, n)
	for i, id := range nodeIDs {
		src := g.Nodes[id]
		var block ir.TextBlock
		if src != nil {
			block = labelBlockOrID(m, src.Label, id, theme, cfg)
		}
		nodes[id] = &ir.NodeLayout{
			ID:             id,
			X:              nodeX[i],
			Y:              nodeY[i],
			Width:          sc.NodeWidth,
			Height:         nodeH[i],
			Label:          block,
			Shape:          ir.ShapeRectangle,
			AnchorSubgraph: -1,
		}
		sankeyNodes = append(sankeyNodes, ir.SankeyNodeLayout{
			ID: id, X: nodeX[i], Y: nodeY[i], Width: sc.NodeWidth, Height: nodeH[i],
		})
	}

	edgesOut := make([]*ir.EdgeLayout, 0, len(links))
	sankeyLinks := make([]ir.SankeyLinkLayout, 0, len(links))
	for i, l := range links {
		thickness := edgeThickness[i]
		if thickness <= 0 {
			continue
		}
		fromID, toID := nodeIDs[l.from], nodeIDs[l.to]
		startX := nodeX[l.from] + sc.NodeWidth
		endX := nodeX[l.to]
		startY := nodeY[l.from] + outboundOffset[i] + thickness/2
		inboundOffset := maxf(linkTop[i]-nodeY[l.to], 0)
		endY := nodeY[l.to] + inboundOffset + thickness/2

		edgesOut = append(edgesOut, &ir.EdgeLayout{
			From:   fromID,
			To:     toID,
			Points: []ir.Point{{X: startX, Y: startY}, {X: endX, Y: endY}},
		})
		sankeyLinks = append(sankeyLinks, ir.SankeyLinkLayout{
			Source: fromID, Target: toID, SourceY: startY, TargetY: endY, Thickness: thickness,
		})
	}

	return ir.Layout{
		Kind:   g.Kind,
		Width:  sc.Width,
		Height: sc.Height,
		Nodes:  nodes,
		Edges:  edgesOut,
		Sankey: &ir.SankeyLayout{Nodes: sankeyNodes, Links: sankeyLinks},
	}
}

func labelBlockOrID(m metrics.Measurer, text, id string, theme config.Theme, cfg config.Config) ir.TextBlock {
	if text == "" {
		text = id
	}
	fontSize := theme.FontSize
	if fontSize <= 0 {
		fontSize = config.DefaultTheme().FontSize
	}
	return label.Measure(m, text, fontSize, cfg)
}
