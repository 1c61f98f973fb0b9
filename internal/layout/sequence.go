package layout

import (
	"sort"

	"github.com/inkmesh/diagramlayout/config"
	"github.com/inkmesh/diagramlayout/ir"
	"github.com/inkmesh/diagramlayout/label"
	"github.com/inkmesh/diagramlayout/metrics"
)

// computeSequence lays participants out left to right as lifelines, stacks messages top to
// bottom at a fixed spacing, and derives frame/note/activation/box extents from the message
// index ranges they span, grounded on spec.md's sequence-diagram module description.
func computeSequence(g *ir.Graph, theme config.Theme, cfg config.Config, m metrics.Measurer) ir.Layout {
	fontSize := theme.FontSize
	if fontSize <= 0 {
		fontSize = config.DefaultTheme().FontSize
	}
	sc := cfg.Sequence

	var payload ir.SequencePayload
	if g.Sequence != nil {
		payload = *g.Sequence
	}

	n := len(payload.Participants)
	if n == 0 {
		return ir.Layout{Kind: g.Kind, Width: 16, Height: 16, Sequence: &ir.SequenceLayout{}}
	}
	partIdx := make(map[string]int, n)
	for i, p := range payload.Participants {
		partIdx[p] = i
	}

	blocks := make([]ir.TextBlock, n)
	widths := make([]float64, n)
	heights := make([]float64, n)
	for i, p := range payload.Participants {
		labelText := p
		if node, ok := g.Nodes[p]; ok && node.Label != "" {
			labelText = node.Label
		}
		b := measureSeqLabel(m, labelText, fontSize, cfg)
		blocks[i] = b
		widths[i] = maxf(sc.ActorMinWidth, b.Width+2*sc.ActorPaddingX*fontSize)
		heights[i] = maxf(sc.ActorMinHeight, b.Height+20)
	}

	lifelineX := make([]float64, n)
	cursor := 0.0
	for i := range payload.Participants {
		lifelineX[i] = cursor + widths[i]/2
		cursor += widths[i] + sc.LifelineGap
	}
	actorHeight := 0.0
	for _, h := range heights {
		actorHeight = maxf(actorHeight, h)
	}

	numMessages := len(g.Edges)
	startY := actorHeight + sc.MessageSpacing/2
	msgY := make([]float64, numMessages)
	for i := 0; i < numMessages; i++ {
		msgY[i] = startY + float64(i)*sc.MessageSpacing
	}
	endOfMessages := startY
	if numMessages > 0 {
		endOfMessages = msgY[numMessages-1] + sc.MessageSpacing/2
	}
	lineBottom := endOfMessages + actorHeight

	lifelines := make([]ir.LifelineLayout, 0, n)
	for i, p := range payload.Participants {
		lifelines = append(lifelines, ir.LifelineLayout{
			Participant: p,
			X:           lifelineX[i],
			ActorY:      0,
			ActorWidth:  widths[i],
			ActorHeight: heights[i],
			LineBottom:  lineBottom,
			Label:       blocks[i],
		})
	}

	xOf := func(p string) float64 {
		if i, ok := partIdx[p]; ok {
			return lifelineX[i]
		}
		return 0
	}
	yOfIndex := func(idx int) float64 {
		if idx < 0 {
			return startY - sc.MessageSpacing/2
		}
		if idx >= numMessages {
			return endOfMessages
		}
		return msgY[idx]
	}

	edgesOut := make([]*ir.EdgeLayout, 0, numMessages)
	for i, e := range g.Edges {
		y := msgY[i]
		fromX, toX := xOf(e.From), xOf(e.To)
		var pts []ir.Point
		if e.From == e.To {
			const loop = 40.0
			pts = []ir.Point{
				{X: fromX, Y: y},
				{X: fromX + loop, Y: y},
				{X: fromX + loop, Y: y + sc.MessageSpacing*0.4},
				{X: fromX, Y: y + sc.MessageSpacing*0.4},
			}
		} else {
			pts = []ir.Point{{X: fromX, Y: y}, {X: toX, Y: y}}
		}
		el := &ir.EdgeLayout{
			From: e.From, To: e.To, Points: pts,
			Directed: e.Directed, ArrowStart: e.ArrowStart, ArrowEnd: e.ArrowEnd,
			Decorations: e.Decorations, Style: e.Style, StyleOverride: e.StyleOverride,
		}
		if e.CenterLabel != "" {
			b := measureSeqLabel(m, e.CenterLabel, fontSize, cfg)
			midX := (fromX + toX) / 2
			el.CenterLabel = &ir.LabelAnchor{Text: b, X: midX - b.Width/2, Y: y - b.Height - sc.MessageBaselinePad}
		}
		edgesOut = append(edgesOut, el)
	}

	frameParticipantRange := func(start, end int) (float64, float64) {
		minX, maxX := lifelineX[0], lifelineX[0]
		first := true
		for i := start; i <= end && i < numMessages; i++ {
			if i < 0 {
				continue
			}
			e := g.Edges[i]
			for _, p := range []string{e.From, e.To} {
				x := xOf(p)
				if first {
					minX, maxX = x, x
					first = false
				}
				minX = minf(minX, x)
				maxX = maxf(maxX, x)
			}
		}
		if first {
			return lifelineX[0], lifelineX[0]
		}
		return minX, maxX
	}

	frames := make([]ir.SequenceFrameLayout, 0, len(payload.Frames))
	for _, f := range payload.Frames {
		minX, maxX := frameParticipantRange(f.Start, f.End)
		pad := sc.ActorMinWidth / 4
		x := minX - pad
		width := (maxX - minX) + 2*pad
		y := yOfIndex(f.Start) - sc.MessageSpacing/2 - sc.FrameTextHeight
		height := yOfIndex(f.End) - y + sc.MessageSpacing/2

		dividers := make([]float64, 0, len(f.SectionStarts))
		for _, idx := range f.SectionStarts {
			dividers = append(dividers, yOfIndex(idx)-sc.MessageSpacing/2)
		}
		frames = append(frames, ir.SequenceFrameLayout{
			Kind: f.Kind, Label: f.Label, X: x, Y: y, Width: width, Height: height,
			SectionDividers: dividers, SectionLabels: f.SectionLabels,
		})
	}

	notes := make([]ir.SequenceNoteLayout, 0, len(payload.Notes))
	for _, note := range payload.Notes {
		b := measureSeqLabel(m, note.Text, fontSize, cfg)
		y := yOfIndex(note.AtIndex) - sc.MessageSpacing/2 - b.Height - sc.NoteGapY
		width := b.Width + 16
		var x float64
		switch {
		case len(note.Participants) == 2:
			x0, x1 := xOf(note.Participants[0]), xOf(note.Participants[1])
			if x0 > x1 {
				x0, x1 = x1, x0
			}
			width = (x1 - x0) + 16
			x = (x0+x1)/2 - width/2
		case note.Position == "left of":
			x = xOf(note.Participants[0]) - width - 10
		case note.Position == "right of":
			x = xOf(note.Participants[0]) + 10
		default:
			x = xOf(note.Participants[0]) - width/2
		}
		notes = append(notes, ir.SequenceNoteLayout{Text: b, X: x, Y: y, Width: width, Height: b.Height + 12})
	}

	type openAct struct {
		act   ir.SequenceActivation
		depth int
	}
	activeByPart := map[string][]openAct{}
	activations := make([]ir.ActivationLayout, 0, len(payload.Activations))
	sorted := append([]ir.SequenceActivation{}, payload.Activations...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].StartIndex < sorted[j].StartIndex })
	for _, a := range sorted {
		// Drop activations of this participant that ended at or before this one starts, so depth
		// counts only the ones still open.
		var open []openAct
		for _, o := range activeByPart[a.Participant] {
			if o.act.EndIndex > a.StartIndex {
				open = append(open, o)
			}
		}
		depth := len(open)
		activeByPart[a.Participant] = append(open, openAct{act: a, depth: depth})

		x := xOf(a.Participant) - sc.ActivationWidth/2 + float64(depth)*sc.ActivationWidth*0.4
		y := yOfIndex(a.StartIndex)
		height := yOfIndex(a.EndIndex) - y
		activations = append(activations, ir.ActivationLayout{
			Participant: a.Participant, X: x, Y: y, Width: sc.ActivationWidth, Height: maxf(height, sc.ActivationWidth),
			Depth: depth,
		})
	}

	boxes := make([]ir.SequenceBoxLayout, 0, len(payload.Boxes))
	for _, b := range payload.Boxes {
		if len(b.Participants) == 0 {
			continue
		}
		minX, maxX := xOf(b.Participants[0]), xOf(b.Participants[0])
		for _, p := range b.Participants {
			x := xOf(p)
			minX = minf(minX, x)
			maxX = maxf(maxX, x)
		}
		boxes = append(boxes, ir.SequenceBoxLayout{
			Label: b.Label,
			X:     minX - sc.BoxPadding - sc.ActorMinWidth/2,
			Y:     -sc.BoxPadding,
			Width: (maxX - minX) + 2*sc.BoxPadding + sc.ActorMinWidth,
			Height: lineBottom + 2*sc.BoxPadding,
		})
	}

	var numbers []ir.NumberMarker
	if payload.Autonumber != nil {
		for i := range g.Edges {
			numbers = append(numbers, ir.NumberMarker{
				Number: *payload.Autonumber + i,
				X:      minf(xOf(g.Edges[i].From), xOf(g.Edges[i].To)) - 14,
				Y:      msgY[i],
			})
		}
	}

	width := cursor - sc.LifelineGap
	for _, b := range boxes {
		width = maxf(width, b.X+b.Width)
	}

	return ir.Layout{
		Kind:   g.Kind,
		Width:  width + 16,
		Height: lineBottom + 16,
		Sequence: &ir.SequenceLayout{
			Lifelines:   lifelines,
			Frames:      frames,
			Notes:       notes,
			Activations: activations,
			Numbers:     numbers,
			Boxes:       boxes,
			Footboxes:   true,
		},
		Edges: edgesOut,
	}
}

func measureSeqLabel(m metrics.Measurer, text string, fontSize float64, cfg config.Config) ir.TextBlock {
	return label.Measure(m, text, fontSize, cfg)
}
