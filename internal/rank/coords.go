package rank

// Size is a node's footprint along the main and cross axes, used to compute coordinates.
type Size struct {
	Main, Cross float64
}

// Coord is one node's final (main, cross) position, measured from the center of its box.
type Coord struct {
	Main, Cross float64
}

// AssignCoordinates lays out each rank along the main axis (rank 0 starts at 0, each subsequent
// rank offset by the previous rank's max main-axis extent plus rankSpacing) and packs each rank's
// nodes along the cross axis left-to-right in their ordered sequence, separated by nodeSpacing,
// centered as a group around cross-axis 0.
func AssignCoordinates(layers Layers, size map[string]Size, nodeSpacing, rankSpacing float64) map[string]Coord {
	coords := make(map[string]Coord)

	mainOffset := 0.0
	for _, row := range layers {
		rankMain := 0.0
		for _, id := range row {
			if s := size[id]; s.Main > rankMain {
				rankMain = s.Main
			}
		}

		totalCross := 0.0
		for i, id := range row {
			if i > 0 {
				totalCross += nodeSpacing
			}
			totalCross += size[id].Cross
		}

		cross := -totalCross / 2
		for _, id := range row {
			s := size[id]
			cross += s.Cross / 2
			coords[id] = Coord{Main: mainOffset + rankMain/2, Cross: cross}
			cross += s.Cross/2 + nodeSpacing
		}

		mainOffset += rankMain + rankSpacing
	}

	return coords
}
