package routing

import (
	"container/heap"

	"github.com/inkmesh/diagramlayout/ir"
)

// RoutingCellMin/Ratio ground the grid cell size formula max(0.35*nodeSpacing, 8), ported from
// ROUTING_CELL_RATIO/ROUTING_CELL_MIN.
const (
	RoutingCellRatio = 0.35
	RoutingCellMin   = 8.0
	// GridMarginMinSpacing grounds the margin formula 2*max(nodeSpacing, 24).
	GridMarginMinSpacing = 24.0
)

// CellSize returns the routing grid's cell size for a given node spacing.
func CellSize(nodeSpacing float64) float64 {
	c := nodeSpacing * RoutingCellRatio
	if c < RoutingCellMin {
		c = RoutingCellMin
	}
	return c
}

// GridMargin returns the routing grid's margin around the obstacle bounding box.
func GridMargin(nodeSpacing float64) float64 {
	s := nodeSpacing
	if s < GridMarginMinSpacing {
		s = GridMarginMinSpacing
	}
	return 2 * s
}

// Grid is a uniform occupancy grid over a bounding rectangle, used by the A* fallback router.
type Grid struct {
	originX, originY float64
	cell             float64
	cols, rows       int
	blocked          []bool
	weight           []float64
}

// NewGrid builds a grid covering [minX-margin, maxX+margin] x [minY-margin, maxY+margin] at the
// given cell size, blocking any cell whose center falls inside an obstacle (the edge's own
// endpoints excluded by the caller beforehand), bounded by maxCells total cells.
func NewGrid(minX, minY, maxX, maxY, cell, margin float64, obstacles []Obstacle, maxCells int) *Grid {
	ox, oy := minX-margin, minY-margin
	cols := int((maxX + margin - ox) / cell) + 1
	rows := int((maxY + margin - oy) / cell) + 1
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if maxCells > 0 {
		for cols*rows > maxCells && cell > 0 {
			cell *= 1.25
			cols = int((maxX+margin-ox)/cell) + 1
			rows = int((maxY+margin-oy)/cell) + 1
		}
	}

	g := &Grid{originX: ox, originY: oy, cell: cell, cols: cols, rows: rows}
	g.blocked = make([]bool, cols*rows)
	g.weight = make([]float64, cols*rows)

	for iy := 0; iy < rows; iy++ {
		for ix := 0; ix < cols; ix++ {
			cx := ox + (float64(ix)+0.5)*cell
			cy := oy + (float64(iy)+0.5)*cell
			for _, obs := range obstacles {
				if cx > obs.X && cx < obs.X+obs.Width && cy > obs.Y && cy < obs.Y+obs.Height {
					g.blocked[g.index(ix, iy)] = true
					break
				}
			}
		}
	}
	return g
}

// AddOccupancy increases a cell's occupancy weight, applied as an A* cost surcharge so later
// edges prefer channels not already heavily used.
func (g *Grid) AddOccupancy(p ir.Point, w float64) {
	ix, iy := g.cellOf(p)
	if ix < 0 || iy < 0 {
		return
	}
	g.weight[g.index(ix, iy)] += w
}

func (g *Grid) index(ix, iy int) int { return iy*g.cols + ix }

func (g *Grid) cellOf(p ir.Point) (int, int) {
	ix := int((p.X - g.originX) / g.cell)
	iy := int((p.Y - g.originY) / g.cell)
	if ix < 0 || ix >= g.cols || iy < 0 || iy >= g.rows {
		return -1, -1
	}
	return ix, iy
}

func (g *Grid) cellCenter(ix, iy int) ir.Point {
	return ir.Point{X: g.originX + (float64(ix)+0.5)*g.cell, Y: g.originY + (float64(iy)+0.5)*g.cell}
}

type direction int

const (
	dirNone direction = iota
	dirUp
	dirDown
	dirLeft
	dirRight
)

type astarNode struct {
	ix, iy int
	dir    direction
}

type heapItem struct {
	node     astarNode
	priority float64
	index    int
}

type priorityQueue []*heapItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].priority < pq[j].priority }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i]; pq[i].index, pq[j].index = i, j }
func (pq *priorityQueue) Push(x interface{}) { item := x.(*heapItem); item.index = len(*pq); *pq = append(*pq, item) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// AStarCostScale integer-scales fractional cell costs the way the original engine does for a u32
// priority queue; Go's float64 priority queue has no such constraint, but the scale is kept so
// TurnPenalty/OccupancyWeight read the same as routing.rs's ASTAR_COST_SCALE-relative constants.
const AStarCostScale = 1000.0

// FindPath runs a 4-connected A* search from start to goal over the grid, with a fixed per-step
// cost of cell size, a turn penalty charged whenever the direction changes, and an occupancy
// surcharge added per cell traversed. It returns nil if no path is found within maxSteps expanded
// nodes (spec.md's bounded best-effort search, see DESIGN.md Open Question 1).
func (g *Grid) FindPath(start, goal ir.Point, turnPenalty, occupancyWeight float64, maxSteps int) []ir.Point {
	sx, sy := g.cellOf(start)
	gx, gy := g.cellOf(goal)
	if sx < 0 || gx < 0 {
		return nil
	}

	type key struct {
		ix, iy int
		dir    direction
	}
	gScore := map[key]float64{{sx, sy, dirNone}: 0}
	cameFrom := map[key]key{}
	startKey := key{sx, sy, dirNone}

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &heapItem{node: astarNode{ix: sx, iy: sy, dir: dirNone}, priority: heuristic(sx, sy, gx, gy, g.cell)})

	steps := 0
	var foundKey key
	found := false

	for pq.Len() > 0 && steps < maxSteps {
		steps++
		cur := heap.Pop(pq).(*heapItem).node
		ck := key{cur.ix, cur.iy, cur.dir}
		if cur.ix == gx && cur.iy == gy {
			foundKey = ck
			found = true
			break
		}

		for _, d := range []direction{dirUp, dirDown, dirLeft, dirRight} {
			nx, ny := step(cur.ix, cur.iy, d)
			if nx < 0 || nx >= g.cols || ny < 0 || ny >= g.rows {
				continue
			}
			if g.blocked[g.index(nx, ny)] {
				continue
			}
			cost := g.cell + occupancyWeight*g.weight[g.index(nx, ny)]
			if cur.dir != dirNone && cur.dir != d {
				cost += turnPenalty * g.cell
			}
			nk := key{nx, ny, d}
			tentative := gScore[ck] + cost
			if existing, ok := gScore[nk]; !ok || tentative < existing {
				gScore[nk] = tentative
				cameFrom[nk] = ck
				heap.Push(pq, &heapItem{
					node:     astarNode{ix: nx, iy: ny, dir: d},
					priority: tentative + heuristic(nx, ny, gx, gy, g.cell),
				})
			}
		}
	}

	if !found {
		return nil
	}

	var cells []astarNode
	k := foundKey
	for {
		cells = append([]astarNode{{ix: k.ix, iy: k.iy, dir: k.dir}}, cells...)
		prev, ok := cameFrom[k]
		if !ok {
			break
		}
		k = prev
	}

	pts := make([]ir.Point, 0, len(cells)+2)
	pts = append(pts, start)
	for _, c := range cells {
		pts = append(pts, g.cellCenter(c.ix, c.iy))
	}
	pts = append(pts, goal)
	return dedupe(pts)
}

func heuristic(x1, y1, x2, y2 int, cell float64) float64 {
	dx, dy := x1-x2, y1-y2
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return float64(dx+dy) * cell
}

func step(ix, iy int, d direction) (int, int) {
	switch d {
	case dirUp:
		return ix, iy - 1
	case dirDown:
		return ix, iy + 1
	case dirLeft:
		return ix - 1, iy
	default:
		return ix + 1, iy
	}
}
