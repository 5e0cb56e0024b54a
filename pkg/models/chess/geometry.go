package chess

import "sync"

// MinSize and MaxSize bound the number of boxes per board side; a board of
// MaxSize boxes has 8 dots per side, the most the dot packing allows the
// original game to render.
const (
	MinSize = 1
	MaxSize = 7
)

type dims struct {
	lines   int
	columns int
}

type geometry struct {
	dots    []Dot
	edges   []Edge
	edgeSet map[Edge]struct{}
	boxes   []Box
}

var geometryCache sync.Map // dims -> *geometry

func geometryOf(lines, columns int) *geometry {
	key := dims{lines: lines, columns: columns}
	if cached, ok := geometryCache.Load(key); ok {
		return cached.(*geometry)
	}

	g := &geometry{edgeSet: make(map[Edge]struct{})}
	for i := 0; i <= lines; i++ {
		for j := 0; j <= columns; j++ {
			d := NewDot(i, j)
			g.dots = append(g.dots, d)
			if i < lines {
				g.edges = append(g.edges, NewEdge(d, NewDot(i+1, j)))
			}
			if j < columns {
				g.edges = append(g.edges, NewEdge(d, NewDot(i, j+1)))
			}
			if i < lines && j < columns {
				g.boxes = append(g.boxes, Box(d))
			}
		}
	}
	for _, e := range g.edges {
		g.edgeSet[e] = struct{}{}
	}

	cached, _ := geometryCache.LoadOrStore(key, g)
	return cached.(*geometry)
}

// Dots enumerates the dot lattice of a lines×columns board.
func Dots(lines, columns int) []Dot {
	return geometryOf(lines, columns).dots
}

// Edges enumerates every drawable segment of a lines×columns board. The
// order is canonical: move generation and search tie-breaking both follow
// it.
func Edges(lines, columns int) []Edge {
	return geometryOf(lines, columns).edges
}

// Boxes enumerates the boxes of a lines×columns board.
func Boxes(lines, columns int) []Box {
	return geometryOf(lines, columns).boxes
}
