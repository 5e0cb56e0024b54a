package chess

import "fmt"

// Board is the set of drawn segments on a lines×columns grid of boxes.
type Board struct {
	Lines   int
	Columns int
	Edges   map[Edge]struct{}
}

// NewBoard builds an empty board, optionally pre-drawn with the given
// segments. Each dimension must lie in [MinSize, MaxSize].
func NewBoard(lines, columns int, edges ...Edge) (Board, error) {
	if lines < MinSize || lines > MaxSize || columns < MinSize || columns > MaxSize {
		return Board{}, fmt.Errorf("%w: %dx%d", ErrInvalidConfiguration, lines, columns)
	}

	b := Board{
		Lines:   lines,
		Columns: columns,
		Edges:   make(map[Edge]struct{}),
	}
	for _, e := range edges {
		b.Edges[e] = struct{}{}
	}
	return b, nil
}

func (b Board) TotalBoxes() int {
	return b.Lines * b.Columns
}

// AllEdges lists every segment of the board in canonical order.
func (b Board) AllEdges() []Edge {
	return Edges(b.Lines, b.Columns)
}

// OnBoard reports whether e is one of the board's segments at all, drawn or
// not.
func (b Board) OnBoard(e Edge) bool {
	_, ok := geometryOf(b.Lines, b.Columns).edgeSet[e]
	return ok
}

func (b Board) Contains(e Edge) bool {
	_, ok := b.Edges[e]
	return ok
}

// Add marks a segment as drawn. Validation lives in Game.DrawEdge; Add never
// rejects.
func (b Board) Add(e Edge) {
	b.Edges[e] = struct{}{}
}

// InRange reports whether the box lies on the board.
func (b Board) InRange(box Box) bool {
	x := box.Line()
	y := box.Column()
	return x >= 0 && x < b.Lines && y >= 0 && y < b.Columns
}

// NearBoxes returns the one or two on-board boxes sharing the segment.
func (b Board) NearBoxes(e Edge) (boxes []Box) {
	for _, box := range e.NearBoxes() {
		if b.InRange(box) {
			boxes = append(boxes, box)
		}
	}
	return
}

func (b Board) EdgesCountInBox(box Box) (count int) {
	boxEdges := box.Edges()
	for _, e := range boxEdges {
		if b.Contains(e) {
			count++
		}
	}
	return
}

func (b Board) FreeEdgesCount() int {
	return len(b.AllEdges()) - len(b.Edges)
}

func (b Board) FreeEdges() (freeEdges []Edge) {
	for _, e := range b.AllEdges() {
		if !b.Contains(e) {
			freeEdges = append(freeEdges, e)
		}
	}
	return
}

// ObtainsBoxes returns the boxes that drawing e would close, i.e. the
// adjacent boxes already bounded on their three other sides. A drawn
// segment obtains nothing.
func (b Board) ObtainsBoxes(e Edge) (obtainsBoxes []Box) {
	if b.Contains(e) {
		return
	}

	for _, box := range b.NearBoxes(e) {
		if b.EdgesCountInBox(box) == 3 {
			obtainsBoxes = append(obtainsBoxes, box)
		}
	}
	return
}

// Clone deep-copies the drawn-segment set.
func (b Board) Clone() Board {
	edges := make(map[Edge]struct{}, len(b.Edges))
	for e := range b.Edges {
		edges[e] = struct{}{}
	}
	return Board{Lines: b.Lines, Columns: b.Columns, Edges: edges}
}
