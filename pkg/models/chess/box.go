package chess

import "fmt"

// Direction names one side of a box.
type Direction int8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Box is one cell of the grid, identified by its upper-left dot.
type Box Dot

func (b Box) Line() int {
	return Dot(b).X()
}

func (b Box) Column() int {
	return Dot(b).Y()
}

func (b Box) String() string {
	return fmt.Sprintf("[%d, %d]", b.Line(), b.Column())
}

func (b Box) Dots() [4]Dot {
	x := Dot(b).X()
	y := Dot(b).Y()

	return [...]Dot{
		NewDot(x, y),
		NewDot(x+1, y),
		NewDot(x, y+1),
		NewDot(x+1, y+1),
	}
}

// Edge returns the segment bounding the given side of the box.
func (b Box) Edge(dir Direction) Edge {
	x := Dot(b).X()
	y := Dot(b).Y()

	switch dir {
	case Up:
		return NewEdge(NewDot(x, y), NewDot(x, y+1))
	case Right:
		return NewEdge(NewDot(x, y+1), NewDot(x+1, y+1))
	case Down:
		return NewEdge(NewDot(x+1, y), NewDot(x+1, y+1))
	default:
		return NewEdge(NewDot(x, y), NewDot(x+1, y))
	}
}

func (b Box) Edges() [4]Edge {
	return [...]Edge{
		b.Edge(Up),
		b.Edge(Right),
		b.Edge(Down),
		b.Edge(Left),
	}
}
