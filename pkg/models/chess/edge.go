package chess

import "fmt"

const (
	E        = D << 1
	edgeMod  = 1 << E
	edgeMask = edgeMod - 1
)

// Edge is a single drawable segment between two adjacent dots, packed into
// one int with the lower dot first so that every segment has exactly one
// representation.
type Edge int

func NewEdge(dot1, dot2 Dot) Edge {
	if dot1 > dot2 {
		dot1, dot2 = dot2, dot1
	}
	return Edge((dot1 << E) + dot2)
}

func (e Edge) Dot1() Dot {
	return Dot(e) >> E
}

func (e Edge) Dot2() Dot {
	return Dot(e) & edgeMask
}

// Horizontal reports whether the segment joins two dots on the same line.
func (e Edge) Horizontal() bool {
	return e.Dot1().X() == e.Dot2().X()
}

func (e Edge) String() string {
	return fmt.Sprintf("%v => %v", e.Dot1(), e.Dot2())
}

// NearBoxes returns the up to two boxes that could share this segment. The
// candidates are derived from the dot packing alone; callers must still
// filter them against the board dimensions.
func (e Edge) NearBoxes() (nearBoxes []Box) {
	nearBoxes = append(nearBoxes, Box(e.Dot1()))

	x := e.Dot2().X() - 1
	y := e.Dot2().Y() - 1
	if x >= 0 && y >= 0 {
		nearBoxes = append(nearBoxes, Box(NewDot(x, y)))
	}
	return
}
