package chess

import "fmt"

// Segments are addressed on the dot lattice: a (2*lines+1)×(2*columns+1)
// grid in which even/even pairs are dots, odd/odd pairs are box interiors,
// and pairs with exactly one odd coordinate sit on a drawable segment.

// SegmentAt resolves lattice coordinates to the segment between two dots.
func SegmentAt(lines, columns, r, c int) (Edge, error) {
	if r < 0 || r > 2*lines || c < 0 || c > 2*columns || (r+c)%2 != 1 {
		return 0, fmt.Errorf("%w: lattice (%d, %d)", ErrInvalidSegment, r, c)
	}

	x := r / 2
	y := c / 2
	if r%2 == 0 {
		// Horizontal: the segment lies on dot line x, between columns y and y+1.
		return NewEdge(NewDot(x, y), NewDot(x, y+1)), nil
	}
	return NewEdge(NewDot(x, y), NewDot(x+1, y)), nil
}

// Lattice returns the dot-lattice coordinates of a segment's midpoint, the
// inverse of SegmentAt.
func Lattice(e Edge) (r, c int) {
	d1 := e.Dot1()
	d2 := e.Dot2()
	return d1.X() + d2.X(), d1.Y() + d2.Y()
}
