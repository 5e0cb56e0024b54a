package chess

import "fmt"

// Dots are packed into a single int: the high bits carry the line index,
// the low D bits the column index. Boards never exceed 8 dots per side, so
// 8 bits per coordinate is plenty.
const (
	D       = 8
	dotMod  = 1 << D
	dotMask = dotMod - 1
)

type Dot int

func NewDot(x, y int) Dot {
	return Dot((x << D) + y)
}

func (d Dot) X() int {
	return int(d) >> D
}

func (d Dot) Y() int {
	return int(d) & dotMask
}

func (d Dot) String() string {
	return fmt.Sprintf("(%d, %d)", d.X(), d.Y())
}
