package chess

// Turn identifies a side. The values are the minimax signs: MAX is the
// engine, MIN is the human and moves first.
type Turn int8

const (
	PlayerMax Turn = 1
	PlayerMin Turn = -1
)

// Next returns the other side.
func (t Turn) Next() Turn {
	return -t
}

func (t Turn) String() string {
	switch t {
	case PlayerMax:
		return "Max"
	case PlayerMin:
		return "Min"
	}
	return ""
}
