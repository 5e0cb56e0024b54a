package message

import (
	"time"

	"github.com/bytedance/sonic"

	"github.com/minmaxed/dots-and-boxes/pkg/models/chess"
)

// GameStartRecord notes the configuration a match began with.
type GameStartRecord struct {
	TimeStamp
	GameUid
	Lines     int
	Columns   int
	Depth     int
	Algorithm string
	Policy    string
}

// MoveRecord describes one placement in dot-lattice coordinates, with the
// scores after it.
type MoveRecord struct {
	TimeStamp
	GameUid
	StepCount int
	Player    string
	Row       int
	Column    int
	MinScore  int
	MaxScore  int
}

// NewMoveRecord captures the game's most recent placement.
func NewMoveRecord(uid GameUid, g *chess.Game) MoveRecord {
	r, c := chess.Lattice(g.LastMove.Edge)
	return MoveRecord{
		TimeStamp: NewTimeStamp(time.Now()),
		GameUid:   uid,
		StepCount: g.StepCount(),
		Player:    g.LastMove.Player.String(),
		Row:       r,
		Column:    c,
		MinScore:  g.MinScore,
		MaxScore:  g.MaxScore,
	}
}

func (m MoveRecord) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}

func ParseMoveRecord(s string) (m MoveRecord, err error) {
	err = sonic.UnmarshalString(s, &m)
	return
}

// GameEndRecord closes a match's history.
type GameEndRecord struct {
	TimeStamp
	GameUid
	Winner   string
	MinScore int
	MaxScore int
}
