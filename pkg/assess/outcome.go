package assess

import "github.com/minmaxed/dots-and-boxes/pkg/models/chess"

// Outcome reports how a game stands: still in play, tied, or won.
type Outcome int8

const (
	NotOver Outcome = iota
	Tie
	MinWins
	MaxWins
)

func (o Outcome) String() string {
	switch o {
	case Tie:
		return "Tie"
	case MinWins:
		return "Min"
	case MaxWins:
		return "Max"
	}
	return "NotOver"
}

// Evaluate decides whether every box on the board is owned and, if so, who
// owns more of them. A game ends exactly when the two scores sum to the
// box count.
func Evaluate(g *chess.Game) Outcome {
	if g.MinScore+g.MaxScore != g.Board.TotalBoxes() {
		return NotOver
	}

	switch {
	case g.MinScore > g.MaxScore:
		return MinWins
	case g.MaxScore > g.MinScore:
		return MaxWins
	}
	return Tie
}
