package assess

import (
	"fmt"
	"strings"

	"github.com/minmaxed/dots-and-boxes/pkg/models/chess"
)

// WinScore dominates every heuristic estimate, so a decided game outranks
// any non-terminal guess at every search depth.
const WinScore = 100000

// Policy selects the prospective-score heuristic used on non-terminal
// leaves.
type Policy int8

const (
	// PolicyChain extends a side's score with the boxes it can keep closing
	// for free from the last-drawn segment. The default.
	PolicyChain Policy = iota
	// PolicyCrude counts every box the opponent does not own yet. Cheap, and
	// a known overestimate kept as a configurable alternative.
	PolicyCrude
)

func (p Policy) String() string {
	if p == PolicyCrude {
		return "crude"
	}
	return "chain"
}

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "", "chain":
		return PolicyChain, nil
	case "crude":
		return PolicyCrude, nil
	}
	return 0, fmt.Errorf("assess: unknown policy %q", s)
}

// StaticScore estimates a state from MAX's perspective: the win sentinels
// on finished games, otherwise the gap between the two sides' prospective
// box counts.
func StaticScore(g *chess.Game, p Policy) int {
	switch Evaluate(g) {
	case MaxWins:
		return WinScore
	case MinWins:
		return -WinScore
	case Tie:
		return 0
	}
	return prospective(g, chess.PlayerMax, p) - prospective(g, chess.PlayerMin, p)
}

func prospective(g *chess.Game, t chess.Turn, p Policy) int {
	if p == PolicyCrude {
		return g.Board.TotalBoxes() - g.ScoreOf(t.Next())
	}
	return chainScore(g, t)
}

// chainScore walks the capture chain: while the side would keep the turn,
// close every free side of the box the last segment touched and follow the
// chain onward, counting one prospective box per step. The walk runs on a
// throwaway copy.
func chainScore(g *chess.Game, t chess.Turn) int {
	score := g.ScoreOf(t)
	if !g.LastMove.Valid {
		return score
	}

	sim := g.Clone()
	cursor := sim.LastMove.Box
	chasing := (sim.LastMove.Player == t) == sim.FilledBox
	for chasing {
		score++
		drawn := 0
		// The cursor crosses every segment it draws, so later directions
		// probe the box the walk just stepped into.
		for _, dir := range [...]chess.Direction{chess.Up, chess.Left, chess.Right, chess.Down} {
			e := cursor.Edge(dir)
			if sim.Board.Contains(e) {
				continue
			}
			_, _ = sim.DrawEdge(t, e)
			drawn++
			cursor = boxAcross(sim.Board, cursor, e)
		}
		chasing = drawn == 1
	}
	return score
}

// boxAcross returns the box on the far side of e from b, or b itself when e
// lies on the border.
func boxAcross(board chess.Board, b chess.Box, e chess.Edge) chess.Box {
	for _, box := range board.NearBoxes(e) {
		if box != b {
			return box
		}
	}
	return b
}
