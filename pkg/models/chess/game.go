package chess

import "fmt"

// LastMove records the most recent placement: the segment, the box the
// placement last touched, and who drew it. The chain heuristic resumes its
// walk from Box.
type LastMove struct {
	Edge   Edge
	Box    Box
	Player Turn
	Valid  bool
}

// Game is one live match: the board plus everything the rules need between
// placements. It is created once, mutated in place by every placement, and
// deep-copied for speculative exploration.
type Game struct {
	Board     Board
	MinScore  int
	MaxScore  int
	Owners    map[Box]Turn
	NowPlayer Turn
	FilledBox bool
	LastMove  LastMove
}

func NewGame(lines, columns int) (*Game, error) {
	board, err := NewBoard(lines, columns)
	if err != nil {
		return nil, err
	}

	return &Game{
		Board:     board,
		Owners:    make(map[Box]Turn),
		NowPlayer: PlayerMin,
	}, nil
}

// DrawEdge is the sole board mutator. It draws one segment for player t and
// awards every box the segment closes; a segment shared by two boxes that
// were both one edge short closes them simultaneously. It reports whether
// at least one box closed.
func (g *Game) DrawEdge(t Turn, e Edge) (completed bool, err error) {
	if !g.Board.OnBoard(e) {
		return false, fmt.Errorf("%w: %v", ErrInvalidSegment, e)
	}
	if g.Board.Contains(e) {
		return false, fmt.Errorf("%w: %v", ErrSegmentTaken, e)
	}

	boxes := g.Board.NearBoxes(e)
	g.Board.Add(e)

	last := LastMove{Edge: e, Player: t, Valid: true}
	for _, box := range boxes {
		last.Box = box
		if g.Board.EdgesCountInBox(box) == 4 {
			g.Owners[box] = t
			completed = true
			switch t {
			case PlayerMin:
				g.MinScore++
			case PlayerMax:
				g.MaxScore++
			}
		}
	}

	g.FilledBox = completed
	g.LastMove = last
	return completed, nil
}

// DrawBoxEdge draws one side of a box, addressed by box coordinates plus a
// direction.
func (g *Game) DrawBoxEdge(t Turn, line, column int, dir Direction) (bool, error) {
	box := Box(NewDot(line, column))
	if !g.Board.InRange(box) {
		return false, fmt.Errorf("%w: box [%d, %d]", ErrInvalidSegment, line, column)
	}
	return g.DrawEdge(t, box.Edge(dir))
}

// Apply draws the segment for the side to move and passes the turn unless
// the placement completed a box: completing a box grants another move.
func (g *Game) Apply(e Edge) error {
	completed, err := g.DrawEdge(g.NowPlayer, e)
	if err != nil {
		return err
	}
	if !completed {
		g.NowPlayer = g.NowPlayer.Next()
	}
	return nil
}

// ApplySegment resolves dot-lattice coordinates and plays the segment for
// the side to move.
func (g *Game) ApplySegment(r, c int) error {
	e, err := SegmentAt(g.Board.Lines, g.Board.Columns, r, c)
	if err != nil {
		return err
	}
	return g.Apply(e)
}

func (g *Game) ScoreOf(t Turn) int {
	if t == PlayerMin {
		return g.MinScore
	}
	return g.MaxScore
}

// Finished reports whether every box is owned.
func (g *Game) Finished() bool {
	return g.MinScore+g.MaxScore == g.Board.TotalBoxes()
}

func (g *Game) StepCount() int {
	return len(g.Board.Edges)
}

// Clone deep-copies the game so speculative placements never touch the live
// state.
func (g *Game) Clone() *Game {
	owners := make(map[Box]Turn, len(g.Owners))
	for box, t := range g.Owners {
		owners[box] = t
	}

	return &Game{
		Board:     g.Board.Clone(),
		MinScore:  g.MinScore,
		MaxScore:  g.MaxScore,
		Owners:    owners,
		NowPlayer: g.NowPlayer,
		FilledBox: g.FilledBox,
		LastMove:  g.LastMove,
	}
}

// Moves returns one successor per free segment, each a deep copy of g with
// that single segment applied, in canonical edge order. Whoever moves next
// in each successor follows the extra-turn rule.
func (g *Game) Moves() []*Game {
	free := g.Board.FreeEdges()
	moves := make([]*Game, 0, len(free))
	for _, e := range free {
		next := g.Clone()
		// A free on-board segment cannot fail to apply.
		_ = next.Apply(e)
		moves = append(moves, next)
	}
	return moves
}
