package assess

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/minmaxed/dots-and-boxes/pkg/models/chess"
)

const inf = math.MaxInt32

// ErrInvalidDepth rejects negative search depths. Zero is legal and yields
// the degenerate static-score result.
var ErrInvalidDepth = errors.New("assess: search depth must not be negative")

// Algorithm selects the tree search run by Search.
type Algorithm int8

const (
	AlphaBeta Algorithm = iota
	Minimax
)

func (a Algorithm) String() string {
	if a == Minimax {
		return "minimax"
	}
	return "alphabeta"
}

func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(s) {
	case "", "alphabeta", "alpha-beta":
		return AlphaBeta, nil
	case "minimax":
		return Minimax, nil
	}
	return 0, fmt.Errorf("assess: unknown algorithm %q", s)
}

// Options configure one search invocation.
type Options struct {
	Algorithm Algorithm
	Policy    Policy
	Depth     int
}

// Result is what a search hands back. Next is nil when the position is
// already decided or the depth is zero; callers detect game end through
// Evaluate, never through a missing move.
type Result struct {
	Next    *chess.Game
	Score   int
	Visited int
}

// Search picks the best successor of g for the side to move by fixed-depth
// adversarial search. It is synchronous and deterministic: the same game,
// depth and algorithm always yield the same move. The depth is capped at
// the number of free segments, which also bounds the recursion depth.
func Search(g *chess.Game, opts Options) (Result, error) {
	if opts.Depth < 0 {
		return Result{}, ErrInvalidDepth
	}

	depth := opts.Depth
	if free := g.Board.FreeEdgesCount(); depth > free {
		depth = free
	}

	root := newNode(g.Clone(), depth)
	s := &searcher{policy: opts.Policy}
	switch opts.Algorithm {
	case Minimax:
		s.minimax(root)
	default:
		s.alphaBeta(-inf, inf, root)
	}

	res := Result{Score: root.score, Visited: s.visited}
	if root.best != nil {
		res.Next = root.best.game
	}
	return res, nil
}

// searcher carries the per-invocation knobs and counters shared by both
// algorithms. Nothing escapes an invocation, so searches never interfere.
type searcher struct {
	policy  Policy
	visited int
}
