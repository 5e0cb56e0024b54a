package assess

import "github.com/minmaxed/dots-and-boxes/pkg/models/chess"

// minimax scores n exhaustively: leaves take their static score, internal
// nodes the extremum of their children for the side to move. The first
// child reaching the extremum wins ties, which is also how alphaBeta picks,
// so the two algorithms always choose the same move.
func (s *searcher) minimax(n *node) {
	s.visited++
	if n.leaf() {
		n.score = StaticScore(n.game, s.policy)
		return
	}

	n.expand()
	for _, child := range n.children {
		s.minimax(child)
		switch {
		case n.best == nil:
			n.best = child
		case n.game.NowPlayer == chess.PlayerMax && child.score > n.best.score:
			n.best = child
		case n.game.NowPlayer == chess.PlayerMin && child.score < n.best.score:
			n.best = child
		}
	}
	n.score = n.best.score
}
