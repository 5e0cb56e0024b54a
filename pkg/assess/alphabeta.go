package assess

import "github.com/minmaxed/dots-and-boxes/pkg/models/chess"

// alphaBeta scores n like minimax but stops visiting children once the
// window closes (alpha >= beta). Children are visited in generation order
// and only a strict improvement replaces the best child, so for any fixed
// enumeration order the chosen move matches minimax exactly; pruning only
// skips subtrees that cannot displace it.
func (s *searcher) alphaBeta(alpha, beta int, n *node) {
	s.visited++
	if n.leaf() {
		n.score = StaticScore(n.game, s.policy)
		return
	}

	n.expand()
	if n.game.NowPlayer == chess.PlayerMax {
		best := -inf
		for _, child := range n.children {
			s.alphaBeta(alpha, beta, child)
			if child.score > best {
				best = child.score
				n.best = child
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}
		n.score = best
		return
	}

	best := inf
	for _, child := range n.children {
		s.alphaBeta(alpha, beta, child)
		if child.score < best {
			best = child.score
			n.best = child
		}
		if best < beta {
			beta = best
		}
		if alpha >= beta {
			break
		}
	}
	n.score = best
}
