package assess

import "github.com/minmaxed/dots-and-boxes/pkg/models/chess"

// node is one state in the search tree. A node starts unexpanded; it either
// expands into children or, at depth zero and on finished games, scores
// itself statically. Only the chosen child survives the recursion.
type node struct {
	game     *chess.Game
	depth    int
	score    int
	children []*node
	best     *node
}

func newNode(g *chess.Game, depth int) *node {
	return &node{game: g, depth: depth}
}

// leaf reports whether the node must be scored statically instead of
// expanded.
func (n *node) leaf() bool {
	return n.depth == 0 || Evaluate(n.game) != NotOver
}

// expand generates one child per free segment, in canonical edge order.
// Game.Apply already decided each child's mover, so the extra-turn rule
// flows through the tree unchanged.
func (n *node) expand() {
	moves := n.game.Moves()
	n.children = make([]*node, 0, len(moves))
	for _, m := range moves {
		n.children = append(n.children, newNode(m, n.depth-1))
	}
}
