package assess

import (
	"testing"

	"github.com/minmaxed/dots-and-boxes/pkg/models/chess"
)

func TestStaticScoreSentinels(t *testing.T) {
	g := mustGame(t, 1, 1)
	g.MaxScore = 1
	for _, p := range []Policy{PolicyChain, PolicyCrude} {
		if got := StaticScore(g, p); got != WinScore {
			t.Fatalf("%v: Max win should score %d, got %d", p, WinScore, got)
		}
	}

	g.MaxScore, g.MinScore = 0, 1
	for _, p := range []Policy{PolicyChain, PolicyCrude} {
		if got := StaticScore(g, p); got != -WinScore {
			t.Fatalf("%v: Min win should score %d, got %d", p, -WinScore, got)
		}
	}

	tied := mustGame(t, 1, 2)
	tied.MinScore, tied.MaxScore = 1, 1
	for _, p := range []Policy{PolicyChain, PolicyCrude} {
		if got := StaticScore(tied, p); got != 0 {
			t.Fatalf("%v: tie should score 0, got %d", p, got)
		}
	}
}

func TestStaticScoreCrude(t *testing.T) {
	g := mustGame(t, 2, 2)
	g.MaxScore, g.MinScore = 1, 0

	// Max can still reach 4 boxes, Min only 3.
	if got := StaticScore(g, PolicyCrude); got != 1 {
		t.Fatalf("crude score should be 1, got %d", got)
	}

	g.MaxScore, g.MinScore = 1, 2
	if got := StaticScore(g, PolicyCrude); got != -1 {
		t.Fatalf("crude score should be -1, got %d", got)
	}
}

func TestStaticScoreChainSeesHandedCapture(t *testing.T) {
	// Max draws three sides of the only box. Whoever moves next takes it,
	// and the chain walk charges that box (plus the start of the walk)
	// to Min.
	g := mustGame(t, 1, 1)
	box := chess.Box(chess.NewDot(0, 0))
	for _, dir := range []chess.Direction{chess.Up, chess.Left, chess.Down} {
		if _, err := g.DrawEdge(chess.PlayerMax, box.Edge(dir)); err != nil {
			t.Fatal(err)
		}
	}

	if got := StaticScore(g, PolicyChain); got != -2 {
		t.Fatalf("chain score should be -2, got %d", got)
	}
	if got := StaticScore(g, PolicyCrude); got != 0 {
		t.Fatalf("crude score should be 0, got %d", got)
	}
}

func drawAll(t *testing.T, g *chess.Game, edges []chess.Edge) {
	t.Helper()
	for _, e := range edges {
		if _, err := g.DrawEdge(chess.PlayerMax, e); err != nil {
			t.Fatal(err)
		}
	}
}

func TestStaticScoreChainFollowsMirroredChains(t *testing.T) {
	// A two-box corridor on a 1x2 board, open at one end, built in both
	// orientations. The walk must cross the shared segment whichever side
	// it starts from, so the mirror positions score identically.
	left := chess.Box(chess.NewDot(0, 0))
	right := chess.Box(chess.NewDot(0, 1))

	rightward := mustGame(t, 1, 2)
	drawAll(t, rightward, []chess.Edge{
		right.Edge(chess.Up), right.Edge(chess.Down),
		left.Edge(chess.Up), left.Edge(chess.Left), left.Edge(chess.Down),
	})
	if rightward.LastMove.Box != left {
		t.Fatalf("walk should start at %v, got %v", left, rightward.LastMove.Box)
	}

	leftward := mustGame(t, 1, 2)
	drawAll(t, leftward, []chess.Edge{
		left.Edge(chess.Up), left.Edge(chess.Down),
		right.Edge(chess.Up), right.Edge(chess.Right), right.Edge(chess.Down),
	})
	if leftward.LastMove.Box != right {
		t.Fatalf("walk should start at %v, got %v", right, leftward.LastMove.Box)
	}

	// Min takes both boxes for free; the walk counts the chain plus its
	// empty-handed final probe.
	if got := StaticScore(rightward, PolicyChain); got != -3 {
		t.Fatalf("rightward chain should score -3, got %d", got)
	}
	if got := StaticScore(leftward, PolicyChain); got != -3 {
		t.Fatalf("leftward chain should score -3, got %d", got)
	}
}

func TestStaticScoreChainRunsTheFullCorridor(t *testing.T) {
	// Three boxes in a row, every crosswise segment free. The walk has to
	// step through all of them, left to right.
	a := chess.Box(chess.NewDot(0, 0))
	b := chess.Box(chess.NewDot(0, 1))
	c := chess.Box(chess.NewDot(0, 2))

	g := mustGame(t, 1, 3)
	drawAll(t, g, []chess.Edge{
		b.Edge(chess.Up), b.Edge(chess.Down),
		c.Edge(chess.Up), c.Edge(chess.Down),
		a.Edge(chess.Up), a.Edge(chess.Left), a.Edge(chess.Down),
	})
	if g.LastMove.Box != a {
		t.Fatalf("walk should start at %v, got %v", a, g.LastMove.Box)
	}

	if got := StaticScore(g, PolicyChain); got != -4 {
		t.Fatalf("three-box chain should score -4, got %d", got)
	}
}

func TestStaticScoreChainWithoutHistory(t *testing.T) {
	// No placement yet, so the chain walk has nowhere to start and both
	// prospective scores collapse to the raw box counts.
	g := mustGame(t, 2, 2)
	if got := StaticScore(g, PolicyChain); got != 0 {
		t.Fatalf("empty game should score 0, got %d", got)
	}
}
