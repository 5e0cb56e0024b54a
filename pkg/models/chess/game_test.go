package chess

import (
	"errors"
	"testing"
)

func mustGame(t *testing.T, lines, columns int) *Game {
	t.Helper()
	g, err := NewGame(lines, columns)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestDrawEdgeRejectsOffBoardAndTaken(t *testing.T) {
	g := mustGame(t, 1, 1)

	offBoard := NewEdge(NewDot(5, 5), NewDot(5, 6))
	if _, err := g.DrawEdge(PlayerMin, offBoard); !errors.Is(err, ErrInvalidSegment) {
		t.Fatalf("expected ErrInvalidSegment, got %v", err)
	}

	e := Box(NewDot(0, 0)).Edge(Up)
	if _, err := g.DrawEdge(PlayerMin, e); err != nil {
		t.Fatal(err)
	}
	if _, err := g.DrawEdge(PlayerMax, e); !errors.Is(err, ErrSegmentTaken) {
		t.Fatalf("expected ErrSegmentTaken, got %v", err)
	}
}

func TestSharedSegmentCountsInBothBoxes(t *testing.T) {
	g := mustGame(t, 1, 2)

	left := Box(NewDot(0, 0))
	right := Box(NewDot(0, 1))
	if _, err := g.DrawEdge(PlayerMin, left.Edge(Right)); err != nil {
		t.Fatal(err)
	}

	if got := g.Board.EdgesCountInBox(left); got != 1 {
		t.Fatalf("left box should see the shared segment, got %d", got)
	}
	if got := g.Board.EdgesCountInBox(right); got != 1 {
		t.Fatalf("right box should see the shared segment, got %d", got)
	}
}

func TestFourthEdgeOwnsBoxRegardlessOfOrder(t *testing.T) {
	orders := [][4]Direction{
		{Up, Right, Down, Left},
		{Left, Down, Right, Up},
		{Down, Up, Left, Right},
	}

	for _, order := range orders {
		g := mustGame(t, 1, 1)
		box := Box(NewDot(0, 0))

		for i, dir := range order[:3] {
			drawer := PlayerMin
			if i%2 == 1 {
				drawer = PlayerMax
			}
			completed, err := g.DrawEdge(drawer, box.Edge(dir))
			if err != nil {
				t.Fatal(err)
			}
			if completed {
				t.Fatalf("box closed after %d segments", i+1)
			}
		}

		completed, err := g.DrawEdge(PlayerMax, box.Edge(order[3]))
		if err != nil {
			t.Fatal(err)
		}
		if !completed {
			t.Fatal("fourth segment should close the box")
		}
		if g.Owners[box] != PlayerMax {
			t.Fatalf("box should belong to its closer, got %v", g.Owners[box])
		}
		if g.MaxScore != 1 || g.MinScore != 0 {
			t.Fatalf("score should be 1:0, got %d:%d", g.MaxScore, g.MinScore)
		}
	}
}

func TestOneSegmentClosesTwoBoxes(t *testing.T) {
	g := mustGame(t, 1, 2)
	left := Box(NewDot(0, 0))
	right := Box(NewDot(0, 1))

	for _, dir := range []Direction{Up, Down, Left} {
		if _, err := g.DrawEdge(PlayerMin, left.Edge(dir)); err != nil {
			t.Fatal(err)
		}
	}
	for _, dir := range []Direction{Up, Down, Right} {
		if _, err := g.DrawEdge(PlayerMin, right.Edge(dir)); err != nil {
			t.Fatal(err)
		}
	}

	completed, err := g.DrawEdge(PlayerMax, left.Edge(Right))
	if err != nil {
		t.Fatal(err)
	}
	if !completed {
		t.Fatal("shared segment should close both boxes")
	}
	if g.MaxScore != 2 {
		t.Fatalf("both boxes go to the drawer, got score %d", g.MaxScore)
	}
	if g.Owners[left] != PlayerMax || g.Owners[right] != PlayerMax {
		t.Fatalf("both boxes should belong to Max: %v / %v", g.Owners[left], g.Owners[right])
	}
	if !g.Finished() {
		t.Fatal("all boxes owned, game should be finished")
	}
}

func TestApplyGrantsExtraTurnOnCompletion(t *testing.T) {
	g := mustGame(t, 1, 1)
	box := Box(NewDot(0, 0))

	if g.NowPlayer != PlayerMin {
		t.Fatalf("Min moves first, got %v", g.NowPlayer)
	}

	if err := g.Apply(box.Edge(Up)); err != nil {
		t.Fatal(err)
	}
	if g.NowPlayer != PlayerMax {
		t.Fatal("turn should pass after a plain placement")
	}

	if err := g.Apply(box.Edge(Left)); err != nil {
		t.Fatal(err)
	}
	if err := g.Apply(box.Edge(Down)); err != nil {
		t.Fatal(err)
	}

	// Min closes the box and must keep the turn.
	if err := g.Apply(box.Edge(Right)); err != nil {
		t.Fatal(err)
	}
	if g.NowPlayer != PlayerMin {
		t.Fatalf("closing a box keeps the turn, got %v", g.NowPlayer)
	}
	if g.Owners[box] != PlayerMin {
		t.Fatalf("box should belong to Min, got %v", g.Owners[box])
	}
}

func TestFilledBoxResetsOnNextPlacement(t *testing.T) {
	g := mustGame(t, 1, 2)
	left := Box(NewDot(0, 0))
	right := Box(NewDot(0, 1))

	for _, dir := range []Direction{Up, Down, Left} {
		if _, err := g.DrawEdge(PlayerMin, left.Edge(dir)); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := g.DrawEdge(PlayerMin, left.Edge(Right)); err != nil {
		t.Fatal(err)
	}
	if !g.FilledBox {
		t.Fatal("FilledBox should be set right after a completion")
	}

	if _, err := g.DrawEdge(PlayerMin, right.Edge(Up)); err != nil {
		t.Fatal(err)
	}
	if g.FilledBox {
		t.Fatal("FilledBox must reflect the latest placement only")
	}
}

func TestMovesEnumeratesEveryFreeSegment(t *testing.T) {
	g := mustGame(t, 1, 1)
	if moves := g.Moves(); len(moves) != 4 {
		t.Fatalf("empty 1x1 has 4 moves, got %d", len(moves))
	}

	g2 := mustGame(t, 2, 2)
	all := g2.Board.AllEdges()
	if err := g2.Apply(all[0]); err != nil {
		t.Fatal(err)
	}
	if err := g2.Apply(all[1]); err != nil {
		t.Fatal(err)
	}

	moves := g2.Moves()
	if len(moves) != 10 {
		t.Fatalf("2x2 with 2 drawn has 10 moves, got %d", len(moves))
	}
	for _, m := range moves {
		if m.StepCount() != 3 {
			t.Fatalf("each successor applies exactly one segment, got %d", m.StepCount())
		}
	}
	if g2.StepCount() != 2 {
		t.Fatal("Moves must not mutate the source game")
	}
}

func TestGameCloneIsDeep(t *testing.T) {
	g := mustGame(t, 2, 2)
	clone := g.Clone()

	if err := clone.Apply(clone.Board.AllEdges()[0]); err != nil {
		t.Fatal(err)
	}
	if g.StepCount() != 0 {
		t.Fatal("clone placement leaked into the original board")
	}
	if g.NowPlayer != PlayerMin {
		t.Fatal("clone placement leaked into the original turn")
	}

	clone.Owners[Box(NewDot(0, 0))] = PlayerMax
	if len(g.Owners) != 0 {
		t.Fatal("clone owners leaked into the original")
	}
}
