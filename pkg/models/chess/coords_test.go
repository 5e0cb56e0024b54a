package chess

import (
	"errors"
	"testing"
)

func TestSegmentAtResolvesLatticeCoordinates(t *testing.T) {
	// Horizontal: even line, odd column.
	e, err := SegmentAt(3, 3, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := NewEdge(NewDot(0, 0), NewDot(0, 1)); e != want {
		t.Fatalf("lattice (0,1) should be %v, got %v", want, e)
	}

	// Vertical: odd line, even column.
	e, err = SegmentAt(3, 3, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := NewEdge(NewDot(0, 0), NewDot(1, 0)); e != want {
		t.Fatalf("lattice (1,0) should be %v, got %v", want, e)
	}

	e, err = SegmentAt(3, 3, 5, 4)
	if err != nil {
		t.Fatal(err)
	}
	if want := NewEdge(NewDot(2, 2), NewDot(3, 2)); e != want {
		t.Fatalf("lattice (5,4) should be %v, got %v", want, e)
	}
}

func TestSegmentAtRejectsNonSegments(t *testing.T) {
	cases := [][2]int{
		{0, 0},   // dot
		{2, 4},   // dot
		{1, 1},   // box interior
		{-1, 0},  // off lattice
		{0, -1},  // off lattice
		{7, 0},   // beyond 2*lines
		{0, 7},   // beyond 2*columns
		{99, 99}, // far out
	}

	for _, c := range cases {
		if _, err := SegmentAt(3, 3, c[0], c[1]); !errors.Is(err, ErrInvalidSegment) {
			t.Fatalf("lattice (%d,%d) should be rejected, got %v", c[0], c[1], err)
		}
	}
}

func TestLatticeRoundTrip(t *testing.T) {
	for _, e := range Edges(3, 4) {
		r, c := Lattice(e)
		if (r+c)%2 != 1 {
			t.Fatalf("segment %v maps to (%d,%d), which has no odd coordinate", e, r, c)
		}

		back, err := SegmentAt(3, 4, r, c)
		if err != nil {
			t.Fatalf("round trip of %v via (%d,%d): %v", e, r, c, err)
		}
		if back != e {
			t.Fatalf("round trip of %v via (%d,%d) gave %v", e, r, c, back)
		}
	}
}

func TestApplySegmentPlaysForSideToMove(t *testing.T) {
	g := mustGame(t, 2, 2)

	if err := g.ApplySegment(0, 1); err != nil {
		t.Fatal(err)
	}
	if g.LastMove.Player != PlayerMin {
		t.Fatalf("first segment belongs to Min, got %v", g.LastMove.Player)
	}
	if g.NowPlayer != PlayerMax {
		t.Fatal("turn should pass to Max")
	}

	if err := g.ApplySegment(0, 1); !errors.Is(err, ErrSegmentTaken) {
		t.Fatalf("expected ErrSegmentTaken, got %v", err)
	}
	if err := g.ApplySegment(2, 2); !errors.Is(err, ErrInvalidSegment) {
		t.Fatalf("expected ErrInvalidSegment for a dot address, got %v", err)
	}
}
