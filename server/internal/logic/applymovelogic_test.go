package logic

import (
	"errors"
	"testing"

	"github.com/minmaxed/dots-and-boxes/pkg/models/chess"
)

func TestEnsureHumanTurn(t *testing.T) {
	g, err := chess.NewGame(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	box := chess.Box(chess.NewDot(0, 0))

	if err := ensureHumanTurn(g); err != nil {
		t.Fatalf("Min opens the game, got %v", err)
	}

	if err := g.Apply(box.Edge(chess.Up)); err != nil {
		t.Fatal(err)
	}
	if err := ensureHumanTurn(g); !errors.Is(err, ErrEngineTurn) {
		t.Fatalf("Max to move should be rejected, got %v", err)
	}

	for _, dir := range []chess.Direction{chess.Right, chess.Down, chess.Left} {
		if err := g.Apply(box.Edge(dir)); err != nil {
			t.Fatal(err)
		}
	}
	if err := ensureHumanTurn(g); !errors.Is(err, ErrGameOver) {
		t.Fatalf("finished game should be rejected, got %v", err)
	}
}
