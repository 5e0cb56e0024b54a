package main

import (
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/minmaxed/dots-and-boxes/pkg/models/chess"
)

// Render draws the board the way the original console rules are written:
// dots as '*', drawn segments as '-' and '|', owned boxes as their owner's
// glyph.
func Render(g *chess.Game, cfg Config) string {
	var sb strings.Builder

	for i := 0; i < g.Board.Lines; i++ {
		for j := 0; j < g.Board.Columns; j++ {
			box := chess.Box(chess.NewDot(i, j))
			sb.WriteString("*")
			sb.WriteString(segment(g, box.Edge(chess.Up), "-"))
		}
		sb.WriteString("*\n")

		for j := 0; j < g.Board.Columns; j++ {
			box := chess.Box(chess.NewDot(i, j))
			sb.WriteString(segment(g, box.Edge(chess.Left), "|"))
			sb.WriteString(glyph(g, box, cfg))
		}
		lastBox := chess.Box(chess.NewDot(i, g.Board.Columns-1))
		sb.WriteString(segment(g, lastBox.Edge(chess.Right), "|"))
		sb.WriteString("\n")
	}

	for j := 0; j < g.Board.Columns; j++ {
		box := chess.Box(chess.NewDot(g.Board.Lines-1, j))
		sb.WriteString("*")
		sb.WriteString(segment(g, box.Edge(chess.Down), "-"))
	}
	sb.WriteString("*")

	return sb.String()
}

func segment(g *chess.Game, e chess.Edge, mark string) string {
	if !g.Board.Contains(e) {
		return " "
	}
	if g.LastMove.Valid && g.LastMove.Edge == e {
		return aurora.Yellow(mark).String()
	}
	return mark
}

func glyph(g *chess.Game, box chess.Box, cfg Config) string {
	owner, ok := g.Owners[box]
	if !ok {
		return " "
	}
	if owner == chess.PlayerMin {
		return aurora.Cyan(cfg.HumanGlyph).String()
	}
	return aurora.Red(cfg.EngineGlyph).String()
}
