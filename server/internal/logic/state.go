package logic

import (
	"github.com/minmaxed/dots-and-boxes/pkg/assess"
	"github.com/minmaxed/dots-and-boxes/pkg/models/chess"
	"github.com/minmaxed/dots-and-boxes/pkg/models/message"
	"github.com/minmaxed/dots-and-boxes/server/internal/types"
)

// stateResponse flattens a game into its wire shape. Segments come out in
// the board's enumeration order so equal states serialize identically.
func stateResponse(uid message.GameUid, g *chess.Game) *types.GameStateResponse {
	resp := &types.GameStateResponse{
		GameUid:   string(uid),
		Lines:     g.Board.Lines,
		Columns:   g.Board.Columns,
		MinScore:  g.MinScore,
		MaxScore:  g.MaxScore,
		NowPlayer: g.NowPlayer.String(),
		StepCount: g.StepCount(),
		Segments:  make([][2]int, 0, g.StepCount()),
		Boxes:     make([]types.OwnedBox, 0, len(g.Owners)),
		Outcome:   assess.Evaluate(g).String(),
	}

	for _, e := range g.Board.AllEdges() {
		if !g.Board.Contains(e) {
			continue
		}
		r, c := chess.Lattice(e)
		resp.Segments = append(resp.Segments, [2]int{r, c})
	}

	for _, box := range chess.Boxes(g.Board.Lines, g.Board.Columns) {
		if owner, ok := g.Owners[box]; ok {
			resp.Boxes = append(resp.Boxes, types.OwnedBox{
				Line:   box.Line(),
				Column: box.Column(),
				Owner:  owner.String(),
			})
		}
	}

	return resp
}
