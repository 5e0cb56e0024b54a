package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/minmaxed/dots-and-boxes/pkg/assess"
	"github.com/minmaxed/dots-and-boxes/pkg/models/chess"
	"github.com/minmaxed/dots-and-boxes/server/internal/svc"
	"github.com/minmaxed/dots-and-boxes/server/internal/types"
)

type BestEdgeLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewBestEdgeLogic(ctx context.Context, svcCtx *svc.ServiceContext) *BestEdgeLogic {
	return &BestEdgeLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *BestEdgeLogic) BestEdge(req *types.BestEdgeRequest) (*types.BestEdgeResponse, error) {
	stored, err := loadGame(l.svcCtx.Redis, req.GameUid)
	if err != nil {
		return nil, err
	}
	if assess.Evaluate(stored.Game) != assess.NotOver {
		return nil, ErrGameOver
	}

	res, err := assess.Search(stored.Game, stored.Options)
	if err != nil {
		return nil, err
	}
	if res.Next == nil {
		return nil, ErrGameOver
	}

	row, column := chess.Lattice(res.Next.LastMove.Edge)
	resp := &types.BestEdgeResponse{
		Row:     row,
		Column:  column,
		Score:   res.Score,
		Visited: res.Visited,
	}

	if req.Apply {
		stored.Game = res.Next
		if err := commitMove(l.ctx, l.svcCtx, stored); err != nil {
			return nil, err
		}
		resp.State = stateResponse(stored.Uid, stored.Game)
	}

	return resp, nil
}
