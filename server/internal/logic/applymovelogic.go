package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/minmaxed/dots-and-boxes/pkg/assess"
	"github.com/minmaxed/dots-and-boxes/pkg/models/chess"
	"github.com/minmaxed/dots-and-boxes/pkg/models/message"
	"github.com/minmaxed/dots-and-boxes/pkg/models/record"
	"github.com/minmaxed/dots-and-boxes/server/internal/svc"
	"github.com/minmaxed/dots-and-boxes/server/internal/types"
)

type ApplyMoveLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewApplyMoveLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ApplyMoveLogic {
	return &ApplyMoveLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *ApplyMoveLogic) ApplyMove(req *types.ApplyMoveRequest) (*types.GameStateResponse, error) {
	stored, err := loadGame(l.svcCtx.Redis, req.GameUid)
	if err != nil {
		return nil, err
	}
	if err := ensureHumanTurn(stored.Game); err != nil {
		return nil, err
	}

	if err := stored.Game.ApplySegment(req.Row, req.Column); err != nil {
		return nil, err
	}

	if err := commitMove(l.ctx, l.svcCtx, stored); err != nil {
		return nil, err
	}
	return stateResponse(stored.Uid, stored.Game), nil
}

// ensureHumanTurn rejects the placement unless the game is running and Min
// is to move; the engine's placements go through the best-edge endpoint.
func ensureHumanTurn(g *chess.Game) error {
	if assess.Evaluate(g) != assess.NotOver {
		return ErrGameOver
	}
	if g.NowPlayer != chess.PlayerMin {
		return ErrEngineTurn
	}
	return nil
}

// commitMove persists a placement: a mongo record and a feed entry always,
// then either the refreshed redis state or, on a finished game, the end
// record and the key's removal.
func commitMove(ctx context.Context, svcCtx *svc.ServiceContext, stored *storedGame) error {
	g := stored.Game
	moveRecord := message.NewMoveRecord(stored.Uid, g)

	err := svcCtx.Recorder.RecordMove(ctx, &record.Move{
		GameUid:   stored.Uid,
		StepCount: moveRecord.StepCount,
		Player:    moveRecord.Player,
		Row:       moveRecord.Row,
		Column:    moveRecord.Column,
		MinScore:  g.MinScore,
		MaxScore:  g.MaxScore,
	})
	if err != nil {
		return err
	}
	svcCtx.FeedPusher.Add(moveRecord.String())

	outcome := assess.Evaluate(g)
	if outcome == assess.NotOver {
		return saveGame(svcCtx.Redis, stored, svcCtx.Config.GameTTLSeconds)
	}

	err = svcCtx.Recorder.RecordEnd(ctx, &record.GameEnd{
		GameUid:  stored.Uid,
		Winner:   outcome.String(),
		MinScore: g.MinScore,
		MaxScore: g.MaxScore,
	})
	if err != nil {
		return err
	}
	return dropGame(svcCtx.Redis, stored.Uid)
}
