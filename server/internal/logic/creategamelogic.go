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

type CreateGameLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewCreateGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateGameLogic {
	return &CreateGameLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *CreateGameLogic) CreateGame(req *types.CreateGameRequest) (*types.GameStateResponse, error) {
	g, err := chess.NewGame(req.Lines, req.Columns)
	if err != nil {
		return nil, err
	}

	opts := l.svcCtx.Search
	if req.Depth > 0 {
		opts.Depth = req.Depth
	}
	if req.Algorithm != "" {
		if opts.Algorithm, err = assess.ParseAlgorithm(req.Algorithm); err != nil {
			return nil, err
		}
	}
	if req.Policy != "" {
		if opts.Policy, err = assess.ParsePolicy(req.Policy); err != nil {
			return nil, err
		}
	}

	stored := &storedGame{
		Uid:     message.NewGameUid(),
		Game:    g,
		Options: opts,
	}
	if err := saveGame(l.svcCtx.Redis, stored, l.svcCtx.Config.GameTTLSeconds); err != nil {
		return nil, err
	}

	err = l.svcCtx.Recorder.RecordStart(l.ctx, &record.GameStart{
		GameUid:   stored.Uid,
		Lines:     req.Lines,
		Columns:   req.Columns,
		Depth:     opts.Depth,
		Algorithm: opts.Algorithm.String(),
		Policy:    opts.Policy.String(),
	})
	if err != nil {
		return nil, err
	}

	return stateResponse(stored.Uid, g), nil
}
