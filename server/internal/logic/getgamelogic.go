package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/minmaxed/dots-and-boxes/server/internal/svc"
	"github.com/minmaxed/dots-and-boxes/server/internal/types"
)

type GetGameLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewGetGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetGameLogic {
	return &GetGameLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *GetGameLogic) GetGame(req *types.GamePathRequest) (*types.GameStateResponse, error) {
	stored, err := loadGame(l.svcCtx.Redis, req.GameUid)
	if err != nil {
		return nil, err
	}
	return stateResponse(stored.Uid, stored.Game), nil
}
