package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"github.com/minmaxed/dots-and-boxes/server/internal/svc"
)

func RegisterHandlers(server *rest.Server, svcCtx *svc.ServiceContext) {
	server.AddRoutes([]rest.Route{
		{
			Method:  http.MethodPost,
			Path:    "/api/games",
			Handler: CreateGameHandler(svcCtx),
		},
		{
			Method:  http.MethodGet,
			Path:    "/api/games/:uid",
			Handler: GetGameHandler(svcCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/api/games/:uid/moves",
			Handler: ApplyMoveHandler(svcCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/api/games/:uid/best",
			Handler: BestEdgeHandler(svcCtx),
		},
	})
}
