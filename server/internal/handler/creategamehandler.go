package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"github.com/minmaxed/dots-and-boxes/server/internal/logic"
	"github.com/minmaxed/dots-and-boxes/server/internal/svc"
	"github.com/minmaxed/dots-and-boxes/server/internal/types"
)

func CreateGameHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.CreateGameRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewCreateGameLogic(r.Context(), svcCtx)
		resp, err := l.CreateGame(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
