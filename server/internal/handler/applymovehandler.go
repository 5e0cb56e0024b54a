package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"github.com/minmaxed/dots-and-boxes/server/internal/logic"
	"github.com/minmaxed/dots-and-boxes/server/internal/svc"
	"github.com/minmaxed/dots-and-boxes/server/internal/types"
)

func ApplyMoveHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ApplyMoveRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewApplyMoveLogic(r.Context(), svcCtx)
		resp, err := l.ApplyMove(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
