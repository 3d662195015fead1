package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"github.com/cuihairu/playshelf/services/library/internal/logic"
	"github.com/cuihairu/playshelf/services/library/internal/svc"
	"github.com/cuihairu/playshelf/services/library/internal/types"
)

func FavoriteAddHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.EntryRequest
		if err := httpx.ParsePath(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewFavoriteAddLogic(r.Context(), svcCtx)
		resp, err := l.FavoriteAdd(&req)
		if err != nil {
			writeError(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
