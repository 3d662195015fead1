package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"github.com/cuihairu/playshelf/services/library/internal/logic"
	"github.com/cuihairu/playshelf/services/library/internal/svc"
	"github.com/cuihairu/playshelf/services/library/internal/types"
)

func EntryDeleteHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.EntryRequest
		if err := httpx.ParsePath(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewEntryDeleteLogic(r.Context(), svcCtx)
		if err := l.EntryDelete(&req); err != nil {
			writeError(r.Context(), w, err)
		} else {
			w.WriteHeader(http.StatusNoContent)
		}
	}
}
