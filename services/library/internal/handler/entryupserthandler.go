package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"github.com/cuihairu/playshelf/services/library/internal/logic"
	"github.com/cuihairu/playshelf/services/library/internal/svc"
	"github.com/cuihairu/playshelf/services/library/internal/types"
)

func EntryUpsertHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.EntryUpsertRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewEntryUpsertLogic(r.Context(), svcCtx)
		resp, err := l.EntryUpsert(&req)
		switch {
		case err != nil:
			writeError(r.Context(), w, err)
		case resp == nil:
			w.WriteHeader(http.StatusNoContent)
		default:
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
