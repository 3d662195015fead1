package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"github.com/cuihairu/playshelf/internal/ports"
	"github.com/cuihairu/playshelf/services/library/internal/logic"
)

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ports.ErrUnauthorized):
		writeMessage(ctx, w, http.StatusForbidden, "forbidden")
	case errors.Is(err, ports.ErrGameNotFound):
		writeMessage(ctx, w, http.StatusNotFound, "game not found")
	case errors.Is(err, ports.ErrEntryNotFound):
		writeMessage(ctx, w, http.StatusNotFound, "library entry not found")
	case errors.Is(err, ports.ErrCatalogUnavailable):
		writeMessage(ctx, w, http.StatusServiceUnavailable, "catalog unavailable")
	case errors.Is(err, ports.ErrEmailTaken):
		writeMessage(ctx, w, http.StatusConflict, "email already registered")
	case errors.Is(err, ports.ErrInvalidCredentials):
		writeMessage(ctx, w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, ports.ErrInvalidStatus), errors.Is(err, logic.ErrInvalidRequest):
		writeMessage(ctx, w, http.StatusBadRequest, err.Error())
	default:
		httpx.ErrorCtx(ctx, w, err)
	}
}

func writeMessage(ctx context.Context, w http.ResponseWriter, code int, msg string) {
	httpx.WriteJsonCtx(ctx, w, code, map[string]any{"code": code, "message": msg})
}
