package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/cuihairu/playshelf/internal/ports"
	"github.com/cuihairu/playshelf/services/library/internal/svc"
	"github.com/cuihairu/playshelf/services/library/internal/types"
)

type EntryUpsertLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewEntryUpsertLogic(ctx context.Context, svcCtx *svc.ServiceContext) *EntryUpsertLogic {
	return &EntryUpsertLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// EntryUpsert returns nil when the update left no entry behind.
func (l *EntryUpsertLogic) EntryUpsert(req *types.EntryUpsertRequest) (*types.LibraryEntryResponse, error) {
	status, err := ports.ParseGameStatus(req.Status)
	if err != nil {
		return nil, err
	}
	e, ok, err := l.svcCtx.Library.UpsertEntry(l.ctx, svc.PrincipalFromContext(l.ctx), req.UserId, req.GameId, status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	resp := toEntryResponse(e)
	return &resp, nil
}
