package logic

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/cuihairu/playshelf/internal/ports"
	"github.com/cuihairu/playshelf/services/library/internal/svc"
	"github.com/cuihairu/playshelf/services/library/internal/types"
)

type EntryGetLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewEntryGetLogic(ctx context.Context, svcCtx *svc.ServiceContext) *EntryGetLogic {
	return &EntryGetLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *EntryGetLogic) EntryGet(req *types.EntryRequest) (*types.LibraryEntryResponse, error) {
	e, found, err := l.svcCtx.Library.GetEntryStatus(l.ctx, svc.PrincipalFromContext(l.ctx), req.UserId, req.GameId)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: user %s game %d", ports.ErrEntryNotFound, req.UserId, req.GameId)
	}
	resp := toEntryResponse(e)
	return &resp, nil
}
