package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/cuihairu/playshelf/services/library/internal/svc"
	"github.com/cuihairu/playshelf/services/library/internal/types"
)

type FavoriteAddLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewFavoriteAddLogic(ctx context.Context, svcCtx *svc.ServiceContext) *FavoriteAddLogic {
	return &FavoriteAddLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *FavoriteAddLogic) FavoriteAdd(req *types.EntryRequest) (*types.LibraryEntryResponse, error) {
	e, err := l.svcCtx.Library.AddFavorite(l.ctx, svc.PrincipalFromContext(l.ctx), req.UserId, req.GameId)
	if err != nil {
		return nil, err
	}
	resp := toEntryResponse(e)
	return &resp, nil
}
