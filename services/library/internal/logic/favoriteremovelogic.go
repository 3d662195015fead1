package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/cuihairu/playshelf/services/library/internal/svc"
	"github.com/cuihairu/playshelf/services/library/internal/types"
)

type FavoriteRemoveLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewFavoriteRemoveLogic(ctx context.Context, svcCtx *svc.ServiceContext) *FavoriteRemoveLogic {
	return &FavoriteRemoveLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *FavoriteRemoveLogic) FavoriteRemove(req *types.EntryRequest) error {
	return l.svcCtx.Library.RemoveFavorite(l.ctx, svc.PrincipalFromContext(l.ctx), req.UserId, req.GameId)
}
