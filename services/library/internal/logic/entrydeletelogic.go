package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/cuihairu/playshelf/services/library/internal/svc"
	"github.com/cuihairu/playshelf/services/library/internal/types"
)

type EntryDeleteLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewEntryDeleteLogic(ctx context.Context, svcCtx *svc.ServiceContext) *EntryDeleteLogic {
	return &EntryDeleteLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *EntryDeleteLogic) EntryDelete(req *types.EntryRequest) error {
	return l.svcCtx.Library.RemoveEntry(l.ctx, svc.PrincipalFromContext(l.ctx), req.UserId, req.GameId)
}
