package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/cuihairu/playshelf/services/library/internal/svc"
	"github.com/cuihairu/playshelf/services/library/internal/types"
)

type LibraryListLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewLibraryListLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LibraryListLogic {
	return &LibraryListLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *LibraryListLogic) LibraryList(req *types.LibraryListRequest) ([]types.LibraryEntryResponse, error) {
	entries, err := l.svcCtx.Library.ListEntries(l.ctx, svc.PrincipalFromContext(l.ctx), req.UserId)
	if err != nil {
		return nil, err
	}
	return toEntryResponses(entries), nil
}
