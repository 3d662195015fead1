package logic

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/cuihairu/playshelf/services/library/internal/svc"
	"github.com/cuihairu/playshelf/services/library/internal/types"
)

type FavoritesListLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewFavoritesListLogic(ctx context.Context, svcCtx *svc.ServiceContext) *FavoritesListLogic {
	return &FavoritesListLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// FavoritesList pages favorites; page is zero based and size must be within [1, 100].
func (l *FavoritesListLogic) FavoritesList(req *types.FavoritesListRequest) (*types.FavoritesPageResponse, error) {
	if req.Page < 0 || req.Size < 1 || req.Size > maxFavoritesSize {
		return nil, fmt.Errorf("%w: page %d size %d", ErrInvalidRequest, req.Page, req.Size)
	}
	page, err := l.svcCtx.Library.ListFavoriteEntries(l.ctx, svc.PrincipalFromContext(l.ctx), req.UserId, req.Page, req.Size)
	if err != nil {
		return nil, err
	}
	return &types.FavoritesPageResponse{
		Content:       toEntryResponses(page.Content),
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages(),
		Number:        page.PageNumber,
		Size:          page.PageSize,
	}, nil
}
