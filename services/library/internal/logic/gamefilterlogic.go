package logic

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/cuihairu/playshelf/internal/ports"
	"github.com/cuihairu/playshelf/services/library/internal/svc"
	"github.com/cuihairu/playshelf/services/library/internal/types"
)

type GameFilterLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGameFilterLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GameFilterLogic {
	return &GameFilterLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GameFilterLogic) GameFilter(req *types.GameFilterRequest) (*types.GamePageResponse, error) {
	if req.Limit != nil && (*req.Limit < 1 || *req.Limit > maxFilterLimit) {
		return nil, fmt.Errorf("%w: limit %d", ErrInvalidRequest, *req.Limit)
	}
	if req.Offset != nil && *req.Offset < 0 {
		return nil, fmt.Errorf("%w: offset %d", ErrInvalidRequest, *req.Offset)
	}
	page := l.svcCtx.Catalog.FilterGames(l.ctx, ports.FilterQuery{
		Filter: req.Filter,
		Sort:   req.Sort,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	return &types.GamePageResponse{
		Content:       toGameResponses(page.Content),
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages(),
		Number:        page.PageNumber,
		Size:          page.PageSize,
	}, nil
}
