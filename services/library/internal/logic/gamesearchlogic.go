package logic

import (
	"context"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/cuihairu/playshelf/services/library/internal/svc"
	"github.com/cuihairu/playshelf/services/library/internal/types"
)

type GameSearchLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGameSearchLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GameSearchLogic {
	return &GameSearchLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GameSearchLogic) GameSearch(req *types.GameSearchRequest) ([]types.GameResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrInvalidRequest
	}
	return toGameResponses(l.svcCtx.Catalog.SearchByName(l.ctx, name)), nil
}
