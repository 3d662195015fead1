package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/cuihairu/playshelf/services/library/internal/svc"
	"github.com/cuihairu/playshelf/services/library/internal/types"
)

type PlatformsListLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPlatformsListLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PlatformsListLogic {
	return &PlatformsListLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *PlatformsListLogic) PlatformsList() ([]types.PlatformResponse, error) {
	platforms := l.svcCtx.Catalog.ListPlatforms(l.ctx)
	out := make([]types.PlatformResponse, 0, len(platforms))
	for _, p := range platforms {
		out = append(out, types.PlatformResponse{
			Id:           p.ID,
			Name:         p.Name,
			Generation:   p.Generation,
			PlatformType: p.PlatformType.String(),
		})
	}
	return out, nil
}
