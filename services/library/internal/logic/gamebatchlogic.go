package logic

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/cuihairu/playshelf/services/library/internal/svc"
	"github.com/cuihairu/playshelf/services/library/internal/types"
)

type GameBatchLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGameBatchLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GameBatchLogic {
	return &GameBatchLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GameBatchLogic) GameBatch(req *types.GameBatchRequest) ([]types.GameResponse, error) {
	if len(req.Ids) > maxBatchIDs {
		return nil, fmt.Errorf("%w: at most %d ids", ErrInvalidRequest, maxBatchIDs)
	}
	return toGameResponses(l.svcCtx.Catalog.FindMultipleByIDs(l.ctx, req.Ids)), nil
}
