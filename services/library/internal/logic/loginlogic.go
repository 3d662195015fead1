package logic

import (
	"context"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/cuihairu/playshelf/internal/auth/password"
	"github.com/cuihairu/playshelf/internal/ports"
	"github.com/cuihairu/playshelf/services/library/internal/svc"
	"github.com/cuihairu/playshelf/services/library/internal/types"
)

type LoginLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewLoginLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LoginLogic {
	return &LoginLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *LoginLogic) Login(req *types.LoginRequest) (*types.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, ErrInvalidRequest
	}
	u, found, err := l.svcCtx.Users.FindByEmail(l.ctx, email)
	if err != nil {
		return nil, err
	}
	if !found || !u.Active || !password.Matches(u.PasswordHash, req.Password) {
		return nil, ports.ErrInvalidCredentials
	}

	ttl := l.svcCtx.Config.Auth.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	tok, err := l.svcCtx.Tokens.Sign(u.Email, ttl)
	if err != nil {
		return nil, err
	}
	return &types.LoginResponse{
		Token:     tok,
		UserId:    u.ID,
		ExpiresAt: time.Now().Add(ttl).UTC().Format(time.RFC3339),
	}, nil
}
