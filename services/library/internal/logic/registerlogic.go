package logic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/cuihairu/playshelf/internal/auth/password"
	"github.com/cuihairu/playshelf/internal/ports"
	"github.com/cuihairu/playshelf/services/library/internal/svc"
	"github.com/cuihairu/playshelf/services/library/internal/types"
)

type RegisterLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRegisterLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RegisterLogic {
	return &RegisterLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *RegisterLogic) Register(req *types.RegisterRequest) (*types.RegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return nil, fmt.Errorf("%w: malformed email", ErrInvalidRequest)
	}
	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		username = email[:at]
	}

	u, err := l.svcCtx.Users.Create(l.ctx, ports.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	l.Infof("registered user %s", u.ID)
	return &types.RegisterResponse{Id: u.ID, Username: u.Username, Email: u.Email}, nil
}
