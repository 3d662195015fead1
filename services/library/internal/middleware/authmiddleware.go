package middleware

import (
	"net/http"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/cuihairu/playshelf/internal/ports"
	"github.com/cuihairu/playshelf/services/library/internal/svc"
)

// AuthMiddleware resolves the bearer token into a principal. It never rejects a
// request: routes that need an owner fail later in the library service.
type AuthMiddleware struct {
	ctx *svc.ServiceContext
}

func NewAuthMiddleware(ctx *svc.ServiceContext) *AuthMiddleware {
	return &AuthMiddleware{ctx: ctx}
}

func (m *AuthMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		next(w, r.WithContext(svc.WithPrincipal(r.Context(), m.resolve(r))))
	}
}

func (m *AuthMiddleware) resolve(r *http.Request) ports.Principal {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") || m.ctx.Tokens == nil {
		return ports.Anonymous
	}
	tok := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	if tok == "" {
		return ports.Anonymous
	}
	email, err := m.ctx.Tokens.Verify(tok)
	if err != nil {
		logx.WithContext(r.Context()).Infof("auth: rejected bearer token: %v", err)
		return ports.Anonymous
	}
	return ports.Principal{Email: email, Authenticated: true}
}
