package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cuihairu/playshelf/internal/auth/token"
	"github.com/cuihairu/playshelf/internal/ports"
	"github.com/cuihairu/playshelf/services/library/internal/svc"
)

func principalFor(t *testing.T, m *AuthMiddleware, header string) ports.Principal {
	t.Helper()
	var got ports.Principal
	called := false
	h := m.Handle(func(w http.ResponseWriter, r *http.Request) {
		called = true
		got = svc.PrincipalFromContext(r.Context())
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	h(httptest.NewRecorder(), req)
	if !called {
		t.Fatalf("middleware must always call next")
	}
	return got
}

func TestAuthMiddlewareResolvesPrincipal(t *testing.T) {
	tokens := token.NewManager("test-secret")
	m := NewAuthMiddleware(&svc.ServiceContext{Tokens: tokens})

	tok, err := tokens.Sign("alice@example.com", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	p := principalFor(t, m, "Bearer "+tok)
	if !p.Authenticated || p.Email != "alice@example.com" {
		t.Fatalf("unexpected principal: %+v", p)
	}

	other, _ := token.NewManager("other-secret").Sign("alice@example.com", time.Hour)
	for _, header := range []string{"", "Bearer ", "Basic abc", "Bearer garbage", "Bearer " + other} {
		if p := principalFor(t, m, header); p != ports.Anonymous {
			t.Fatalf("header %q: expected anonymous, got %+v", header, p)
		}
	}
}
