package svc

import (
	"context"

	"github.com/cuihairu/playshelf/internal/ports"
)

type principalKey struct{}

func WithPrincipal(ctx context.Context, p ports.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns ports.Anonymous when no principal was attached.
func PrincipalFromContext(ctx context.Context) ports.Principal {
	if p, ok := ctx.Value(principalKey{}).(ports.Principal); ok {
		return p
	}
	return ports.Anonymous
}
