package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	dom "github.com/cuihairu/playshelf/internal/ports"
)

// UserRepo is an in-memory account store keyed by lowercased email.
type UserRepo struct {
	mu    sync.RWMutex
	users map[string]dom.User
}

var _ dom.UserRepository = (*UserRepo)(nil)

func NewUserRepo(seed ...dom.User) *UserRepo {
	r := &UserRepo{users: make(map[string]dom.User, len(seed))}
	for _, u := range seed {
		r.users[strings.ToLower(u.Email)] = u
	}
	return r
}

func (r *UserRepo) FindByEmail(_ context.Context, email string) (dom.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[strings.ToLower(email)]
	return u, ok, nil
}

// Create stores u, assigning an id when none is set.
func (r *UserRepo) Create(_ context.Context, u dom.User) (dom.User, error) {
	key := strings.ToLower(u.Email)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[key]; exists {
		return dom.User{}, fmt.Errorf("%w: %s", dom.ErrEmailTaken, u.Email)
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	r.users[key] = u
	return u, nil
}
