package usersgorm

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	dom "github.com/cuihairu/playshelf/internal/ports"
)

// PortRepo adapts *Repo to the ports.UserRepository interface.
type PortRepo struct{ r *Repo }

func NewPortRepo(r *Repo) *PortRepo { return &PortRepo{r: r} }

var _ dom.UserRepository = (*PortRepo)(nil)

func (p *PortRepo) FindByEmail(ctx context.Context, email string) (dom.User, bool, error) {
	u, err := p.r.GetUserByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dom.User{}, false, nil
	}
	if err != nil {
		return dom.User{}, false, err
	}
	return toDomain(u), true, nil
}

// Create stores u and maps a duplicate email to ports.ErrEmailTaken.
func (p *PortRepo) Create(ctx context.Context, u dom.User) (dom.User, error) {
	exists, err := p.r.EmailExists(ctx, u.Email)
	if err != nil {
		return dom.User{}, err
	}
	if exists {
		return dom.User{}, fmt.Errorf("%w: %s", dom.ErrEmailTaken, u.Email)
	}
	m := &UserAccount{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Active:       u.Active,
		CreatedAt:    u.CreatedAt,
	}
	if err := p.r.CreateUser(ctx, m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dom.User{}, fmt.Errorf("%w: %s", dom.ErrEmailTaken, u.Email)
		}
		return dom.User{}, err
	}
	return toDomain(m), nil
}

func toDomain(u *UserAccount) dom.User {
	return dom.User{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Active:       u.Active,
		CreatedAt:    u.CreatedAt,
	}
}
