package library

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	dom "github.com/cuihairu/playshelf/internal/ports"
)

// PortRepo adapts *Repo to the ports.LibraryRepository interface.
type PortRepo struct{ r *Repo }

func NewPortRepo(r *Repo) *PortRepo { return &PortRepo{r: r} }

var _ dom.LibraryRepository = (*PortRepo)(nil)

func (p *PortRepo) Save(ctx context.Context, e dom.LibraryEntry) (dom.LibraryEntry, error) {
	m := toModel(e)
	if err := p.r.Save(ctx, m); err != nil {
		return dom.LibraryEntry{}, err
	}
	return toDomain(m), nil
}

func (p *PortRepo) Update(ctx context.Context, e dom.LibraryEntry) (dom.LibraryEntry, error) {
	return p.Save(ctx, e)
}

func (p *PortRepo) FindByUserIDAndGameID(ctx context.Context, userID string, gameID int64) (dom.LibraryEntry, bool, error) {
	m, err := p.r.Get(ctx, userID, gameID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dom.LibraryEntry{}, false, nil
	}
	if err != nil {
		return dom.LibraryEntry{}, false, err
	}
	return toDomain(m), true, nil
}

func (p *PortRepo) FindByUserID(ctx context.Context, userID string) ([]dom.LibraryEntry, error) {
	arr, err := p.r.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toDomainList(arr), nil
}

func (p *PortRepo) DeleteByUserIDAndGameID(ctx context.Context, userID string, gameID int64) error {
	return p.r.Delete(ctx, userID, gameID)
}

func (p *PortRepo) FindFavoritesPaged(ctx context.Context, userID string, page, size int) (dom.Page[dom.LibraryEntry], error) {
	if page < 0 || size < 1 {
		return dom.Page[dom.LibraryEntry]{}, fmt.Errorf("favorites page %d size %d out of range", page, size)
	}
	arr, total, err := p.r.ListFavorites(ctx, userID, page*size, size)
	if err != nil {
		return dom.Page[dom.LibraryEntry]{}, err
	}
	return dom.Page[dom.LibraryEntry]{
		Content:       toDomainList(arr),
		TotalElements: total,
		PageNumber:    page,
		PageSize:      size,
	}, nil
}

func toModel(e dom.LibraryEntry) *UserGame {
	return &UserGame{
		UserID:     e.UserID,
		GameID:     e.GameID,
		Status:     string(e.Status),
		AddedAt:    e.AddedAt.UTC(),
		IsFavorite: e.IsFavorite,
	}
}

func toDomain(m *UserGame) dom.LibraryEntry {
	return dom.LibraryEntry{
		UserID:     m.UserID,
		GameID:     m.GameID,
		Status:     dom.GameStatus(m.Status),
		AddedAt:    m.AddedAt.UTC(),
		IsFavorite: m.IsFavorite,
	}
}

func toDomainList(arr []*UserGame) []dom.LibraryEntry {
	out := make([]dom.LibraryEntry, 0, len(arr))
	for _, m := range arr {
		if m == nil {
			continue
		}
		out = append(out, toDomain(m))
	}
	return out
}
