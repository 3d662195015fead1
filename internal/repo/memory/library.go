package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	dom "github.com/cuihairu/playshelf/internal/ports"
)

type entryKey struct {
	userID string
	gameID int64
}

// LibraryRepo keeps library entries in process memory.
type LibraryRepo struct {
	mu      sync.RWMutex
	entries map[entryKey]dom.LibraryEntry
}

var _ dom.LibraryRepository = (*LibraryRepo)(nil)

func NewLibraryRepo() *LibraryRepo {
	return &LibraryRepo{entries: make(map[entryKey]dom.LibraryEntry)}
}

func (r *LibraryRepo) Save(_ context.Context, e dom.LibraryEntry) (dom.LibraryEntry, error) {
	if e.UserID == "" {
		return dom.LibraryEntry{}, fmt.Errorf("library entry: empty user id")
	}
	r.mu.Lock()
	r.entries[entryKey{e.UserID, e.GameID}] = e
	r.mu.Unlock()
	return e, nil
}

func (r *LibraryRepo) Update(ctx context.Context, e dom.LibraryEntry) (dom.LibraryEntry, error) {
	return r.Save(ctx, e)
}

func (r *LibraryRepo) FindByUserIDAndGameID(_ context.Context, userID string, gameID int64) (dom.LibraryEntry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[entryKey{userID, gameID}]
	return e, ok, nil
}

// FindByUserID returns the user's entries, oldest first.
func (r *LibraryRepo) FindByUserID(_ context.Context, userID string) ([]dom.LibraryEntry, error) {
	return r.collect(userID, func(dom.LibraryEntry) bool { return true }), nil
}

func (r *LibraryRepo) DeleteByUserIDAndGameID(_ context.Context, userID string, gameID int64) error {
	r.mu.Lock()
	delete(r.entries, entryKey{userID, gameID})
	r.mu.Unlock()
	return nil
}

func (r *LibraryRepo) FindFavoritesPaged(_ context.Context, userID string, page, size int) (dom.Page[dom.LibraryEntry], error) {
	if page < 0 || size < 1 {
		return dom.Page[dom.LibraryEntry]{}, fmt.Errorf("favorites page %d size %d out of range", page, size)
	}
	all := r.collect(userID, func(e dom.LibraryEntry) bool { return e.IsFavorite })
	out := dom.Page[dom.LibraryEntry]{
		Content:       []dom.LibraryEntry{},
		TotalElements: int64(len(all)),
		PageNumber:    page,
		PageSize:      size,
	}
	start := page * size
	if start >= len(all) {
		return out, nil
	}
	end := min(start+size, len(all))
	out.Content = append(out.Content, all[start:end]...)
	return out, nil
}

func (r *LibraryRepo) collect(userID string, keep func(dom.LibraryEntry) bool) []dom.LibraryEntry {
	r.mu.RLock()
	out := make([]dom.LibraryEntry, 0)
	for k, e := range r.entries {
		if k.userID == userID && keep(e) {
			out = append(out, e)
		}
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].AddedAt.Equal(out[j].AddedAt) {
			return out[i].GameID < out[j].GameID
		}
		return out[i].AddedAt.Before(out[j].AddedAt)
	})
	return out
}
