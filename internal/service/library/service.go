package library

import (
	"context"
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	dom "github.com/cuihairu/playshelf/internal/ports"
)

// Service applies the library state machine on top of the persistence, user and
// event ports. It holds no per-entry state; concurrent writes to one (user, game)
// pair are not serialized and resolve last-write-wins in the repository.
type Service struct {
	entries   dom.LibraryRepository
	users     dom.UserRepository
	catalog   dom.GameCatalog
	publisher dom.EventPublisher
	now       func() time.Time
}

func NewService(entries dom.LibraryRepository, users dom.UserRepository, catalog dom.GameCatalog, publisher dom.EventPublisher) *Service {
	return &Service{
		entries:   entries,
		users:     users,
		catalog:   catalog,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// UpsertEntry sets the status of a game in the user's library. Setting NONE on
// a non-favorite entry deletes it; the bool result is false when no entry remains.
func (s *Service) UpsertEntry(ctx context.Context, p dom.Principal, userID string, gameID int64, status dom.GameStatus) (dom.LibraryEntry, bool, error) {
	if err := s.authorize(ctx, p, userID); err != nil {
		return dom.LibraryEntry{}, false, err
	}
	if err := s.requireGame(ctx, gameID); err != nil {
		return dom.LibraryEntry{}, false, err
	}

	existing, found, err := s.entries.FindByUserIDAndGameID(ctx, userID, gameID)
	if err != nil {
		return dom.LibraryEntry{}, false, err
	}
	if !found {
		if status == dom.StatusNone {
			return dom.LibraryEntry{}, false, nil
		}
		created, err := s.entries.Save(ctx, dom.LibraryEntry{
			UserID:  userID,
			GameID:  gameID,
			Status:  status,
			AddedAt: s.now(),
		})
		if err != nil {
			return dom.LibraryEntry{}, false, err
		}
		return created, true, nil
	}

	next := existing
	next.Status = status
	if next.IsEmpty() {
		if err := s.entries.DeleteByUserIDAndGameID(ctx, userID, gameID); err != nil {
			return dom.LibraryEntry{}, false, err
		}
		return dom.LibraryEntry{}, false, nil
	}
	updated, err := s.entries.Update(ctx, next)
	if err != nil {
		return dom.LibraryEntry{}, false, err
	}
	return updated, true, nil
}

func (s *Service) ListEntries(ctx context.Context, p dom.Principal, userID string) ([]dom.LibraryEntry, error) {
	if err := s.authorize(ctx, p, userID); err != nil {
		return nil, err
	}
	return s.entries.FindByUserID(ctx, userID)
}

func (s *Service) GetEntryStatus(ctx context.Context, p dom.Principal, userID string, gameID int64) (dom.LibraryEntry, bool, error) {
	if err := s.authorize(ctx, p, userID); err != nil {
		return dom.LibraryEntry{}, false, err
	}
	return s.entries.FindByUserIDAndGameID(ctx, userID, gameID)
}

// RemoveEntry deletes the entry; removing an absent entry is not an error.
func (s *Service) RemoveEntry(ctx context.Context, p dom.Principal, userID string, gameID int64) error {
	if err := s.authorize(ctx, p, userID); err != nil {
		return err
	}
	return s.entries.DeleteByUserIDAndGameID(ctx, userID, gameID)
}

// AddFavorite marks the game as favorite, creating a NONE entry when needed,
// and always publishes a favorite event once the write succeeded.
func (s *Service) AddFavorite(ctx context.Context, p dom.Principal, userID string, gameID int64) (dom.LibraryEntry, error) {
	if err := s.authorize(ctx, p, userID); err != nil {
		return dom.LibraryEntry{}, err
	}

	existing, found, err := s.entries.FindByUserIDAndGameID(ctx, userID, gameID)
	if err != nil {
		return dom.LibraryEntry{}, err
	}
	var saved dom.LibraryEntry
	if found {
		existing.IsFavorite = true
		saved, err = s.entries.Update(ctx, existing)
	} else {
		if err := s.requireGame(ctx, gameID); err != nil {
			return dom.LibraryEntry{}, err
		}
		saved, err = s.entries.Save(ctx, dom.LibraryEntry{
			UserID:     userID,
			GameID:     gameID,
			Status:     dom.StatusNone,
			AddedAt:    s.now(),
			IsFavorite: true,
		})
	}
	if err != nil {
		return dom.LibraryEntry{}, err
	}

	s.publish(ctx, userID, gameID, true)
	return saved, nil
}

// RemoveFavorite clears the favorite flag. An entry left with status NONE is deleted.
func (s *Service) RemoveFavorite(ctx context.Context, p dom.Principal, userID string, gameID int64) error {
	if err := s.authorize(ctx, p, userID); err != nil {
		return err
	}

	existing, found, err := s.entries.FindByUserIDAndGameID(ctx, userID, gameID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: user %s game %d", dom.ErrEntryNotFound, userID, gameID)
	}
	if existing.IsFavorite {
		s.publish(ctx, userID, gameID, false)
	}

	if existing.Status == dom.StatusNone {
		return s.entries.DeleteByUserIDAndGameID(ctx, userID, gameID)
	}
	existing.IsFavorite = false
	_, err = s.entries.Update(ctx, existing)
	return err
}

// ListFavoriteEntries pages through favorite entries; bounds are checked by the caller.
func (s *Service) ListFavoriteEntries(ctx context.Context, p dom.Principal, userID string, page, size int) (dom.Page[dom.LibraryEntry], error) {
	if err := s.authorize(ctx, p, userID); err != nil {
		return dom.Page[dom.LibraryEntry]{}, err
	}
	return s.entries.FindFavoritesPaged(ctx, userID, page, size)
}

// authorize requires an authenticated principal whose active stored account owns userID.
func (s *Service) authorize(ctx context.Context, p dom.Principal, userID string) error {
	if !p.Authenticated || p.Email == "" {
		return fmt.Errorf("%w: not authenticated", dom.ErrUnauthorized)
	}
	u, found, err := s.users.FindByEmail(ctx, p.Email)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: principal %s has no account", dom.ErrUnauthorized, p.Email)
	}
	if !u.Active {
		return fmt.Errorf("%w: account %s is deactivated", dom.ErrUnauthorized, u.ID)
	}
	if u.ID != userID {
		logx.WithContext(ctx).Infof("library: user %s denied access to library of %s", u.ID, userID)
		return fmt.Errorf("%w: user %s cannot access library of %s", dom.ErrUnauthorized, u.ID, userID)
	}
	return nil
}

func (s *Service) requireGame(ctx context.Context, gameID int64) error {
	switch s.catalog.Lookup(ctx, gameID).Status {
	case dom.LookupFound:
		return nil
	case dom.LookupUnavailable:
		return fmt.Errorf("%w: cannot confirm game %d", dom.ErrCatalogUnavailable, gameID)
	default:
		return fmt.Errorf("%w: %d", dom.ErrGameNotFound, gameID)
	}
}

func (s *Service) publish(ctx context.Context, userID string, gameID int64, favorite bool) {
	s.publisher.Publish(ctx, dom.FavoriteChangeEvent{
		UserID:     userID,
		GameID:     gameID,
		IsFavorite: favorite,
		Timestamp:  s.now(),
	})
}
