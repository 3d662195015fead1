package ports

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUnauthorized       = errors.New("unauthorized library access")
	ErrGameNotFound       = errors.New("game not found")
	ErrEntryNotFound      = errors.New("library entry not found")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidStatus      = errors.New("invalid game status")
)

// GameStatus is the play state a user assigns to a library entry.
type GameStatus string

const (
	StatusNone       GameStatus = "NONE"
	StatusWantToPlay GameStatus = "WANT_TO_PLAY"
	StatusPlaying    GameStatus = "PLAYING"
	StatusCompleted  GameStatus = "COMPLETED"
	StatusAbandoned  GameStatus = "ABANDONED"
)

var knownStatuses = []GameStatus{StatusNone, StatusWantToPlay, StatusPlaying, StatusCompleted, StatusAbandoned}

// ParseGameStatus accepts any known status, case-insensitively.
func ParseGameStatus(s string) (GameStatus, error) {
	v := GameStatus(strings.ToUpper(strings.TrimSpace(s)))
	for _, st := range knownStatuses {
		if v == st {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// LibraryEntry is one user's relationship to one game.
// A stored entry never has Status NONE together with IsFavorite false.
type LibraryEntry struct {
	UserID     string
	GameID     int64
	Status     GameStatus
	AddedAt    time.Time
	IsFavorite bool
}

// IsEmpty reports whether the entry carries no information and must not be stored.
func (e LibraryEntry) IsEmpty() bool { return e.Status == StatusNone && !e.IsFavorite }

// User is the stored account used to authorize library access.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
}

// Principal is the caller identity resolved at the request boundary.
type Principal struct {
	Email         string
	Authenticated bool
}

// Anonymous is the principal of a request that carried no valid credentials.
var Anonymous = Principal{}

// FavoriteChangeEvent records one favorite transition. Values are immutable once built.
type FavoriteChangeEvent struct {
	UserID     string
	GameID     int64
	IsFavorite bool
	Timestamp  time.Time
}

// LibraryRepository persists library entries keyed by (user, game).
// Concurrent writes to the same key resolve last-write-wins.
type LibraryRepository interface {
	Save(ctx context.Context, e LibraryEntry) (LibraryEntry, error)
	Update(ctx context.Context, e LibraryEntry) (LibraryEntry, error)
	FindByUserIDAndGameID(ctx context.Context, userID string, gameID int64) (LibraryEntry, bool, error)
	FindByUserID(ctx context.Context, userID string) ([]LibraryEntry, error)
	DeleteByUserIDAndGameID(ctx context.Context, userID string, gameID int64) error
	FindFavoritesPaged(ctx context.Context, userID string, page, size int) (Page[LibraryEntry], error)
}

// UserRepository looks up and stores accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (User, bool, error)
	Create(ctx context.Context, u User) (User, error)
}

// EventPublisher hands favorite events to a transport. Publish never reports
// delivery failures to the caller; implementations log them.
type EventPublisher interface {
	Publish(ctx context.Context, evt FavoriteChangeEvent)
	Close() error
}
