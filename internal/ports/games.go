package ports

import (
	"context"
	"time"
)

// Game is the catalog's read-only view of a title. It is never persisted locally,
// library entries only reference it by ID.
type Game struct {
	ID            int64
	Name          string
	Genres        []string
	ReleaseDate   *time.Time
	CoverImageURL string
	Summary       string
	Storyline     string
	Videos        []string
	Screenshots   []string
	Platforms     []string
	Rating        *float64
	Artworks      []Artwork
}

// Artwork is an artwork image attached to a game.
type Artwork struct {
	ID           int64
	AlphaChannel bool
	Animated     bool
	ArtworkType  int64
	Checksum     string
	GameID       int64
	Height       int
	ImageID      string
	URL          string
	Width        int
}

// PlatformType is the closed set of platform categories exposed by the catalog.
type PlatformType int

const (
	PlatformUnknown         PlatformType = 0
	PlatformConsole         PlatformType = 1
	PlatformArcade          PlatformType = 2
	PlatformPlatform        PlatformType = 3
	PlatformOperatingSystem PlatformType = 4
	PlatformPortableConsole PlatformType = 5
	PlatformComputer        PlatformType = 6
)

var platformTypeNames = map[PlatformType]string{
	PlatformUnknown:         "UNKNOWN",
	PlatformConsole:         "CONSOLE",
	PlatformArcade:          "ARCADE",
	PlatformPlatform:        "PLATFORM",
	PlatformOperatingSystem: "OPERATING_SYSTEM",
	PlatformPortableConsole: "PORTABLE_CONSOLE",
	PlatformComputer:        "COMPUTER",
}

// PlatformTypeFromCode maps the catalog's numeric code; nil and unknown codes become PlatformUnknown.
func PlatformTypeFromCode(code *int) PlatformType {
	if code == nil {
		return PlatformUnknown
	}
	t := PlatformType(*code)
	if _, ok := platformTypeNames[t]; !ok {
		return PlatformUnknown
	}
	return t
}

func (t PlatformType) String() string {
	if name, ok := platformTypeNames[t]; ok {
		return name
	}
	return platformTypeNames[PlatformUnknown]
}

// Platform is a gaming platform as listed by the catalog.
type Platform struct {
	ID           int64
	Name         string
	Generation   *int
	PlatformType PlatformType
}

// Page is one slice of a larger ordered result set. PageNumber is zero based.
type Page[T any] struct {
	Content       []T
	TotalElements int64
	PageNumber    int
	PageSize      int
}

// TotalPages derives the page count from TotalElements and PageSize.
func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return int((p.TotalElements + int64(p.PageSize) - 1) / int64(p.PageSize))
}

// LookupStatus tells a confirmed miss apart from a catalog that could not answer.
type LookupStatus int

const (
	LookupFound LookupStatus = iota
	LookupAbsent
	LookupUnavailable
)

// GameLookup is the outcome of a single-game catalog lookup.
type GameLookup struct {
	Game   Game
	Status LookupStatus
}

// GameCatalog is the read side of the external game catalog.
// Implementations never return remote failures; they degrade to empty results.
type GameCatalog interface {
	FindByID(ctx context.Context, id int64) (Game, bool)
	Lookup(ctx context.Context, id int64) GameLookup
	FindMultipleByIDs(ctx context.Context, ids []int64) []Game
	SearchByName(ctx context.Context, name string) []Game
	FilterGames(ctx context.Context, q FilterQuery) Page[Game]
}

// PlatformCatalog lists platforms known to the catalog.
type PlatformCatalog interface {
	ListPlatforms(ctx context.Context) []Platform
}

// FilterQuery carries the remote filter and sort expressions verbatim.
// Nil Limit/Offset select the catalog defaults.
type FilterQuery struct {
	Filter string
	Sort   string
	Limit  *int
	Offset *int
}
