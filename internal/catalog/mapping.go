package catalog

import (
	"fmt"
	"time"

	"github.com/cuihairu/playshelf/internal/ports"
)

const (
	PlaceholderImageURL = "https://placehold.co/600x400"
	coverURLTemplate    = "https://images.igdb.com/igdb/image/upload/t_cover_big/%s.jpg"
	screenshotTemplate  = "https://images.igdb.com/igdb/image/upload/t_screenshot_big/%s.jpg"
	videoURLTemplate    = "https://www.youtube.com/watch?v=%s"
)

type authResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

type countResponse struct {
	Count int64 `json:"count"`
}

type namedRef struct {
	Name string `json:"name"`
}

type imageRef struct {
	ImageID string `json:"image_id"`
}

type videoRef struct {
	VideoID string `json:"video_id"`
}

type artworkResponse struct {
	ID           int64  `json:"id"`
	AlphaChannel bool   `json:"alpha_channel"`
	Animated     bool   `json:"animated"`
	ArtworkType  int64  `json:"artwork_type"`
	Checksum     string `json:"checksum"`
	Game         int64  `json:"game"`
	Height       int    `json:"height"`
	ImageID      string `json:"image_id"`
	URL          string `json:"url"`
	Width        int    `json:"width"`
}

type platformResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Generation   *int   `json:"generation"`
	PlatformType *int   `json:"platform_type"`
}

type gameResponse struct {
	ID               int64              `json:"id"`
	Name             string             `json:"name"`
	Genres           []namedRef         `json:"genres"`
	FirstReleaseDate *int64             `json:"first_release_date"`
	Cover            *imageRef          `json:"cover"`
	Summary          string             `json:"summary"`
	Storyline        string             `json:"storyline"`
	Videos           []videoRef         `json:"videos"`
	Screenshots      []imageRef         `json:"screenshots"`
	Platforms        []platformResponse `json:"platforms"`
	Rating           *float64           `json:"rating"`
	Artworks         []artworkResponse  `json:"artworks"`
}

func toGame(r gameResponse) ports.Game {
	g := ports.Game{
		ID:            r.ID,
		Name:          r.Name,
		Genres:        make([]string, 0, len(r.Genres)),
		ReleaseDate:   releaseDate(r.FirstReleaseDate),
		CoverImageURL: coverURL(r.Cover),
		Summary:       r.Summary,
		Storyline:     r.Storyline,
		Videos:        make([]string, 0, len(r.Videos)),
		Screenshots:   make([]string, 0, len(r.Screenshots)),
		Platforms:     make([]string, 0, len(r.Platforms)),
		Rating:        r.Rating,
		Artworks:      make([]ports.Artwork, 0, len(r.Artworks)),
	}
	for _, genre := range r.Genres {
		g.Genres = append(g.Genres, genre.Name)
	}
	for _, v := range r.Videos {
		g.Videos = append(g.Videos, fmt.Sprintf(videoURLTemplate, v.VideoID))
	}
	for _, s := range r.Screenshots {
		g.Screenshots = append(g.Screenshots, fmt.Sprintf(screenshotTemplate, s.ImageID))
	}
	for _, p := range r.Platforms {
		g.Platforms = append(g.Platforms, p.Name)
	}
	for _, a := range r.Artworks {
		g.Artworks = append(g.Artworks, ports.Artwork{
			ID:           a.ID,
			AlphaChannel: a.AlphaChannel,
			Animated:     a.Animated,
			ArtworkType:  a.ArtworkType,
			Checksum:     a.Checksum,
			GameID:       a.Game,
			Height:       a.Height,
			ImageID:      a.ImageID,
			URL:          a.URL,
			Width:        a.Width,
		})
	}
	return g
}

func toGames(rs []gameResponse) []ports.Game {
	out := make([]ports.Game, 0, len(rs))
	for _, r := range rs {
		out = append(out, toGame(r))
	}
	return out
}

func toPlatform(r platformResponse) ports.Platform {
	return ports.Platform{
		ID:           r.ID,
		Name:         r.Name,
		Generation:   r.Generation,
		PlatformType: ports.PlatformTypeFromCode(r.PlatformType),
	}
}

// releaseDate converts epoch seconds to a calendar date in UTC.
func releaseDate(epoch *int64) *time.Time {
	if epoch == nil {
		return nil
	}
	t := time.Unix(*epoch, 0).UTC()
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

func coverURL(cover *imageRef) string {
	if cover == nil || cover.ImageID == "" {
		return PlaceholderImageURL
	}
	return fmt.Sprintf(coverURLTemplate, cover.ImageID)
}
