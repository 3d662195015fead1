package logic

import (
	"time"

	"github.com/cuihairu/playshelf/internal/ports"
	"github.com/cuihairu/playshelf/services/library/internal/types"
)

const releaseDateLayout = "2006-01-02"

func toEntryResponse(e ports.LibraryEntry) types.LibraryEntryResponse {
	return types.LibraryEntryResponse{
		UserId:     e.UserID,
		GameId:     e.GameID,
		Status:     string(e.Status),
		AddedAt:    e.AddedAt.UTC().Format(time.RFC3339),
		IsFavorite: e.IsFavorite,
	}
}

func toEntryResponses(arr []ports.LibraryEntry) []types.LibraryEntryResponse {
	out := make([]types.LibraryEntryResponse, 0, len(arr))
	for _, e := range arr {
		out = append(out, toEntryResponse(e))
	}
	return out
}

func toGameResponse(g ports.Game) types.GameResponse {
	resp := types.GameResponse{
		Id:            g.ID,
		Name:          g.Name,
		Genres:        nonNil(g.Genres),
		CoverImageUrl: g.CoverImageURL,
		Summary:       g.Summary,
		Storyline:     g.Storyline,
		Videos:        nonNil(g.Videos),
		Screenshots:   nonNil(g.Screenshots),
		Platforms:     nonNil(g.Platforms),
		Rating:        g.Rating,
		Artworks:      make([]types.ArtworkResponse, 0, len(g.Artworks)),
	}
	if g.ReleaseDate != nil {
		d := g.ReleaseDate.Format(releaseDateLayout)
		resp.ReleaseDate = &d
	}
	for _, a := range g.Artworks {
		resp.Artworks = append(resp.Artworks, types.ArtworkResponse{
			Id:           a.ID,
			AlphaChannel: a.AlphaChannel,
			Animated:     a.Animated,
			ArtworkType:  a.ArtworkType,
			Checksum:     a.Checksum,
			GameId:       a.GameID,
			Height:       a.Height,
			ImageId:      a.ImageID,
			Url:          a.URL,
			Width:        a.Width,
		})
	}
	return resp
}

func toGameResponses(arr []ports.Game) []types.GameResponse {
	out := make([]types.GameResponse, 0, len(arr))
	for _, g := range arr {
		out = append(out, toGameResponse(g))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
