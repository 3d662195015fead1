package types

type (
	LibraryListRequest struct {
		UserId string `path:"userId"`
	}

	EntryRequest struct {
		UserId string `path:"userId"`
		GameId int64  `path:"gameId"`
	}

	EntryUpsertRequest struct {
		UserId string `path:"userId"`
		GameId int64  `path:"gameId"`
		Status string `json:"status"`
	}

	LibraryEntryResponse struct {
		UserId     string `json:"userId"`
		GameId     int64  `json:"gameId"`
		Status     string `json:"status"`
		AddedAt    string `json:"addedAt"`
		IsFavorite bool   `json:"isFavorite"`
	}

	FavoritesListRequest struct {
		UserId string `path:"userId"`
		Page   int    `form:"page,default=0"`
		Size   int    `form:"size,default=20"`
	}

	FavoritesPageResponse struct {
		Content       []LibraryEntryResponse `json:"content"`
		TotalElements int64                  `json:"totalElements"`
		TotalPages    int                    `json:"totalPages"`
		Number        int                    `json:"number"`
		Size          int                    `json:"size"`
	}
)

type (
	GameSearchRequest struct {
		Name string `form:"name"`
	}

	GameDetailRequest struct {
		Id int64 `path:"id"`
	}

	GameBatchRequest struct {
		Ids []int64 `json:"ids"`
	}

	GameFilterRequest struct {
		Filter string `json:"filter,optional"`
		Sort   string `json:"sort,optional"`
		Limit  *int   `json:"limit,optional"`
		Offset *int   `json:"offset,optional"`
	}

	ArtworkResponse struct {
		Id           int64  `json:"id"`
		AlphaChannel bool   `json:"alphaChannel"`
		Animated     bool   `json:"animated"`
		ArtworkType  int64  `json:"artworkType"`
		Checksum     string `json:"checksum"`
		GameId       int64  `json:"gameId"`
		Height       int    `json:"height"`
		ImageId      string `json:"imageId"`
		Url          string `json:"url"`
		Width        int    `json:"width"`
	}

	GameResponse struct {
		Id            int64             `json:"id"`
		Name          string            `json:"name"`
		Genres        []string          `json:"genres"`
		ReleaseDate   *string           `json:"releaseDate"`
		CoverImageUrl string            `json:"coverImageUrl"`
		Summary       string            `json:"summary"`
		Storyline     string            `json:"storyline"`
		Videos        []string          `json:"videos"`
		Screenshots   []string          `json:"screenshots"`
		Platforms     []string          `json:"platforms"`
		Rating        *float64          `json:"rating"`
		Artworks      []ArtworkResponse `json:"artworks"`
	}

	GamePageResponse struct {
		Content       []GameResponse `json:"content"`
		TotalElements int64          `json:"totalElements"`
		TotalPages    int            `json:"totalPages"`
		Number        int            `json:"number"`
		Size          int            `json:"size"`
	}

	PlatformResponse struct {
		Id           int64  `json:"id"`
		Name         string `json:"name"`
		Generation   *int   `json:"generation"`
		PlatformType string `json:"platformType"`
	}
)

type (
	RegisterRequest struct {
		Username string `json:"username,optional"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	RegisterResponse struct {
		Id       string `json:"id"`
		Username string `json:"username,optional"`
		Email    string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	LoginResponse struct {
		Token     string `json:"token"`
		UserId    string `json:"userId"`
		ExpiresAt string `json:"expiresAt"`
	}
)
