package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"github.com/cuihairu/playshelf/services/library/internal/middleware"
	"github.com/cuihairu/playshelf/services/library/internal/svc"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	auth := middleware.NewAuthMiddleware(serverCtx)

	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{auth.Handle},
			[]rest.Route{
				{
					Method:  http.MethodGet,
					Path:    "/api/v1/users/:userId/library",
					Handler: LibraryListHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/api/v1/users/:userId/library/:gameId",
					Handler: EntryGetHandler(serverCtx),
				},
				{
					Method:  http.MethodPut,
					Path:    "/api/v1/users/:userId/library/:gameId",
					Handler: EntryUpsertHandler(serverCtx),
				},
				{
					Method:  http.MethodDelete,
					Path:    "/api/v1/users/:userId/library/:gameId",
					Handler: EntryDeleteHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/api/v1/users/:userId/favorites/:gameId",
					Handler: FavoriteAddHandler(serverCtx),
				},
				{
					Method:  http.MethodDelete,
					Path:    "/api/v1/users/:userId/favorites/:gameId",
					Handler: FavoriteRemoveHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/api/v1/users/:userId/favorites",
					Handler: FavoritesListHandler(serverCtx),
				},
			}...,
		),
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/games/search",
				Handler: GameSearchHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/games/:id",
				Handler: GameDetailHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/v1/games/batch",
				Handler: GameBatchHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/v1/games/filter",
				Handler: GameFilterHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/platforms",
				Handler: PlatformsListHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/api/v1/users/register",
				Handler: RegisterHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/v1/users/login",
				Handler: LoginHandler(serverCtx),
			},
		},
	)
}
