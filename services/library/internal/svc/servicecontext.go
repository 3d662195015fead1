package svc

import (
	"errors"
	"io"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/cuihairu/playshelf/internal/auth/token"
	"github.com/cuihairu/playshelf/internal/catalog"
	"github.com/cuihairu/playshelf/internal/db"
	"github.com/cuihairu/playshelf/internal/events"
	"github.com/cuihairu/playshelf/internal/ports"
	librarygorm "github.com/cuihairu/playshelf/internal/repo/gorm/library"
	usersgorm "github.com/cuihairu/playshelf/internal/repo/gorm/users"
	"github.com/cuihairu/playshelf/internal/service/library"
	"github.com/cuihairu/playshelf/services/library/internal/config"
)

// Catalog is the read side of the remote game catalog used by the handlers.
type Catalog interface {
	ports.GameCatalog
	ports.PlatformCatalog
}

type ServiceContext struct {
	Config  config.Config
	Catalog Catalog
	Library *library.Service
	Users   ports.UserRepository
	Tokens  *token.Manager
	Events  ports.EventPublisher

	closers []io.Closer
}

// Deps are the ports a ServiceContext is assembled from.
type Deps struct {
	Catalog Catalog
	Entries ports.LibraryRepository
	Users   ports.UserRepository
	Events  ports.EventPublisher
}

// NewServiceContext wires the production adapters: gorm storage, the remote
// catalog client and the configured event publisher.
func NewServiceContext(c config.Config) *ServiceContext {
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		logx.Must(errors.New("auth: jwt secret empty"))
	}
	gdb, err := db.Open(c.Database.DataSource)
	logx.Must(err)
	if c.Database.AutoMigrate {
		logx.Must(db.Migrate(gdb))
	}
	sqlDB, err := gdb.DB()
	logx.Must(err)

	client, err := catalog.NewClient(c.Catalog)
	logx.Must(err)
	pub := events.New(c.Events)

	ctx := NewServiceContextWith(c, Deps{
		Catalog: client,
		Entries: librarygorm.NewPortRepo(librarygorm.NewRepo(gdb)),
		Users:   usersgorm.NewPortRepo(usersgorm.New(gdb)),
		Events:  pub,
	})
	ctx.closers = append(ctx.closers, pub, sqlDB)
	return ctx
}

func NewServiceContextWith(c config.Config, d Deps) *ServiceContext {
	return &ServiceContext{
		Config:  c,
		Catalog: d.Catalog,
		Library: library.NewService(d.Entries, d.Users, d.Catalog, d.Events),
		Users:   d.Users,
		Tokens:  token.NewManager(c.Auth.JWTSecret),
		Events:  d.Events,
	}
}

// Close flushes the publisher and releases the database.
func (s *ServiceContext) Close() {
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			logx.Errorf("close: %v", err)
		}
	}
}
