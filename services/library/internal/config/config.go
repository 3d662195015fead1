package config

import (
	"time"

	"github.com/zeromicro/go-zero/rest"

	"github.com/cuihairu/playshelf/internal/catalog"
	"github.com/cuihairu/playshelf/internal/events"
	"github.com/cuihairu/playshelf/internal/logging"
)

type Config struct {
	rest.RestConf

	Database struct {
		// DataSource is a postgres URL or sqlite DSN; empty means data/playshelf.db.
		DataSource  string `json:",optional"`
		AutoMigrate bool   `json:",default=true"`
	}

	Auth struct {
		JWTSecret string        `json:",optional"`
		TokenTTL  time.Duration `json:",default=24h"`
	}

	Catalog catalog.Config `json:",optional"`
	Events  events.Config  `json:",optional"`
	LogFile logging.FileConf `json:",optional"`
}
