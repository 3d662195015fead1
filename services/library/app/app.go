package app

import (
	"fmt"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"

	"github.com/cuihairu/playshelf/internal/logging"
	"github.com/cuihairu/playshelf/services/library/internal/config"
	"github.com/cuihairu/playshelf/services/library/internal/handler"
	"github.com/cuihairu/playshelf/services/library/internal/svc"
)

// Options override selected config values; zero values keep the file's setting.
type Options struct {
	ConfigFile          string
	Port                int
	DataSource          string
	JWTSecret           string
	CatalogClientID     string
	CatalogClientSecret string
}

func loadConfig(o Options) (config.Config, error) {
	var c config.Config
	if err := conf.Load(o.ConfigFile, &c, conf.UseEnv()); err != nil {
		return c, fmt.Errorf("load %s: %w", o.ConfigFile, err)
	}
	if o.Port > 0 {
		c.Port = o.Port
	}
	if o.DataSource != "" {
		c.Database.DataSource = o.DataSource
	}
	if o.JWTSecret != "" {
		c.Auth.JWTSecret = o.JWTSecret
	}
	if o.CatalogClientID != "" {
		c.Catalog.ClientID = o.CatalogClientID
	}
	if o.CatalogClientSecret != "" {
		c.Catalog.ClientSecret = o.CatalogClientSecret
	}
	return c, nil
}

// Run serves the library REST API until the process is stopped.
func Run(o Options) error {
	c, err := loadConfig(o)
	if err != nil {
		return err
	}

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()
	logs := logging.UseRotatingFile(c.LogFile)
	defer logs.Close()

	ctx := svc.NewServiceContext(c)
	defer ctx.Close()
	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting library server at %s:%d...\n", c.Host, c.Port)
	server.Start()
	return nil
}
