package servecmd

import (
	"github.com/spf13/cobra"

	"github.com/cuihairu/playshelf/internal/cli/common"
	"github.com/cuihairu/playshelf/services/library/app"
)

// New returns `playshelf serve` command.
func New() *cobra.Command {
	cmd := &cobra.Command{Use: "serve", Short: "Run the library REST service"}
	cmd.Flags().String("config", "etc/library.yaml", "service config file (yaml)")
	cmd.Flags().Int("port", 0, "listen port (overrides config)")
	cmd.Flags().String("dsn", "", "database DSN (overrides config)")
	cmd.Flags().String("jwt-secret", "", "token signing secret (overrides config)")
	cmd.Flags().String("catalog.client-id", "", "catalog client id (overrides config)")
	cmd.Flags().String("catalog.client-secret", "", "catalog client secret (overrides config)")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		v := common.Bind(cmd)
		return app.Run(app.Options{
			ConfigFile:          v.GetString("config"),
			Port:                v.GetInt("port"),
			DataSource:          v.GetString("dsn"),
			JWTSecret:           v.GetString("jwt-secret"),
			CatalogClientID:     v.GetString("catalog.client-id"),
			CatalogClientSecret: v.GetString("catalog.client-secret"),
		})
	}
	return cmd
}
