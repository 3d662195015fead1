package migratecmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/cuihairu/playshelf/internal/cli/common"
	"github.com/cuihairu/playshelf/internal/db"
)

// New returns `playshelf migrate` command.
func New() *cobra.Command {
	cmd := &cobra.Command{Use: "migrate", Short: "Create or update the users and user_games tables"}
	cmd.Flags().String("dsn", "", "database DSN (postgres URL or sqlite DSN; empty uses data/playshelf.db)")
	common.AddLogFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		v := common.Bind(cmd)
		logs := common.SetupLogger(v)
		defer logs.Close()

		gdb, err := db.Open(v.GetString("dsn"))
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		if sqlDB, err := gdb.DB(); err == nil {
			defer sqlDB.Close()
		}
		if err := db.Migrate(gdb); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logx.Infof("migrations applied")
		fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
		return nil
	}
	return cmd
}
