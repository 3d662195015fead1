package common

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cuihairu/playshelf/internal/logging"
)

// AddLogFlags registers the log.* flags read by SetupLogger.
func AddLogFlags(cmd *cobra.Command) {
	cmd.Flags().String("log.level", "info", "log level: debug|info|error|severe")
	cmd.Flags().String("log.file", "", "log file path (if set, enable rotation)")
	cmd.Flags().Int("log.max_size", 100, "max size of log file in MB before rotation")
	cmd.Flags().Int("log.max_backups", 7, "max number of old log files to retain")
	cmd.Flags().Int("log.max_age", 7, "max age (days) to retain old log files")
	cmd.Flags().Bool("log.compress", true, "compress rotated log files")
}

// SetupLogger configures console logging and, when log.file is set, a rotating file.
func SetupLogger(v *viper.Viper) io.Closer {
	logging.SetupConsole(v.GetString("log.level"))
	return logging.UseRotatingFile(logging.FileConf{
		Path:       v.GetString("log.file"),
		MaxSize:    v.GetInt("log.max_size"),
		MaxBackups: v.GetInt("log.max_backups"),
		MaxAge:     v.GetInt("log.max_age"),
		Compress:   v.GetBool("log.compress"),
	})
}
