package common

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const EnvPrefix = "PLAYSHELF"

// Bind returns a viper instance holding cmd's flags, each overridable through
// PLAYSHELF_<FLAG> with dots and dashes mapped to underscores.
func Bind(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(cmd.Flags())
	return v
}
