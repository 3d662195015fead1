package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	catalogcmd "github.com/cuihairu/playshelf/internal/cli/catalogcmd"
	migratecmd "github.com/cuihairu/playshelf/internal/cli/migratecmd"
	servecmd "github.com/cuihairu/playshelf/internal/cli/servecmd"
)

func main() {
	root := &cobra.Command{Use: "playshelf", Short: "Playshelf game library CLI", SilenceUsage: true}

	root.AddCommand(servecmd.New())
	root.AddCommand(migratecmd.New())
	root.AddCommand(catalogcmd.New())

	comp := &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generate shell completion",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return root.GenBashCompletion(os.Stdout)
			case "zsh":
				return root.GenZshCompletion(os.Stdout)
			case "fish":
				return root.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unknown shell: %s", args[0])
			}
		},
	}
	root.AddCommand(comp)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
