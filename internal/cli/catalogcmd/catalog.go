package catalogcmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/cuihairu/playshelf/internal/catalog"
	"github.com/cuihairu/playshelf/internal/cli/common"
	"github.com/cuihairu/playshelf/internal/ports"
)

// New returns `playshelf catalog` command with its probe subcommands.
func New() *cobra.Command {
	cmd := &cobra.Command{Use: "catalog", Short: "Query the remote game catalog"}
	cmd.AddCommand(newSearch(), newGame(), newPlatforms())
	return cmd
}

func addCatalogFlags(cmd *cobra.Command) {
	cmd.Flags().String("catalog.base-url", catalog.DefaultBaseURL, "catalog API base URL")
	cmd.Flags().String("catalog.auth-url", catalog.DefaultAuthURL, "client-credential token endpoint")
	cmd.Flags().String("catalog.client-id", "", "catalog client id")
	cmd.Flags().String("catalog.client-secret", "", "catalog client secret")
	cmd.Flags().Duration("catalog.timeout", catalog.DefaultRequestTimeout, "per-request timeout")
	cmd.Flags().StringP("output", "o", "json", "output format: json or yaml")
	common.AddLogFlags(cmd)
}

func newClient(v *viper.Viper) (*catalog.Client, error) {
	return catalog.NewClient(catalog.Config{
		BaseURL:        v.GetString("catalog.base-url"),
		AuthURL:        v.GetString("catalog.auth-url"),
		ClientID:       v.GetString("catalog.client-id"),
		ClientSecret:   v.GetString("catalog.client-secret"),
		RequestTimeout: v.GetDuration("catalog.timeout"),
	})
}

func run(cmd *cobra.Command, fn func(c *catalog.Client) (any, error)) error {
	v := common.Bind(cmd)
	logs := common.SetupLogger(v)
	defer logs.Close()

	c, err := newClient(v)
	if err != nil {
		return err
	}
	out, err := fn(c)
	if err != nil {
		return err
	}
	return write(cmd, v.GetString("output"), out)
}

func write(cmd *cobra.Command, format string, out any) error {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	case "", "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func newSearch() *cobra.Command {
	cmd := &cobra.Command{Use: "search <name>", Short: "Search games by name", Args: cobra.MinimumNArgs(1)}
	addCatalogFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(c *catalog.Client) (any, error) {
			return c.SearchByName(cmd.Context(), strings.Join(args, " ")), nil
		})
	}
	return cmd
}

func newGame() *cobra.Command {
	cmd := &cobra.Command{Use: "game <id>", Short: "Show one game", Args: cobra.ExactArgs(1)}
	addCatalogFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("game id %q: %w", args[0], err)
		}
		return run(cmd, func(c *catalog.Client) (any, error) {
			l := c.Lookup(cmd.Context(), id)
			switch l.Status {
			case ports.LookupFound:
				return l.Game, nil
			case ports.LookupAbsent:
				return nil, fmt.Errorf("game %d not found", id)
			default:
				return nil, fmt.Errorf("catalog unavailable while fetching game %d", id)
			}
		})
	}
	return cmd
}

func newPlatforms() *cobra.Command {
	cmd := &cobra.Command{Use: "platforms", Short: "List platforms", Args: cobra.NoArgs}
	addCatalogFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(c *catalog.Client) (any, error) {
			return c.ListPlatforms(cmd.Context()), nil
		})
	}
	return cmd
}
