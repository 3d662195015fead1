package common

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestBindReadsEnvOverrides(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	cmd.Flags().String("dsn", "", "")
	cmd.Flags().String("catalog.client-id", "", "")
	AddLogFlags(cmd)

	t.Setenv("PLAYSHELF_DSN", "postgres://db/playshelf")
	t.Setenv("PLAYSHELF_CATALOG_CLIENT_ID", "abc")
	v := Bind(cmd)

	if got := v.GetString("dsn"); got != "postgres://db/playshelf" {
		t.Fatalf("dsn = %q", got)
	}
	if got := v.GetString("catalog.client-id"); got != "abc" {
		t.Fatalf("client id = %q", got)
	}
	if got := v.GetInt("log.max_size"); got != 100 {
		t.Fatalf("flag default lost: %d", got)
	}
}

func TestBindPrefersFlagsOverEnv(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	cmd.Flags().String("dsn", "", "")
	if err := cmd.Flags().Set("dsn", ":memory:"); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PLAYSHELF_DSN", "postgres://db/playshelf")
	if got := Bind(cmd).GetString("dsn"); got != ":memory:" {
		t.Fatalf("explicit flag should win, got %q", got)
	}
}
