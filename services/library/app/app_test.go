package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleConfig = `Name: playshelf-test
Host: 127.0.0.1
Port: 8080
Auth:
  JWTSecret: from-file
Catalog:
  ClientID: ${PLAYSHELF_TEST_CLIENT_ID}
Events:
  Type: noop
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "library.yaml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigAppliesDefaultsAndEnv(t *testing.T) {
	t.Setenv("PLAYSHELF_TEST_CLIENT_ID", "env-client")
	c, err := loadConfig(Options{ConfigFile: writeConfig(t)})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Catalog.ClientID != "env-client" {
		t.Fatalf("env not expanded: %q", c.Catalog.ClientID)
	}
	if c.Auth.TokenTTL != 24*time.Hour || !c.Database.AutoMigrate {
		t.Fatalf("defaults not applied: ttl=%s automigrate=%v", c.Auth.TokenTTL, c.Database.AutoMigrate)
	}
	if c.Events.Type != "noop" {
		t.Fatalf("unexpected events type %q", c.Events.Type)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	c, err := loadConfig(Options{
		ConfigFile:          writeConfig(t),
		Port:                9090,
		DataSource:          ":memory:",
		JWTSecret:           "from-flag",
		CatalogClientID:     "id",
		CatalogClientSecret: "secret",
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Port != 9090 || c.Database.DataSource != ":memory:" || c.Auth.JWTSecret != "from-flag" {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.Catalog.ClientID != "id" || c.Catalog.ClientSecret != "secret" {
		t.Fatalf("catalog overrides not applied: %+v", c.Catalog)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig(Options{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")}); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
