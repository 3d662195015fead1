package catalogcmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newFakeCatalog(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"access_token":"tok","expires_in":3600,"token_type":"bearer"}`)
	})
	mux.HandleFunc("/v4/games", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		switch {
		case strings.Contains(string(body), "search"):
			_, _ = io.WriteString(w, `[{"id":1,"name":"Celeste"}]`)
		case strings.Contains(string(body), "where id = 1;"):
			_, _ = io.WriteString(w, `[{"id":1,"name":"Celeste"}]`)
		default:
			_, _ = io.WriteString(w, `[]`)
		}
	})
	mux.HandleFunc("/v4/platforms", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":6,"name":"PC","platform_type":6}]`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args,
		"--catalog.base-url", srv.URL+"/v4",
		"--catalog.auth-url", srv.URL+"/token",
		"--catalog.client-id", "id",
		"--catalog.client-secret", "secret",
		"--log.level", "severe",
	))
	err := cmd.Execute()
	return out.String(), err
}

func TestSearchPrintsGames(t *testing.T) {
	out, err := execute(t, newFakeCatalog(t), "search", "cel", "este")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var games []map[string]any
	if err := json.Unmarshal([]byte(out), &games); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(games) != 1 || games[0]["Name"] != "Celeste" {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestGameReportsMissing(t *testing.T) {
	srv := newFakeCatalog(t)
	if _, err := execute(t, srv, "game", "1"); err != nil {
		t.Fatalf("existing game: %v", err)
	}
	_, err := execute(t, srv, "game", "2")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
	if _, err := execute(t, srv, "game", "abc"); err == nil {
		t.Fatalf("expected error for non-numeric id")
	}
}

func TestPlatformsPrintsTypes(t *testing.T) {
	out, err := execute(t, newFakeCatalog(t), "platforms")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, `"Name": "PC"`) {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestPlatformsAsYAML(t *testing.T) {
	srv := newFakeCatalog(t)
	out, err := execute(t, srv, "platforms", "--output", "yaml")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "name: PC") {
		t.Fatalf("unexpected yaml output: %s", out)
	}
	if _, err := execute(t, srv, "platforms", "-o", "xml"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
