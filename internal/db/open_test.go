package db

import (
	"testing"

	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
)

func TestDialectorSelection(t *testing.T) {
	cases := []struct {
		dsn      string
		postgres bool
		want     string
	}{
		{"postgres://u:p@localhost:5432/playshelf?sslmode=disable", true, ""},
		{"postgresql://localhost/playshelf", true, ""},
		{"sqlite:///tmp/lib.db", false, "file:tmp/lib.db"},
		{":memory:", false, ":memory:"},
		{"file:x.db?cache=shared", false, "file:x.db?cache=shared"},
	}
	for _, tc := range cases {
		d := Dialector(tc.dsn)
		switch v := d.(type) {
		case *gpostgres.Dialector:
			if !tc.postgres {
				t.Fatalf("%s: unexpected postgres dialector", tc.dsn)
			}
		case *gsqlite.Dialector:
			if tc.postgres {
				t.Fatalf("%s: expected postgres dialector", tc.dsn)
			}
			if v.DSN != tc.want {
				t.Fatalf("%s: dsn %q, want %q", tc.dsn, v.DSN, tc.want)
			}
		default:
			t.Fatalf("%s: unexpected dialector %T", tc.dsn, d)
		}
	}
}

func TestOpenMemory(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.Exec("SELECT 1").Error; err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestMigrateCreatesTables(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for _, table := range []string{"users", "user_games"} {
		if !db.Migrator().HasTable(table) {
			t.Fatalf("table %s missing", table)
		}
	}
}
