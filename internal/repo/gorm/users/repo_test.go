package usersgorm

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	dom "github.com/cuihairu/playshelf/internal/ports"
)

func newTestRepo(t *testing.T) *PortRepo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewPortRepo(New(db))
}

func TestCreateAssignsIDAndFindsByEmail(t *testing.T) {
	ctx := context.Background()
	p := newTestRepo(t)
	created, err := p.Create(ctx, dom.User{Username: "alice", Email: "Alice@Example.com ", PasswordHash: "h", Active: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(created.ID) != 36 || created.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", created)
	}
	got, found, err := p.FindByEmail(ctx, "ALICE@example.com")
	if err != nil || !found {
		t.Fatalf("find: found=%v err=%v", found, err)
	}
	if got.ID != created.ID || !got.Active || got.Username != "alice" {
		t.Fatalf("unexpected lookup: %+v", got)
	}
}

func TestFindByEmailMissing(t *testing.T) {
	_, found, err := newTestRepo(t).FindByEmail(context.Background(), "nobody@example.com")
	if err != nil || found {
		t.Fatalf("expected absent without error, found=%v err=%v", found, err)
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	p := newTestRepo(t)
	if _, err := p.Create(ctx, dom.User{Email: "bob@example.com", Active: true}); err != nil {
		t.Fatal(err)
	}
	_, err := p.Create(ctx, dom.User{Email: "BOB@example.com", Active: true})
	if !errors.Is(err, dom.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}
