package library

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dom "github.com/cuihairu/playshelf/internal/ports"
)

// newTestDB returns a sqlite in-memory DB.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

var base = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func entry(user string, game int64, status dom.GameStatus, fav bool, minutes int) dom.LibraryEntry {
	return dom.LibraryEntry{UserID: user, GameID: game, Status: status, IsFavorite: fav, AddedAt: base.Add(time.Duration(minutes) * time.Minute)}
}

func TestSaveFindUpdateDelete(t *testing.T) {
	ctx := context.Background()
	p := NewPortRepo(NewRepo(newTestDB(t)))

	if _, found, err := p.FindByUserIDAndGameID(ctx, "u1", 42); err != nil || found {
		t.Fatalf("expected absent, found=%v err=%v", found, err)
	}
	if _, err := p.Save(ctx, entry("u1", 42, dom.StatusPlaying, false, 0)); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, found, err := p.FindByUserIDAndGameID(ctx, "u1", 42)
	if err != nil || !found {
		t.Fatalf("find: found=%v err=%v", found, err)
	}
	if got.Status != dom.StatusPlaying || got.IsFavorite || !got.AddedAt.Equal(base) {
		t.Fatalf("unexpected entry: %+v", got)
	}

	got.Status = dom.StatusNone
	got.IsFavorite = true
	if _, err := p.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _, _ = p.FindByUserIDAndGameID(ctx, "u1", 42)
	if got.Status != dom.StatusNone || !got.IsFavorite {
		t.Fatalf("update not applied: %+v", got)
	}
	got.IsFavorite = false
	got.Status = dom.StatusCompleted
	if _, err := p.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _, _ = p.FindByUserIDAndGameID(ctx, "u1", 42)
	if got.IsFavorite {
		t.Fatalf("false favorite flag was not written")
	}

	if err := p.DeleteByUserIDAndGameID(ctx, "u1", 42); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := p.DeleteByUserIDAndGameID(ctx, "u1", 42); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if _, found, _ := p.FindByUserIDAndGameID(ctx, "u1", 42); found {
		t.Fatalf("entry should be gone")
	}
}

func TestFindByUserIsScopedAndOrdered(t *testing.T) {
	ctx := context.Background()
	p := NewPortRepo(NewRepo(newTestDB(t)))
	for _, e := range []dom.LibraryEntry{
		entry("u1", 3, dom.StatusPlaying, false, 5),
		entry("u1", 1, dom.StatusCompleted, true, 1),
		entry("u2", 1, dom.StatusPlaying, false, 0),
	} {
		if _, err := p.Save(ctx, e); err != nil {
			t.Fatal(err)
		}
	}
	arr, err := p.FindByUserID(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(arr) != 2 || arr[0].GameID != 1 || arr[1].GameID != 3 {
		t.Fatalf("unexpected entries: %+v", arr)
	}
	none, err := p.FindByUserID(ctx, "nobody")
	if err != nil || none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil list, got %v err=%v", none, err)
	}
}

func TestFindFavoritesPaged(t *testing.T) {
	ctx := context.Background()
	p := NewPortRepo(NewRepo(newTestDB(t)))
	for i := 0; i < 5; i++ {
		if _, err := p.Save(ctx, entry("u1", int64(100+i), dom.StatusNone, true, i)); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := p.Save(ctx, entry("u1", 200, dom.StatusPlaying, false, 10)); err != nil {
		t.Fatal(err)
	}

	page, err := p.FindFavoritesPaged(ctx, "u1", 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if page.TotalElements != 5 || page.PageNumber != 1 || page.PageSize != 2 || page.TotalPages() != 3 {
		t.Fatalf("unexpected page meta: %+v", page)
	}
	if len(page.Content) != 2 || page.Content[0].GameID != 102 || page.Content[1].GameID != 103 {
		t.Fatalf("unexpected content: %+v", page.Content)
	}

	beyond, err := p.FindFavoritesPaged(ctx, "u1", 9, 2)
	if err != nil || len(beyond.Content) != 0 || beyond.TotalElements != 5 {
		t.Fatalf("unexpected page past the end: %+v err=%v", beyond, err)
	}
	if _, err := p.FindFavoritesPaged(ctx, "u1", -1, 2); err == nil {
		t.Fatalf("expected error for negative page")
	}
}
