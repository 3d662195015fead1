package ports

import (
	"errors"
	"testing"
)

func TestParseGameStatus(t *testing.T) {
	cases := map[string]GameStatus{
		"PLAYING":      StatusPlaying,
		"playing":      StatusPlaying,
		" none ":       StatusNone,
		"want_to_play": StatusWantToPlay,
	}
	for in, want := range cases {
		got, err := ParseGameStatus(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("parse %q: want %s, got %s", in, want, got)
		}
	}
	if _, err := ParseGameStatus("finished"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestPlatformTypeFromCode(t *testing.T) {
	code := func(v int) *int { return &v }
	if got := PlatformTypeFromCode(nil); got != PlatformUnknown {
		t.Fatalf("nil code: got %s", got)
	}
	if got := PlatformTypeFromCode(code(5)); got != PlatformPortableConsole {
		t.Fatalf("code 5: got %s", got)
	}
	if got := PlatformTypeFromCode(code(42)); got != PlatformUnknown {
		t.Fatalf("code 42: got %s", got)
	}
	if PlatformComputer.String() != "COMPUTER" {
		t.Fatalf("unexpected name %s", PlatformComputer.String())
	}
}

func TestPageTotalPages(t *testing.T) {
	p := Page[int]{TotalElements: 41, PageSize: 20}
	if p.TotalPages() != 3 {
		t.Fatalf("want 3 pages, got %d", p.TotalPages())
	}
	if (Page[int]{TotalElements: 5}).TotalPages() != 0 {
		t.Fatalf("zero page size should yield zero pages")
	}
}

func TestLibraryEntryIsEmpty(t *testing.T) {
	if !(LibraryEntry{Status: StatusNone}).IsEmpty() {
		t.Fatalf("NONE and not favorite must be empty")
	}
	if (LibraryEntry{Status: StatusNone, IsFavorite: true}).IsEmpty() {
		t.Fatalf("favorite entry is not empty")
	}
	if (LibraryEntry{Status: StatusPlaying}).IsEmpty() {
		t.Fatalf("playing entry is not empty")
	}
}
