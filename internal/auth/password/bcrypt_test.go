package password

import (
	"errors"
	"testing"
)

func TestHashAndMatch(t *testing.T) {
	h, err := Hash("correct horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h == "correct horse" {
		t.Fatalf("hash must not equal the plain text")
	}
	if !Matches(h, "correct horse") {
		t.Fatalf("expected match")
	}
	if Matches(h, "battery staple") {
		t.Fatalf("unexpected match for wrong password")
	}
	if Matches("", "correct horse") {
		t.Fatalf("empty hash must never match")
	}
}

func TestHashRejectsBlank(t *testing.T) {
	if _, err := Hash("   "); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}
