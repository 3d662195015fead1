package token

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	m := NewManager("s3cret")
	tok, err := m.Sign("alice@example.com", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if strings.Count(tok, ".") != 2 {
		t.Fatalf("not a compact JWT: %s", tok)
	}
	sub, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if sub != "alice@example.com" {
		t.Fatalf("unexpected subject %q", sub)
	}
}

func TestVerifyRejects(t *testing.T) {
	m := NewManager("s3cret")
	good, _ := m.Sign("alice@example.com", time.Hour)

	other, _ := NewManager("other").Sign("alice@example.com", time.Hour)

	expiring := NewManager("s3cret")
	expiring.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _ := expiring.Sign("alice@example.com", time.Hour)

	cases := map[string]string{
		"garbage":       "not-a-token",
		"wrong secret":  other,
		"expired":       expired,
		"tampered":      good[:len(good)-2] + "xx",
		"empty subject": mustSign(t, m, ""),
	}
	for name, tok := range cases {
		if _, err := m.Verify(tok); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}

func mustSign(t *testing.T, m *Manager, sub string) string {
	t.Helper()
	tok, err := m.Sign(sub, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return tok
}
