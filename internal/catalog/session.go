package catalog

import (
	"context"
	"sync"
	"time"
)

type credential struct {
	token  string
	expiry time.Time
}

func (c credential) validAt(now time.Time) bool {
	return c.token != "" && now.Before(c.expiry)
}

// session owns the access credential shared by every caller of one Client.
// Refreshes happen under the write lock after a second validity check, so
// concurrent callers that observe expiry trigger a single exchange.
type session struct {
	mu       sync.RWMutex
	cred     credential
	now      func() time.Time
	exchange func(ctx context.Context) (credential, error)
}

func newSession(now func() time.Time, exchange func(ctx context.Context) (credential, error)) *session {
	return &session{now: now, exchange: exchange}
}

func (s *session) token(ctx context.Context) (string, error) {
	s.mu.RLock()
	cred := s.cred
	s.mu.RUnlock()
	if cred.validAt(s.now()) {
		return cred.token, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cred.validAt(s.now()) {
		return s.cred.token, nil
	}
	next, err := s.exchange(ctx)
	if err != nil {
		return "", err
	}
	s.cred = next
	return next.token, nil
}

// invalidate drops the credential if it is still the one the remote rejected.
func (s *session) invalidate(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cred.token == token {
		s.cred = credential{}
	}
}
