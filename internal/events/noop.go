package events

import (
	"context"
	"sync"

	dom "github.com/cuihairu/playshelf/internal/ports"
)

type Noop struct{}

func NewNoop() *Noop                                               { return &Noop{} }
func (n *Noop) Publish(context.Context, dom.FavoriteChangeEvent) {}
func (n *Noop) Close() error                                       { return nil }

// Memory records published events in order.
type Memory struct {
	mu     sync.Mutex
	events []dom.FavoriteChangeEvent
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Publish(_ context.Context, evt dom.FavoriteChangeEvent) {
	m.mu.Lock()
	m.events = append(m.events, evt)
	m.mu.Unlock()
}

// Events returns a copy of everything published so far.
func (m *Memory) Events() []dom.FavoriteChangeEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]dom.FavoriteChangeEvent(nil), m.events...)
}

func (m *Memory) Close() error { return nil }
