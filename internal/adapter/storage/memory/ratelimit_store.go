package memory

import (
	"context"
	"sync"
	"time"

	"coin-launch-gateway/internal/core/ports"
)

type window struct {
	id    int64
	count int64
}

// RateLimitStore is a process-local fixed-window counter store, used when no
// Redis URL is configured. Counters are not shared between replicas.
type RateLimitStore struct {
	mu        sync.Mutex
	windows   map[string]*window
	now       func() time.Time
	lastSweep int64
}

// NewRateLimitStore creates an empty in-memory store.
func NewRateLimitStore() *RateLimitStore {
	return &RateLimitStore{
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

// Allow counts one request for key in the current window.
func (s *RateLimitStore) Allow(_ context.Context, key string, limit int64, length time.Duration) (*ports.RateLimitResult, error) {
	windowSecs := int64(length / time.Second)
	if windowSecs < 1 {
		windowSecs = 1
	}
	windowID := s.now().Unix() / windowSecs

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep(windowID)

	w, ok := s.windows[key]
	if !ok || w.id != windowID {
		w = &window{id: windowID}
		s.windows[key] = w
	}
	w.count++

	remaining := limit - w.count
	if remaining < 0 {
		remaining = 0
	}

	return &ports.RateLimitResult{
		Allowed:   w.count <= limit,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   (windowID + 1) * windowSecs,
	}, nil
}

// sweep drops counters from past windows, at most once per window.
func (s *RateLimitStore) sweep(current int64) {
	if s.lastSweep == current {
		return
	}
	for k, w := range s.windows {
		if w.id < current {
			delete(s.windows, k)
		}
	}
	s.lastSweep = current
}

// Len returns the number of tracked keys.
func (s *RateLimitStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.windows)
}
