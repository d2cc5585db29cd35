// Package preview is the process-wide handoff cache between the analysis
// request and later retrieval (card rendering, sharing). Entries expire
// after a TTL; a background sweep reclaims them and lookups also check
// expiry lazily. The store is injected as a dependency, never reached for as
// a global.
package preview

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry struct {
	value     any
	expiresAt time.Time
}

type Store struct {
	mu     sync.Mutex
	items  map[string]entry
	ttl    time.Duration
	logger *slog.Logger
	stop   chan struct{}
	once   sync.Once
}

// NewStore builds a store whose entries live for ttl and are swept every
// sweepEvery.
func NewStore(ttl, sweepEvery time.Duration, logger *slog.Logger) *Store {
	s := &Store{
		items:  make(map[string]entry),
		ttl:    ttl,
		logger: logger,
		stop:   make(chan struct{}),
	}
	go s.sweep(sweepEvery)
	return s
}

// Put stores value and returns its key.
func (s *Store) Put(value any) string {
	id := uuid.NewString()
	s.PutWithID(id, value)
	return id
}

// PutWithID stores value under a caller-chosen key.
func (s *Store) PutWithID(id string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[id] = entry{value: value, expiresAt: time.Now().Add(s.ttl)}
}

// Get returns the value for id, or false if absent or expired.
func (s *Store) Get(id string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[id]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.items, id)
		return nil, false
	}
	return e.value, true
}

// Len reports live (unexpired) entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	now := time.Now()
	for _, e := range s.items {
		if now.Before(e.expiresAt) {
			n++
		}
	}
	return n
}

// Close stops the background sweep.
func (s *Store) Close() {
	s.once.Do(func() { close(s.stop) })
}

func (s *Store) sweep(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			now := time.Now()
			removed := 0
			for id, e := range s.items {
				if now.After(e.expiresAt) {
					delete(s.items, id)
					removed++
				}
			}
			s.mu.Unlock()
			if removed > 0 {
				s.logger.Debug("expired previews removed", "count", removed)
			}
		case <-s.stop:
			return
		}
	}
}
