package preview

import (
	"log/slog"
	"testing"
	"time"
)

func newTestStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	s := NewStore(ttl, time.Hour, slog.New(slog.DiscardHandler))
	t.Cleanup(s.Close)
	return s
}

func TestStore_PutAndGet(t *testing.T) {
	s := newTestStore(t, time.Minute)

	id := s.Put("resultado")
	if id == "" {
		t.Fatal("expected generated id")
	}

	v, ok := s.Get(id)
	if !ok {
		t.Fatal("expected value to be present")
	}
	if v.(string) != "resultado" {
		t.Errorf("value = %v", v)
	}
}

func TestStore_PutWithID(t *testing.T) {
	s := newTestStore(t, time.Minute)

	s.PutWithID("abc", 42)
	v, ok := s.Get("abc")
	if !ok || v.(int) != 42 {
		t.Errorf("got %v %v", v, ok)
	}
}

func TestStore_MissingKey(t *testing.T) {
	s := newTestStore(t, time.Minute)

	if _, ok := s.Get("nope"); ok {
		t.Error("expected miss for unknown key")
	}
}

func TestStore_LazyExpiry(t *testing.T) {
	// Sweep interval is an hour, so only the lazy check can expire this.
	s := newTestStore(t, 10*time.Millisecond)

	id := s.Put("efêmero")
	time.Sleep(30 * time.Millisecond)

	if _, ok := s.Get(id); ok {
		t.Error("expected entry to expire")
	}
	if s.Len() != 0 {
		t.Errorf("len = %d, want 0", s.Len())
	}
}

func TestStore_BackgroundSweep(t *testing.T) {
	s := NewStore(5*time.Millisecond, 10*time.Millisecond, slog.New(slog.DiscardHandler))
	defer s.Close()

	s.Put("um")
	s.Put("dois")

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if s.Len() == 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Error("sweep did not reclaim expired entries")
}

func TestStore_CloseIsIdempotent(t *testing.T) {
	s := NewStore(time.Minute, time.Minute, slog.New(slog.DiscardHandler))
	s.Close()
	s.Close() // must not panic
}
