// pkg/memcache/activity_names.go
package mem

import (
	"sync"
	"time"
)

// ActivityNameStore keeps the per-city set of activity names already used by
// streamed itineraries, so the day-at-a-time generator can tell the model
// what to avoid without a database round trip on every day.
type ActivityNameStore interface {
	Get(city string) ([]string, bool)
	Add(city string, names []string, ttl time.Duration)
}

type nameEntry struct {
	names     map[string]struct{}
	expiresAt time.Time
}

type ActivityNames struct {
	mu   sync.RWMutex
	data map[string]nameEntry
}

func NewActivityNames() *ActivityNames {
	return &ActivityNames{
		data: make(map[string]nameEntry),
	}
}

func (s *ActivityNames) Get(city string) ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[city]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	out := make([]string, 0, len(e.names))
	for name := range e.names {
		out = append(out, name)
	}
	return out, true
}

// Add merges names into the city's set and refreshes its TTL. Expired
// entries are replaced rather than extended.
func (s *ActivityNames) Add(city string, names []string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[city]
	if !ok || time.Now().After(e.expiresAt) {
		e = nameEntry{names: make(map[string]struct{})}
	}
	for _, name := range names {
		e.names[name] = struct{}{}
	}
	e.expiresAt = time.Now().Add(ttl)
	s.data[city] = e
}
