package profiles

import (
	"log/slog"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// ViewSession is the per-browser-session state: one list view and the
// notifications it raised that have not been shown yet.
type ViewSession struct {
	mu    sync.Mutex
	View  *ListView
	Inbox *Inbox
}

// Release unlocks the session obtained from ViewStore.Acquire.
func (s *ViewSession) Release() {
	s.mu.Unlock()
}

// ViewStore keeps one ViewSession per session id. Sessions expire after ttl
// without access.
type ViewStore struct {
	mu      sync.Mutex
	service Service
	cache   *cache.Cache
}

// NewViewStore creates a store whose views talk to service.
func NewViewStore(service Service, ttl time.Duration) *ViewStore {
	c := cache.New(ttl, 2*ttl)
	c.OnEvicted(func(id string, _ interface{}) {
		slog.Debug("Profile view expired", "view_id", id)
	})
	return &ViewStore{
		service: service,
		cache:   c,
	}
}

// Acquire returns the locked session for id, creating it when missing, and
// reports whether it was created. Callers must Release it.
func (s *ViewStore) Acquire(id string) (*ViewSession, bool) {
	s.mu.Lock()
	var vs *ViewSession
	item, found := s.cache.Get(id)
	if found {
		vs = item.(*ViewSession)
	} else {
		inbox := &Inbox{}
		vs = &ViewSession{View: NewListView(s.service, inbox), Inbox: inbox}
	}
	// Re-set on every access so expiry slides.
	s.cache.Set(id, vs, cache.DefaultExpiration)
	s.mu.Unlock()

	vs.mu.Lock()
	return vs, !found
}

// Len returns the number of live sessions.
func (s *ViewStore) Len() int {
	return s.cache.ItemCount()
}
