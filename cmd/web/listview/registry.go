package listview

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry is a registered session.
type Entry struct {
	ID        string
	Resource  string
	Session   Session
	ExpiresAt time.Time
}

// Registry keeps mounted sessions between requests, keyed by a random view ID.
// A session idle for longer than ttl is unmounted and dropped the next time
// the registry is touched.
type Registry struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*entry
}

type entry struct {
	resource string
	session  Session
	lastUsed time.Time
}

func NewRegistry(ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Registry{
		ttl:     ttl,
		now:     time.Now,
		entries: map[string]*entry{},
	}
}

// Add registers s and returns its entry.
func (r *Registry) Add(resource string, s Session) Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	r.sweepLocked(now)

	id := uuid.NewString()
	e := &entry{resource: resource, session: s, lastUsed: now}
	r.entries[id] = e
	return r.entryLocked(id, e)
}

// Get returns the session registered under id and marks it used.
func (r *Registry) Get(id string) (Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	r.sweepLocked(now)

	e, ok := r.entries[id]
	if !ok {
		return Entry{}, false
	}
	e.lastUsed = now
	return r.entryLocked(id, e), true
}

// Remove unmounts and drops the session registered under id.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return false
	}
	delete(r.entries, id)
	e.session.Unmount()
	return true
}

// Sweep evicts expired sessions and returns how many were dropped.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sweepLocked(r.now())
}

// Len returns the number of registered sessions, expired ones included until the next sweep.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Close unmounts every session.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, e := range r.entries {
		e.session.Unmount()
		delete(r.entries, id)
	}
}

func (r *Registry) sweepLocked(now time.Time) int {
	evicted := 0
	for id, e := range r.entries {
		if now.Sub(e.lastUsed) > r.ttl {
			e.session.Unmount()
			delete(r.entries, id)
			evicted++
		}
	}
	return evicted
}

func (r *Registry) entryLocked(id string, e *entry) Entry {
	return Entry{
		ID:        id,
		Resource:  e.resource,
		Session:   e.session,
		ExpiresAt: e.lastUsed.Add(r.ttl),
	}
}
