package weather

import "sync"

// MaxRecentLocations bounds the recent locations list.
const MaxRecentLocations = 5

// Registry is the bounded, most-recent-first list of viewed locations,
// unique by ID. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries []RecentLocation
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make([]RecentLocation, 0, MaxRecentLocations)}
}

// Record prepends loc unless an entry with the same ID is already present,
// in which case the list is left untouched. It reports whether loc was added.
func (r *Registry) Record(loc RecentLocation) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.entries {
		if e.ID == loc.ID {
			return false
		}
	}

	next := make([]RecentLocation, 0, MaxRecentLocations)
	next = append(next, loc)
	next = append(next, r.entries...)
	if len(next) > MaxRecentLocations {
		next = next[:MaxRecentLocations]
	}
	r.entries = next
	return true
}

// List returns a snapshot of the entries, most recent first.
func (r *Registry) List() []RecentLocation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]RecentLocation, len(r.entries))
	copy(out, r.entries)
	return out
}

// Get looks up an entry by ID.
func (r *Registry) Get(id int64) (RecentLocation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.ID == id {
			return e, true
		}
	}
	return RecentLocation{}, false
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
