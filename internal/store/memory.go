package store

import (
	"sync"

	"github.com/i474232898/weather-forecast/internal/weather"
)

// MemoryStore is the process-lifetime application state: the active unit
// system, the last published view and the recent locations. Nothing survives
// a restart.
type MemoryStore struct {
	mu sync.RWMutex

	units  weather.UnitSystem
	latest *weather.View

	recent *weather.Registry
}

// NewMemoryStore creates a new MemoryStore with the given initial unit system.
func NewMemoryStore(units weather.UnitSystem) *MemoryStore {
	weather.FormatFor(units) // panics on an unknown unit system
	return &MemoryStore{
		units:  units,
		recent: weather.NewRegistry(),
	}
}

// Publish replaces the latest view unless the stored one comes from a newer
// fetch generation.
func (s *MemoryStore) Publish(v weather.View) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.latest != nil && s.latest.Generation > v.Generation {
		return false
	}
	s.latest = &v
	return true
}

// Latest returns the most recently published view.
func (s *MemoryStore) Latest() (weather.View, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.latest == nil {
		return weather.View{}, weather.ErrNoView
	}
	return *s.latest, nil
}

func (s *MemoryStore) Units() weather.UnitSystem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.units
}

func (s *MemoryStore) SetUnits(u weather.UnitSystem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.units = u
}

// LastCoordinates returns the position of the last published view.
func (s *MemoryStore) LastCoordinates() (weather.Coordinates, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.latest == nil {
		return weather.Coordinates{}, false
	}
	return s.latest.Coordinates, true
}

// RecordLocation adds loc to the recent locations; see weather.Registry.Record.
func (s *MemoryStore) RecordLocation(loc weather.RecentLocation) bool {
	return s.recent.Record(loc)
}

// RecentLocations returns the recent locations, most recent first.
func (s *MemoryStore) RecentLocations() []weather.RecentLocation {
	return s.recent.List()
}

// RecentLocation looks up a recent location by ID.
func (s *MemoryStore) RecentLocation(id int64) (weather.RecentLocation, bool) {
	return s.recent.Get(id)
}
