package weather

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// ServiceConfig holds the service settings that do not change per request.
type ServiceConfig struct {
	Lang         string
	FetchTimeout time.Duration
}

// Service fetches provider payloads, runs them through Build and publishes
// the result into the store. Only the most recently issued fetch may publish.
type Service struct {
	store    Store
	provider Provider
	locator  Locator
	lang     string
	timeout  time.Duration
	now      func() time.Time

	issued atomic.Uint64
}

// NewService creates a new Service.
func NewService(store Store, provider Provider, locator Locator, cfg ServiceConfig) *Service {
	if locator == nil {
		locator = StaticLocator{}
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 15 * time.Second
	}
	if cfg.Lang == "" {
		cfg.Lang = "en"
	}
	return &Service{
		store:    store,
		provider: provider,
		locator:  locator,
		lang:     cfg.Lang,
		timeout:  cfg.FetchTimeout,
		now:      time.Now,
	}
}

// Lang returns the language used for labels and messages.
func (s *Service) Lang() string {
	return s.lang
}

// Refresh fetches and publishes the weather for c. It returns ErrSuperseded
// when another fetch was issued while this one was in flight.
func (s *Service) Refresh(ctx context.Context, c Coordinates) (View, error) {
	if s.provider == nil {
		log.Printf("ERROR: No provider available to fetch weather data for %.4f,%.4f", c.Lat, c.Lon)
		return View{}, fmt.Errorf("%w: no weather provider configured", ErrTransport)
	}

	gen := s.issued.Add(1)
	fetchID := uuid.NewString()
	units := s.store.Units()
	log.Printf("DEBUG: fetch %s (gen %d) for %.4f,%.4f in %s", fetchID, gen, c.Lat, c.Lon, units)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	q := Query{Units: units, Lang: s.lang}

	var (
		wg                sync.WaitGroup
		current           RawCurrent
		forecast          RawForecast
		currentErr, fcErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		current, currentErr = s.provider.Current(ctx, c, q)
	}()
	go func() {
		defer wg.Done()
		forecast, fcErr = s.provider.Forecast(ctx, c, q)
	}()
	wg.Wait()

	if err := errors.Join(currentErr, fcErr); err != nil {
		log.Printf("ERROR: provider %s fetch %s failed: %v", s.provider.Name(), fetchID, err)
		return View{}, err
	}

	view, err := Build(Payloads{Current: current, Forecast: forecast}, BuildOptions{
		Units: units,
		Lang:  s.lang,
		Now:   s.now(),
	})
	if err != nil {
		log.Printf("ERROR: fetch %s produced unusable data: %v", fetchID, err)
		return View{}, err
	}
	view.FetchID = fetchID
	view.Generation = gen
	view.Coordinates = c

	if gen != s.issued.Load() || !s.store.Publish(view) {
		log.Printf("INFO: fetch %s (gen %d) discarded; a newer fetch was issued", fetchID, gen)
		return View{}, ErrSuperseded
	}
	return view, nil
}

// RefreshHere refreshes the weather at the device location.
func (s *Service) RefreshHere(ctx context.Context) (View, error) {
	c, err := s.locator.Locate(ctx)
	if err != nil {
		return View{}, err
	}
	return s.Refresh(ctx, c)
}

// RefreshLast refreshes the last shown location, or the device location
// when nothing was shown yet.
func (s *Service) RefreshLast(ctx context.Context) (View, error) {
	if c, ok := s.store.LastCoordinates(); ok {
		return s.Refresh(ctx, c)
	}
	return s.RefreshHere(ctx)
}

// Search resolves a city query, records it as a recent location and shows
// its weather.
func (s *Service) Search(ctx context.Context, query string) (View, RecentLocation, error) {
	if s.provider == nil {
		return View{}, RecentLocation{}, fmt.Errorf("%w: no weather provider configured", ErrTransport)
	}
	loc, err := s.provider.FindCity(ctx, query, Query{Units: s.store.Units(), Lang: s.lang})
	if err != nil {
		return View{}, RecentLocation{}, err
	}
	if s.store.RecordLocation(loc) {
		log.Printf("INFO: recorded recent location %d (%s, %s)", loc.ID, loc.Name, loc.Country)
	}

	view, err := s.Refresh(ctx, loc.Coordinates())
	return view, loc, err
}

// SelectRecent shows the weather of a previously searched location.
func (s *Service) SelectRecent(ctx context.Context, id int64) (View, error) {
	loc, ok := s.store.RecentLocation(id)
	if !ok {
		return View{}, ErrLocationNotFound
	}
	return s.Refresh(ctx, loc.Coordinates())
}

// SetUnits switches the unit system and re-fetches the last shown location.
// It returns ErrNoView when there is nothing to re-fetch.
func (s *Service) SetUnits(ctx context.Context, u UnitSystem) (View, error) {
	FormatFor(u) // panics on an unknown unit system
	s.store.SetUnits(u)

	c, ok := s.store.LastCoordinates()
	if !ok {
		return View{}, ErrNoView
	}
	return s.Refresh(ctx, c)
}

// Units returns the active unit system.
func (s *Service) Units() UnitSystem {
	return s.store.Units()
}

// Latest returns the last published view.
func (s *Service) Latest() (View, error) {
	return s.store.Latest()
}

// Recent returns the recent locations, most recent first.
func (s *Service) Recent() []RecentLocation {
	return s.store.RecentLocations()
}

// Theme derives the theme from the current time at the shown location,
// or in the server's zone before the first fetch.
func (s *Service) Theme() Theme {
	zone := time.Local
	if v, err := s.store.Latest(); err == nil {
		zone = ZoneFor(v.UTCOffset)
	}
	return ThemeAt(s.now(), zone)
}
