package scheduler

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/weather-forecast/internal/weather"
)

// Refresher re-fetches the weather of the shown location.
type Refresher interface {
	RefreshLast(ctx context.Context) (weather.View, error)
}

// Scheduler periodically refreshes the weather of the shown location.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   Refresher
	interval  time.Duration
	timeout   time.Duration
}

// New creates a new Scheduler.
func New(interval time.Duration, service Refresher) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		interval:  interval,
		timeout:   30 * time.Second,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
// The first run happens immediately, which loads the device location.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(s.run)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) run() {
	log.Println("scheduler: running weather refresh job")

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	view, err := s.service.RefreshLast(ctx)
	switch {
	case errors.Is(err, weather.ErrPermissionDenied):
		log.Println("scheduler: no location to refresh yet")
	case errors.Is(err, weather.ErrSuperseded):
		log.Println("scheduler: refresh superseded by a newer request")
	case err != nil:
		log.Printf("scheduler: refresh failed: %v", err)
	default:
		log.Printf("scheduler: refreshed %s (%d days)", view.Current.City, len(view.Daily))
	}
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
