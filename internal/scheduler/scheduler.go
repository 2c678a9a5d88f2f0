package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/diegoclair/family-schedule-bot/internal/domain"
	"github.com/go-co-op/gocron/v2"
)

const (
	tickInterval   = time.Second
	weatherTimeout = time.Minute
)

// Engine is the part of the engine driven by the clock.
type Engine interface {
	Tick(now time.Time)
	RefreshWeather(ctx context.Context) error
}

// Scheduler is the clock source: a one-second engine tick and the weather poll.
type Scheduler struct {
	cron       gocron.Scheduler
	weatherJob gocron.Job
	engine     Engine
	location   *time.Location
}

func New(engine Engine, location *time.Location) (*Scheduler, error) {
	if location == nil {
		location = time.Local
	}

	cron, err := gocron.NewScheduler(gocron.WithLocation(location))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	s := &Scheduler{
		cron:     cron,
		engine:   engine,
		location: location,
	}

	// Singleton mode drops a tick instead of running two at once
	_, err = cron.NewJob(
		gocron.DurationJob(tickInterval),
		gocron.NewTask(s.tick),
		gocron.WithName("engine-tick"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register tick job: %w", err)
	}

	s.weatherJob, err = cron.NewJob(
		gocron.DurationJob(domain.WeatherPollInterval),
		gocron.NewTask(s.refreshWeather),
		gocron.WithName("weather-poll"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register weather job: %w", err)
	}

	return s, nil
}

func (s *Scheduler) Start() {
	log.Println("Scheduler starting...")
	s.cron.Start()
}

func (s *Scheduler) Stop() error {
	log.Println("Scheduler stopping...")
	return s.cron.Shutdown()
}

// RefreshWeather runs the weather poll now, outside its regular interval.
func (s *Scheduler) RefreshWeather() error {
	if err := s.weatherJob.RunNow(); err != nil {
		return fmt.Errorf("failed to refresh weather: %w", err)
	}
	return nil
}

func (s *Scheduler) tick() {
	s.engine.Tick(time.Now().In(s.location))
}

func (s *Scheduler) refreshWeather() {
	ctx, cancel := context.WithTimeout(context.Background(), weatherTimeout)
	defer cancel()

	if err := s.engine.RefreshWeather(ctx); err != nil {
		log.Printf("ERROR weather refresh: %v", err)
	}
}
