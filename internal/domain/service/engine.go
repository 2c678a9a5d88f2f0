package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/diegoclair/family-schedule-bot/internal/domain"
	"github.com/diegoclair/family-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/family-schedule-bot/internal/domain/entity"
)

const inboxSize = 64

// Engine owns the notification state. Only Tick reads or writes it; every
// other goroutine hands work to Tick through the inbox.
type Engine struct {
	household contract.HouseholdService
	announcer contract.Announcer
	alerter   contract.Alerter
	weather   contract.WeatherClient

	inbox chan func(now time.Time)

	audioEnabled         bool
	speaking             bool
	briefingInProgress   bool
	lastAnnouncedID      string
	cooldownUntil        time.Time
	lastAutoBriefingDate string
	currentWeather       *entity.Weather
}

func newEngine(household contract.HouseholdService, announcer contract.Announcer, alerter contract.Alerter, weather contract.WeatherClient, audioEnabled bool) *Engine {
	return &Engine{
		household:    household,
		announcer:    announcer,
		alerter:      alerter,
		weather:      weather,
		inbox:        make(chan func(now time.Time), inboxSize),
		audioEnabled: audioEnabled,
	}
}

// Tick evaluates one clock step. Calls must not overlap.
func (e *Engine) Tick(now time.Time) {
	e.drain(now)

	if !e.cooldownUntil.IsZero() && !now.Before(e.cooldownUntil) {
		e.lastAnnouncedID = ""
		e.cooldownUntil = time.Time{}
	}

	snapshot := e.household.Snapshot()

	if AutoBriefingDue(now, snapshot.Briefing, e.lastAutoBriefingDate, e.speaking, e.briefingInProgress) {
		log.Println("Auto briefing triggered")
		e.lastAutoBriefingDate = domain.DateOf(now)
		if err := e.startBriefing(now, snapshot, domain.AllChildren); err != nil {
			log.Printf("ERROR auto briefing: %v", err)
		}
	}

	if !e.audioEnabled || e.speaking || e.briefingInProgress {
		return
	}

	e.detect(now, snapshot)
}

func (e *Engine) drain(now time.Time) {
	for {
		select {
		case fn := <-e.inbox:
			fn(now)
		default:
			return
		}
	}
}

func (e *Engine) detect(now time.Time, snapshot *entity.Household) {
	event := DetectEvent(now, snapshot.Schedules, snapshot.Exceptions, e.lastAnnouncedID)
	if event == nil {
		return
	}

	child := snapshot.ChildByID(event.Item.ChildID)
	if child == nil {
		log.Printf("DEBUG dropping event %s: child %s not found", event.ID(), event.Item.ChildID)
		return
	}

	e.lastAnnouncedID = event.ID()
	e.speaking = true
	e.cooldownUntil = time.Time{}

	announcement, err := e.announcer.Announce(context.Background(), EventMessage(event, child), child.Voice)
	if err != nil {
		log.Printf("ERROR failed to announce %s: %v", event.ID(), err)
		e.speaking = false
		e.cooldownUntil = now.Add(domain.AnnouncementCooldown)
		go e.alert(fmt.Sprintf("Announcement for %s failed: %v", event.Item.Title, err))
		return
	}

	log.Printf("Announcing %s for %s", event.ID(), child.Name)
	go e.await(announcement, "announcement", func(now time.Time) {
		e.speaking = false
		e.cooldownUntil = now.Add(domain.AnnouncementCooldown)
	})
}

// startBriefing composes and dispatches a briefing. The in-progress flag is
// cleared on every exit path.
func (e *Engine) startBriefing(now time.Time, snapshot *entity.Household, childFilter string) error {
	if e.briefingInProgress {
		return domain.ErrBriefingInProgress
	}
	e.briefingInProgress = true

	text := ComposeBriefing(BriefingInput{
		Now:         now,
		Weather:     e.currentWeather,
		Region:      snapshot.Region,
		Items:       snapshot.Schedules,
		Exceptions:  snapshot.Exceptions,
		Children:    snapshot.Children,
		ChildFilter: childFilter,
	})

	announcement, err := e.announcer.Announce(context.Background(), text, domain.AnnouncerVoice)
	if err != nil {
		e.briefingInProgress = false
		go e.alert(fmt.Sprintf("Briefing could not start: %v", err))
		return fmt.Errorf("failed to start briefing: %w", err)
	}

	go e.await(announcement, "briefing", func(time.Time) {
		e.briefingInProgress = false
	})
	return nil
}

// await waits for an announcement to finish, reports a failure and posts
// onDone back onto the tick.
func (e *Engine) await(announcement *entity.Announcement, kind string, onDone func(now time.Time)) {
	err := <-announcement.Done
	if err != nil {
		log.Printf("ERROR %s failed: %v", kind, err)
		e.alert(fmt.Sprintf("The %s failed: %v", kind, err))
	}
	e.inbox <- onDone
}

func (e *Engine) alert(message string) {
	if e.alerter == nil {
		return
	}
	if err := e.alerter.Alert(context.Background(), message); err != nil {
		log.Printf("ERROR failed to post alert: %v", err)
	}
}

// enqueue hands fn to the next tick.
func (e *Engine) enqueue(ctx context.Context, fn func(now time.Time)) error {
	select {
	case e.inbox <- fn:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// call runs fn on the next tick and waits for its result.
func call[T any](ctx context.Context, e *Engine, fn func(now time.Time) T) (T, error) {
	reply := make(chan T, 1)
	var zero T

	err := e.enqueue(ctx, func(now time.Time) {
		reply <- fn(now)
	})
	if err != nil {
		return zero, err
	}

	select {
	case v := <-reply:
		return v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// RequestBriefing starts a briefing for childFilter on the next tick.
func (e *Engine) RequestBriefing(ctx context.Context, childFilter string) error {
	result, err := call(ctx, e, func(now time.Time) error {
		return e.startBriefing(now, e.household.Snapshot(), childFilter)
	})
	if err != nil {
		return err
	}
	return result
}

func (e *Engine) SetAudioEnabled(ctx context.Context, enabled bool) error {
	return e.enqueue(ctx, func(time.Time) {
		e.audioEnabled = enabled
		log.Printf("Audio notifications enabled: %t", enabled)
	})
}

func (e *Engine) Status(ctx context.Context) (*entity.EngineStatus, error) {
	return call(ctx, e, func(time.Time) *entity.EngineStatus {
		status := &entity.EngineStatus{
			AudioEnabled:         e.audioEnabled,
			Speaking:             e.speaking,
			BriefingInProgress:   e.briefingInProgress,
			LastAnnouncedID:      e.lastAnnouncedID,
			LastAutoBriefingDate: e.lastAutoBriefingDate,
		}
		if e.currentWeather != nil {
			w := *e.currentWeather
			status.Weather = &w
		}
		return status
	})
}

// RefreshWeather fetches conditions for the selected region and hands the
// result to the tick. A failed fetch clears the cached weather.
func (e *Engine) RefreshWeather(ctx context.Context) error {
	region := e.household.Snapshot().Region

	weather, err := e.weather.FetchConditions(ctx, region.Lat, region.Lon)
	if err != nil {
		log.Printf("ERROR failed to fetch weather for %s: %v", region.ID, err)
		weather = nil
	}

	return e.enqueue(ctx, func(time.Time) {
		e.currentWeather = weather
	})
}
