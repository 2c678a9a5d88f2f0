//go:generate mockgen -source=service.go -destination=../../../mocks/service_mock.go -package=mocks
package contract

import (
	"context"
	"time"

	"github.com/diegoclair/family-schedule-bot/internal/domain/entity"
)

// HouseholdService owns the in-memory entity store and its write-through persistence.
type HouseholdService interface {
	Load() error
	Snapshot() *entity.Household

	AddChild(name string, age *int, voice entity.VoiceName, color string) (*entity.Child, error)
	UpdateChild(child *entity.Child) error
	RemoveChild(id string) error

	SaveSchedule(item *entity.ScheduleItem) (*entity.ScheduleItem, error)
	DeleteSchedule(id string) error
	SkipSchedule(id string, now time.Time) (*entity.ScheduleException, error)

	AddActivity(activity *entity.Activity) (*entity.Activity, error)
	UpdateActivity(activity *entity.Activity) error
	RemoveActivity(id string) error
	EnrollActivity(activityID, childID string, paidNow bool, today time.Time) (*entity.ScheduleItem, error)

	MarkPaid(scheduleID, date string) error
	ClearPaid(scheduleID string) error
	PaymentSummary(today time.Time) *entity.PaymentSummary

	SaveBriefingSettings(settings *entity.BriefingSettings) error
	SetRegion(regionID string) (entity.Region, error)

	Today(now time.Time, childFilter string) []entity.Occurrence
}

// EngineController is the part of the engine reachable from outside the tick loop.
// Every call is marshalled onto the tick that owns the engine state.
type EngineController interface {
	RequestBriefing(ctx context.Context, childFilter string) error
	SetAudioEnabled(ctx context.Context, enabled bool) error
	Status(ctx context.Context) (*entity.EngineStatus, error)
}

// Announcer hands an announcement to the speech pipeline.
type Announcer interface {
	Announce(ctx context.Context, text string, voice entity.VoiceName) (*entity.Announcement, error)
}

// Synthesizer converts text into audio with the given voice.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, voice entity.VoiceName) (*entity.Audio, error)
}

// Player delivers a synthesized announcement to the household.
type Player interface {
	Play(ctx context.Context, text string, audio *entity.Audio) error
}

// Alerter reports one-shot failures to the household.
type Alerter interface {
	Alert(ctx context.Context, message string) error
}

// WeatherClient fetches current and yesterday conditions for a location.
type WeatherClient interface {
	FetchConditions(ctx context.Context, lat, lon float64) (*entity.Weather, error)
}

// WeatherRefresher triggers an out-of-cycle weather poll.
type WeatherRefresher interface {
	RefreshWeather() error
}
