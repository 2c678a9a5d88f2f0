package service

import (
	"time"

	"github.com/diegoclair/family-schedule-bot/internal/domain"
	"github.com/diegoclair/family-schedule-bot/internal/domain/entity"
)

// AutoBriefingDue reports whether the daily briefing fires on this tick.
// Only the exact configured minute matches; a missed minute is not caught up.
func AutoBriefingDue(now time.Time, settings *entity.BriefingSettings, lastDate string, speaking, briefingInProgress bool) bool {
	if settings == nil || !settings.Enabled || speaking || briefingInProgress {
		return false
	}
	if domain.DateOf(now) == lastDate {
		return false
	}
	return settings.HasDay(int(now.Weekday())) && now.Format(domain.ClockLayout) == settings.Time
}
