package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/family-schedule-bot/internal/domain"
	"github.com/diegoclair/family-schedule-bot/internal/domain/entity"
)

const endMessage = "The activity is about to end. It's time to go pick them up."

// DetectEvent returns the first notification boundary that falls on the
// minute of now, scanning items in stored order. An event whose id equals
// lastAnnouncedID is suppressed, and the next check of the same item is
// tried instead.
func DetectEvent(now time.Time, items []*entity.ScheduleItem, exceptions []*entity.ScheduleException, lastAnnouncedID string) *entity.Event {
	weekday := int(now.Weekday())
	dateStr := domain.DateOf(now)
	current := domain.MinutesOfDay(now)

	for _, item := range items {
		if item.DayOfWeek != weekday {
			continue
		}
		if isSkipped(item.ID, dateStr, exceptions) {
			continue
		}

		start, err := domain.ParseClock(item.StartTime)
		if err == nil && current == start-item.NotifyMinutesBefore {
			event := &entity.Event{Item: item, Type: entity.EventStart}
			if event.ID() != lastAnnouncedID {
				return event
			}
		}

		if item.PickupNotifyMinutesBefore == nil {
			continue
		}
		end, err := domain.ParseClock(item.EndTime)
		if err == nil && current == end-*item.PickupNotifyMinutesBefore {
			event := &entity.Event{Item: item, Type: entity.EventEnd}
			if event.ID() != lastAnnouncedID {
				return event
			}
		}
	}

	return nil
}

// EventMessage builds the spoken text for event addressed to child.
func EventMessage(event *entity.Event, child *entity.Child) string {
	if event.Type == entity.EventEnd {
		return endMessage
	}

	item := event.Item
	when := "now"
	if item.NotifyMinutesBefore > 0 {
		when = fmt.Sprintf("in %d minutes", item.NotifyMinutesBefore)
	}

	supplies := "No supplies needed"
	if s := strings.TrimSpace(item.Supplies); s != "" {
		supplies = fmt.Sprintf("Supplies are %s, don't forget them", s)
	}

	return fmt.Sprintf("Attention please. %s student, %s it's time to go to %s. %s. Get ready.",
		child.Name, when, item.Title, supplies)
}
