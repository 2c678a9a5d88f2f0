package service

import (
	"sort"
	"time"

	"github.com/diegoclair/family-schedule-bot/internal/domain"
	"github.com/diegoclair/family-schedule-bot/internal/domain/entity"
)

// Resolve returns the occurrences of items on the calendar date of date,
// ordered by start time, then end time, then input order.
func Resolve(date time.Time, items []*entity.ScheduleItem, exceptions []*entity.ScheduleException, childFilter string) []entity.Occurrence {
	weekday := int(date.Weekday())
	dateStr := domain.DateOf(date)

	occurrences := make([]entity.Occurrence, 0)
	for _, item := range items {
		if item.DayOfWeek != weekday {
			continue
		}
		if childFilter != "" && childFilter != domain.AllChildren && item.ChildID != childFilter {
			continue
		}
		occurrences = append(occurrences, entity.Occurrence{
			Item:      item,
			IsSkipped: isSkipped(item.ID, dateStr, exceptions),
		})
	}

	sort.SliceStable(occurrences, func(i, j int) bool {
		a, b := occurrences[i].Item, occurrences[j].Item
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}
		return a.EndTime < b.EndTime
	})

	return occurrences
}

func isSkipped(scheduleID, date string, exceptions []*entity.ScheduleException) bool {
	for _, ex := range exceptions {
		if ex.ScheduleID == scheduleID && ex.Date == date {
			return true
		}
	}
	return false
}
