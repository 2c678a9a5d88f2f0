package service

import (
	"testing"
	"time"

	"github.com/diegoclair/family-schedule-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id, childID string, day int, start, end string) *entity.ScheduleItem {
	return &entity.ScheduleItem{
		ID:              id,
		ChildID:         childID,
		Title:           "Activity " + id,
		DayOfWeek:       day,
		StartTime:       start,
		EndTime:         end,
		PaymentCycleDay: 1,
	}
}

func ids(occurrences []entity.Occurrence) []string {
	var result []string
	for _, o := range occurrences {
		result = append(result, o.Item.ID)
	}
	return result
}

// 2024-03-04 is a Monday
var monday = time.Date(2024, 3, 4, 8, 0, 0, 0, time.Local)

func TestResolve(t *testing.T) {
	items := []*entity.ScheduleItem{
		item("late", "1", 1, "15:00", "16:00"),
		item("tuesday", "1", 2, "09:00", "10:00"),
		item("hidden", "1", 8, "00:00", "00:00"),
		item("early-long", "2", 1, "09:00", "11:00"),
		item("early-short", "1", 1, "09:00", "10:00"),
		item("early-short-2", "2", 1, "09:00", "10:00"),
	}

	tests := []struct {
		name       string
		date       time.Time
		exceptions []*entity.ScheduleException
		filter     string
		want       []string
		skipped    []string
	}{
		{
			name: "Should select today's weekday ordered by start, end and input order",
			date: monday,
			want: []string{"early-short", "early-short-2", "early-long", "late"},
		},
		{
			name:   "Should treat ALL as no filter",
			date:   monday,
			filter: "ALL",
			want:   []string{"early-short", "early-short-2", "early-long", "late"},
		},
		{
			name:   "Should filter by child",
			date:   monday,
			filter: "2",
			want:   []string{"early-short-2", "early-long"},
		},
		{
			name: "Should never include hidden items",
			date: monday.AddDate(0, 0, 1),
			want: []string{"tuesday"},
		},
		{
			name: "Should mark an exception on the exact date as skipped",
			date: monday,
			exceptions: []*entity.ScheduleException{
				{ID: "e1", ScheduleID: "late", Date: "2024-03-04"},
			},
			want:    []string{"early-short", "early-short-2", "early-long", "late"},
			skipped: []string{"late"},
		},
		{
			name: "Should not skip the following week",
			date: monday.AddDate(0, 0, 7),
			exceptions: []*entity.ScheduleException{
				{ID: "e1", ScheduleID: "late", Date: "2024-03-04"},
			},
			want: []string{"early-short", "early-short-2", "early-long", "late"},
		},
		{
			name: "Should return empty for a day without items",
			date: monday.AddDate(0, 0, 5),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.date, items, tt.exceptions, tt.filter)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))

			var skipped []string
			for _, o := range got {
				if o.IsSkipped {
					skipped = append(skipped, o.Item.ID)
				}
			}
			assert.Equal(t, tt.skipped, skipped)
		})
	}
}
