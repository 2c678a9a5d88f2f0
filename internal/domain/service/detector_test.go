package service

import (
	"testing"
	"time"

	"github.com/diegoclair/family-schedule-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute, second int) time.Time {
	return time.Date(2024, 3, 4, hour, minute, second, 0, time.Local)
}

func pianoItem() *entity.ScheduleItem {
	pickup := 5
	s := item("s1", "1", 1, "09:00", "10:00")
	s.Title = "Piano"
	s.NotifyMinutesBefore = 10
	s.PickupNotifyMinutesBefore = &pickup
	return s
}

func TestDetectEvent(t *testing.T) {
	noPickup := pianoItem()
	noPickup.PickupNotifyMinutesBefore = nil

	sameMinute := item("s2", "2", 1, "08:55", "09:55")
	sameMinute.NotifyMinutesBefore = 5

	type args struct {
		now             time.Time
		items           []*entity.ScheduleItem
		exceptions      []*entity.ScheduleException
		lastAnnouncedID string
	}
	tests := []struct {
		name   string
		args   args
		wantID string
	}{
		{
			name:   "Should fire the start event notify minutes before start",
			args:   args{now: at(8, 50, 0), items: []*entity.ScheduleItem{pianoItem()}},
			wantID: "s1-start",
		},
		{
			name:   "Should fire anywhere within the minute",
			args:   args{now: at(8, 50, 59), items: []*entity.ScheduleItem{pianoItem()}},
			wantID: "s1-start",
		},
		{
			name:   "Should fire the end event pickup minutes before end",
			args:   args{now: at(9, 55, 0), items: []*entity.ScheduleItem{pianoItem()}},
			wantID: "s1-end",
		},
		{
			name: "Should not fire an end event without pickup minutes",
			args: args{now: at(9, 55, 0), items: []*entity.ScheduleItem{noPickup}},
		},
		{
			name: "Should suppress the last announced event",
			args: args{now: at(8, 50, 30), items: []*entity.ScheduleItem{pianoItem()}, lastAnnouncedID: "s1-start"},
		},
		{
			name: "Should not fire on another minute",
			args: args{now: at(8, 51, 0), items: []*entity.ScheduleItem{pianoItem()}},
		},
		{
			name: "Should not fire on another weekday",
			args: args{now: at(8, 50, 0).AddDate(0, 0, 1), items: []*entity.ScheduleItem{pianoItem()}},
		},
		{
			name: "Should not fire for a skipped occurrence",
			args: args{
				now:        at(8, 50, 0),
				items:      []*entity.ScheduleItem{pianoItem()},
				exceptions: []*entity.ScheduleException{{ID: "e1", ScheduleID: "s1", Date: "2024-03-04"}},
			},
		},
		{
			name:   "Should pick the first item in stored order",
			args:   args{now: at(8, 50, 0), items: []*entity.ScheduleItem{sameMinute, pianoItem()}},
			wantID: "s2-start",
		},
		{
			name:   "Should move on to the next item when the first is suppressed",
			args:   args{now: at(8, 50, 0), items: []*entity.ScheduleItem{sameMinute, pianoItem()}, lastAnnouncedID: "s2-start"},
			wantID: "s1-start",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectEvent(tt.args.now, tt.args.items, tt.args.exceptions, tt.args.lastAnnouncedID)
			if tt.wantID == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ID())
		})
	}
}

func TestDetectEvent_StartAndEndSameMinute(t *testing.T) {
	pickup := 60
	s := item("s1", "1", 1, "09:00", "10:00")
	s.PickupNotifyMinutesBefore = &pickup

	got := DetectEvent(at(9, 0, 0), []*entity.ScheduleItem{s}, nil, "")
	require.NotNil(t, got)
	assert.Equal(t, entity.EventStart, got.Type)

	got = DetectEvent(at(9, 0, 0), []*entity.ScheduleItem{s}, nil, "s1-start")
	require.NotNil(t, got)
	assert.Equal(t, entity.EventEnd, got.Type)
}

func TestEventMessage(t *testing.T) {
	child := &entity.Child{ID: "1", Name: "Minjun", Voice: entity.VoicePuck}

	s := pianoItem()
	s.Supplies = "music book"
	assert.Equal(t,
		"Attention please. Minjun student, in 10 minutes it's time to go to Piano. Supplies are music book, don't forget them. Get ready.",
		EventMessage(&entity.Event{Item: s, Type: entity.EventStart}, child))

	s.NotifyMinutesBefore = 0
	s.Supplies = "   "
	assert.Equal(t,
		"Attention please. Minjun student, now it's time to go to Piano. No supplies needed. Get ready.",
		EventMessage(&entity.Event{Item: s, Type: entity.EventStart}, child))

	assert.Equal(t,
		"The activity is about to end. It's time to go pick them up.",
		EventMessage(&entity.Event{Item: s, Type: entity.EventEnd}, child))
}
