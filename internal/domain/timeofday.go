package domain

import (
	"fmt"
	"time"
)

// ParseClock converts "HH:MM" into minutes since midnight.
func ParseClock(value string) (int, error) {
	t, err := time.Parse(ClockLayout, value)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid time %q, use HH:MM", ErrInvalidInput, value)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// MinutesOfDay returns the minutes elapsed since local midnight.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// DateOf formats the calendar date of t as YYYY-MM-DD.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// WeekStart returns local midnight of the Sunday that starts t's week.
func WeekStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d-int(t.Weekday()), 0, 0, 0, 0, t.Location())
}
