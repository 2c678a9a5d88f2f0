package entity

import "fmt"

type ScheduleItem struct {
	ID                        string `json:"id" db:"id" validate:"required"`
	ChildID                   string `json:"child_id" db:"child_id" validate:"required"`
	Title                     string `json:"title" db:"title" validate:"required"`
	DayOfWeek                 int    `json:"day_of_week" db:"day_of_week" validate:"oneof=0 1 2 3 4 5 6 8"`
	StartTime                 string `json:"start_time" db:"start_time" validate:"required,datetime=15:04"` // HH:MM format
	EndTime                   string `json:"end_time" db:"end_time" validate:"required,datetime=15:04"`     // HH:MM format
	NotifyMinutesBefore       int    `json:"notify_minutes_before" db:"notify_minutes_before" validate:"min=0"`
	PickupNotifyMinutesBefore *int   `json:"pickup_notify_minutes_before,omitempty" db:"pickup_notify_minutes_before" validate:"omitempty,min=0"`
	Fee                       int    `json:"fee" db:"fee" validate:"min=0"`
	PaymentCycleDay           int    `json:"payment_cycle_day" db:"payment_cycle_day" validate:"min=1,max=31"`
	LastPaidDate              string `json:"last_paid_date,omitempty" db:"last_paid_date" validate:"omitempty,datetime=2006-01-02"`
	Supplies                  string `json:"supplies,omitempty" db:"supplies"`
}

// Validate checks field ranges and that the item does not span midnight.
// "HH:MM" is fixed width, so string order is time order.
func (s *ScheduleItem) Validate() error {
	if err := validate.Struct(s); err != nil {
		return err
	}
	if s.StartTime > s.EndTime {
		return fmt.Errorf("start time %s is after end time %s", s.StartTime, s.EndTime)
	}
	return nil
}

func (s *ScheduleItem) Clone() *ScheduleItem {
	cp := *s
	if s.PickupNotifyMinutesBefore != nil {
		v := *s.PickupNotifyMinutesBefore
		cp.PickupNotifyMinutesBefore = &v
	}
	return &cp
}

// ScheduleException suppresses the single occurrence of ScheduleID on Date.
type ScheduleException struct {
	ID         string `json:"id" db:"id" validate:"required"`
	ScheduleID string `json:"schedule_id" db:"schedule_id" validate:"required"`
	Date       string `json:"date" db:"date" validate:"required,datetime=2006-01-02"` // YYYY-MM-DD
	Reason     string `json:"reason" db:"reason"`
}

func (e *ScheduleException) Validate() error {
	return validate.Struct(e)
}

// Occurrence is a schedule item resolved onto one concrete date.
type Occurrence struct {
	Item      *ScheduleItem
	IsSkipped bool
}
