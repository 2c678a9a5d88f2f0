package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/diegoclair/family-schedule-bot/internal/domain"
	"github.com/diegoclair/family-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/family-schedule-bot/internal/domain/entity"
	"github.com/google/uuid"
)

// householdService keeps every collection in memory and writes each mutation
// through to the DataManager before applying it.
type householdService struct {
	dm contract.DataManager

	mu         sync.RWMutex
	children   []*entity.Child
	activities []*entity.Activity
	schedules  []*entity.ScheduleItem
	exceptions []*entity.ScheduleException
	briefing   *entity.BriefingSettings
	region     entity.Region
}

func newHousehold(dm contract.DataManager) *householdService {
	return &householdService{
		dm:       dm,
		children: domain.DefaultChildren(),
		briefing: domain.DefaultBriefingSettings(),
		region:   domain.DefaultRegion(),
	}
}

// Load reads every collection once. A collection that cannot be read falls
// back to its default without affecting the others.
func (s *householdService) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.children = loadCollection("children", s.dm.Child().List, domain.DefaultChildren)
	s.activities = loadCollection("activities", s.dm.Activity().List, func() []*entity.Activity { return nil })
	s.schedules = loadCollection("schedule items", s.dm.Schedule().List, func() []*entity.ScheduleItem { return nil })
	s.exceptions = loadCollection("schedule exceptions", s.dm.Exception().List, func() []*entity.ScheduleException { return nil })

	s.briefing = domain.DefaultBriefingSettings()
	briefing, err := s.dm.Settings().GetBriefing()
	switch {
	case err != nil:
		log.Printf("ERROR failed to load briefing settings, using defaults: %v", err)
	case briefing == nil:
	case briefing.Validate() != nil:
		log.Printf("ERROR stored briefing settings are invalid, using defaults")
	default:
		s.briefing = briefing
	}

	s.region = domain.DefaultRegion()
	regionID, err := s.dm.Settings().GetRegionID()
	if err != nil {
		log.Printf("ERROR failed to load region, using default: %v", err)
	} else if region, ok := domain.RegionByID(regionID); ok {
		s.region = region
	}

	log.Printf("Household loaded: %d children, %d activities, %d schedule items, %d exceptions",
		len(s.children), len(s.activities), len(s.schedules), len(s.exceptions))
	return nil
}

type validatable interface {
	Validate() error
}

func loadCollection[T validatable](name string, list func() ([]T, error), fallback func() []T) []T {
	items, err := list()
	if err != nil {
		log.Printf("ERROR failed to load %s, using defaults: %v", name, err)
		return fallback()
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			log.Printf("ERROR stored %s are invalid, using defaults: %v", name, err)
			return fallback()
		}
	}
	return items
}

// Snapshot returns a copy of every collection that callers may read freely.
func (s *householdService) Snapshot() *entity.Household {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h := &entity.Household{
		Children:   make([]*entity.Child, len(s.children)),
		Activities: make([]*entity.Activity, len(s.activities)),
		Schedules:  make([]*entity.ScheduleItem, len(s.schedules)),
		Exceptions: make([]*entity.ScheduleException, len(s.exceptions)),
		Briefing:   s.briefing.Clone(),
		Region:     s.region,
	}
	for i, c := range s.children {
		h.Children[i] = c.Clone()
	}
	for i, a := range s.activities {
		cp := *a
		h.Activities[i] = &cp
	}
	for i, item := range s.schedules {
		h.Schedules[i] = item.Clone()
	}
	for i, ex := range s.exceptions {
		cp := *ex
		h.Exceptions[i] = &cp
	}
	return h
}

func invalid(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
}

func (s *householdService) childIndex(id string) int {
	for i, c := range s.children {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (s *householdService) activityIndex(id string) int {
	for i, a := range s.activities {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func (s *householdService) scheduleIndex(id string) int {
	for i, item := range s.schedules {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *householdService) AddChild(name string, age *int, voice entity.VoiceName, color string) (*entity.Child, error) {
	child := &entity.Child{
		ID:    uuid.NewString(),
		Name:  name,
		Age:   age,
		Color: color,
		Voice: voice,
	}
	if err := child.Validate(); err != nil {
		return nil, invalid(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.dm.Child().Save(child); err != nil {
		return nil, err
	}
	s.children = append(s.children, child)

	return child.Clone(), nil
}

func (s *householdService) UpdateChild(child *entity.Child) error {
	if err := child.Validate(); err != nil {
		return invalid(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.childIndex(child.ID)
	if idx < 0 {
		return fmt.Errorf("child %s: %w", child.ID, domain.ErrNotFound)
	}
	if err := s.dm.Child().Save(child); err != nil {
		return err
	}
	s.children[idx] = child.Clone()

	return nil
}

// RemoveChild deletes the child and all of its schedule items together.
func (s *householdService) RemoveChild(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.childIndex(id)
	if idx < 0 {
		return fmt.Errorf("child %s: %w", id, domain.ErrNotFound)
	}

	err := s.dm.WithTransaction(context.Background(), func(dm contract.DataManager) error {
		if err := dm.Schedule().DeleteByChild(id); err != nil {
			return err
		}
		return dm.Child().Delete(id)
	})
	if err != nil {
		return fmt.Errorf("failed to remove child: %w", err)
	}

	s.children = append(s.children[:idx:idx], s.children[idx+1:]...)
	kept := s.schedules[:0:0]
	for _, item := range s.schedules {
		if item.ChildID != id {
			kept = append(kept, item)
		}
	}
	s.schedules = kept

	return nil
}

// SaveSchedule creates the item when it has no id and replaces it otherwise.
func (s *householdService) SaveSchedule(item *entity.ScheduleItem) (*entity.ScheduleItem, error) {
	item = item.Clone()
	if item.PaymentCycleDay == 0 {
		item.PaymentCycleDay = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	if item.ID == "" {
		item.ID = uuid.NewString()
	} else if idx = s.scheduleIndex(item.ID); idx < 0 {
		return nil, fmt.Errorf("schedule item %s: %w", item.ID, domain.ErrNotFound)
	}

	if err := item.Validate(); err != nil {
		return nil, invalid(err)
	}
	if s.childIndex(item.ChildID) < 0 {
		return nil, fmt.Errorf("child %s: %w", item.ChildID, domain.ErrNotFound)
	}

	if err := s.dm.Schedule().Save(item); err != nil {
		return nil, err
	}
	if idx < 0 {
		s.schedules = append(s.schedules, item)
	} else {
		s.schedules[idx] = item
	}

	return item.Clone(), nil
}

func (s *householdService) DeleteSchedule(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.scheduleIndex(id)
	if idx < 0 {
		return fmt.Errorf("schedule item %s: %w", id, domain.ErrNotFound)
	}
	if err := s.dm.Schedule().Delete(id); err != nil {
		return err
	}
	s.schedules = append(s.schedules[:idx:idx], s.schedules[idx+1:]...)

	return nil
}

// SkipSchedule suppresses this week's occurrence of the item. The week starts on Sunday.
func (s *householdService) SkipSchedule(id string, now time.Time) (*entity.ScheduleException, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.scheduleIndex(id)
	if idx < 0 {
		return nil, fmt.Errorf("schedule item %s: %w", id, domain.ErrNotFound)
	}
	item := s.schedules[idx]
	if item.DayOfWeek == domain.HiddenDayOfWeek {
		return nil, fmt.Errorf("%w: payment-only items have no weekly occurrence", domain.ErrInvalidInput)
	}

	exception := &entity.ScheduleException{
		ID:         uuid.NewString(),
		ScheduleID: id,
		Date:       domain.DateOf(domain.WeekStart(now).AddDate(0, 0, item.DayOfWeek)),
		Reason:     domain.SkipReason,
	}
	if err := s.dm.Exception().Create(exception); err != nil {
		return nil, err
	}
	s.exceptions = append(s.exceptions, exception)

	cp := *exception
	return &cp, nil
}

func (s *householdService) AddActivity(activity *entity.Activity) (*entity.Activity, error) {
	cp := *activity
	if cp.ID == "" {
		cp.ID = uuid.NewString()
	}
	if err := cp.Validate(); err != nil {
		return nil, invalid(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activityIndex(cp.ID) >= 0 {
		return nil, fmt.Errorf("%w: activity %s already exists", domain.ErrInvalidInput, cp.ID)
	}
	if err := s.dm.Activity().Save(&cp); err != nil {
		return nil, err
	}
	s.activities = append(s.activities, &cp)

	result := cp
	return &result, nil
}

func (s *householdService) UpdateActivity(activity *entity.Activity) error {
	if err := activity.Validate(); err != nil {
		return invalid(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.activityIndex(activity.ID)
	if idx < 0 {
		return fmt.Errorf("activity %s: %w", activity.ID, domain.ErrNotFound)
	}
	if err := s.dm.Activity().Save(activity); err != nil {
		return err
	}
	cp := *activity
	s.activities[idx] = &cp

	return nil
}

// RemoveActivity deletes the template only; items created from it stay.
func (s *householdService) RemoveActivity(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.activityIndex(id)
	if idx < 0 {
		return fmt.Errorf("activity %s: %w", id, domain.ErrNotFound)
	}
	if err := s.dm.Activity().Delete(id); err != nil {
		return err
	}
	s.activities = append(s.activities[:idx:idx], s.activities[idx+1:]...)

	return nil
}

// EnrollActivity creates a payment-only item for childID from the activity template.
func (s *householdService) EnrollActivity(activityID, childID string, paidNow bool, today time.Time) (*entity.ScheduleItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	aIdx := s.activityIndex(activityID)
	if aIdx < 0 {
		return nil, fmt.Errorf("activity %s: %w", activityID, domain.ErrNotFound)
	}
	if s.childIndex(childID) < 0 {
		return nil, fmt.Errorf("child %s: %w", childID, domain.ErrNotFound)
	}
	activity := s.activities[aIdx]

	item := &entity.ScheduleItem{
		ID:              uuid.NewString(),
		ChildID:         childID,
		Title:           activity.Name,
		DayOfWeek:       domain.HiddenDayOfWeek,
		StartTime:       "00:00",
		EndTime:         "00:00",
		Fee:             activity.DefaultFee,
		PaymentCycleDay: activity.DefaultPaymentDay,
		Supplies:        activity.Supplies,
	}
	if item.PaymentCycleDay == 0 {
		item.PaymentCycleDay = 1
	}
	if paidNow {
		item.LastPaidDate = domain.DateOf(today)
	}
	if err := item.Validate(); err != nil {
		return nil, invalid(err)
	}

	if err := s.dm.Schedule().Save(item); err != nil {
		return nil, err
	}
	s.schedules = append(s.schedules, item)

	return item.Clone(), nil
}

// MarkPaid records date as the last payment of every item sharing the
// child and title of scheduleID.
func (s *householdService) MarkPaid(scheduleID, date string) error {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return fmt.Errorf("%w: invalid date %q, use YYYY-MM-DD", domain.ErrInvalidInput, date)
	}
	return s.setLastPaid(scheduleID, date)
}

func (s *householdService) ClearPaid(scheduleID string) error {
	return s.setLastPaid(scheduleID, "")
}

func (s *householdService) setLastPaid(scheduleID, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.scheduleIndex(scheduleID)
	if idx < 0 {
		return fmt.Errorf("schedule item %s: %w", scheduleID, domain.ErrNotFound)
	}
	key := paymentKey(s.schedules[idx].ChildID, s.schedules[idx].Title)

	var updated []*entity.ScheduleItem
	for _, item := range s.schedules {
		if paymentKey(item.ChildID, item.Title) != key {
			continue
		}
		cp := item.Clone()
		cp.LastPaidDate = date
		updated = append(updated, cp)
	}

	err := s.dm.WithTransaction(context.Background(), func(dm contract.DataManager) error {
		for _, item := range updated {
			if err := dm.Schedule().Save(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}

	for _, item := range updated {
		s.schedules[s.scheduleIndex(item.ID)] = item
	}

	return nil
}

func (s *householdService) PaymentSummary(today time.Time) *entity.PaymentSummary {
	h := s.Snapshot()
	return SummarizePayments(h.Children, h.Schedules, today)
}

func (s *householdService) SaveBriefingSettings(settings *entity.BriefingSettings) error {
	if err := settings.Validate(); err != nil {
		return invalid(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.dm.Settings().SaveBriefing(settings); err != nil {
		return err
	}
	s.briefing = settings.Clone()

	return nil
}

func (s *householdService) SetRegion(regionID string) (entity.Region, error) {
	region, ok := domain.RegionByID(regionID)
	if !ok {
		return entity.Region{}, fmt.Errorf("region %s: %w", regionID, domain.ErrNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.dm.Settings().SaveRegionID(region.ID); err != nil {
		return entity.Region{}, err
	}
	s.region = region

	return region, nil
}

// Today resolves the occurrences of now's date.
func (s *householdService) Today(now time.Time, childFilter string) []entity.Occurrence {
	h := s.Snapshot()
	return Resolve(now, h.Schedules, h.Exceptions, childFilter)
}
