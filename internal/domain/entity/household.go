package entity

// Household is a consistent copy of every persisted collection.
type Household struct {
	Children   []*Child
	Activities []*Activity
	Schedules  []*ScheduleItem
	Exceptions []*ScheduleException
	Briefing   *BriefingSettings
	Region     Region
}

// ChildByID returns the child with the given id, or nil.
func (h *Household) ChildByID(id string) *Child {
	for _, c := range h.Children {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// ScheduleByID returns the schedule item with the given id, or nil.
func (h *Household) ScheduleByID(id string) *ScheduleItem {
	for _, s := range h.Schedules {
		if s.ID == id {
			return s
		}
	}
	return nil
}
