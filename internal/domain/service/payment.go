package service

import (
	"time"

	"github.com/diegoclair/family-schedule-bot/internal/domain"
	"github.com/diegoclair/family-schedule-bot/internal/domain/entity"
)

func paymentKey(childID, title string) string {
	return childID + "-" + title
}

// SummarizePayments merges items of the same child and title into payment
// groups, in order of first appearance. Groups without a fee are dropped.
func SummarizePayments(children []*entity.Child, items []*entity.ScheduleItem, today time.Time) *entity.PaymentSummary {
	var groups []*entity.PaymentGroup
	byKey := make(map[string]*entity.PaymentGroup)

	for _, item := range items {
		key := paymentKey(item.ChildID, item.Title)
		group, ok := byKey[key]
		if !ok {
			group = &entity.PaymentGroup{
				Key:     key,
				ChildID: item.ChildID,
				Title:   item.Title,
			}
			byKey[key] = group
			groups = append(groups, group)
		}

		group.ScheduleIDs = append(group.ScheduleIDs, item.ID)
		if item.Fee > group.Fee {
			group.Fee = item.Fee
		}
		if group.PaymentCycleDay == 0 && item.PaymentCycleDay > 0 {
			group.PaymentCycleDay = item.PaymentCycleDay
		}
		if item.LastPaidDate > group.LastPaidDate {
			group.LastPaidDate = item.LastPaidDate
		}
		if item.Supplies != "" {
			group.Supplies = append(group.Supplies, item.Supplies)
		}
	}

	summary := &entity.PaymentSummary{}
	totals := make(map[string]int)
	for _, group := range groups {
		if group.Fee <= 0 {
			continue
		}
		if group.PaymentCycleDay == 0 {
			group.PaymentCycleDay = 1
		}
		group.Paid = IsPaidForCurrentCycle(group.LastPaidDate, group.PaymentCycleDay, today)

		summary.Groups = append(summary.Groups, group)
		summary.Total += group.Fee
		totals[group.ChildID] += group.Fee
		if !group.Paid {
			summary.Unpaid += group.Fee
		}
	}

	for _, child := range children {
		if total := totals[child.ID]; total > 0 {
			summary.ByChild = append(summary.ByChild, entity.ChildTotal{ChildID: child.ID, Name: child.Name, Total: total})
		}
	}

	return summary
}

// IsPaidForCurrentCycle reports whether lastPaid covers the most recent due
// date. The due date is cycleDay of the current month, or of the previous
// month when today is before cycleDay. Days past the end of a month roll
// into the next one, as time.Date does.
func IsPaidForCurrentCycle(lastPaid string, cycleDay int, today time.Time) bool {
	if lastPaid == "" {
		return false
	}
	if cycleDay <= 0 {
		cycleDay = 1
	}

	loc := today.Location()
	paid, err := time.ParseInLocation(domain.DateLayout, lastPaid, loc)
	if err != nil {
		return false
	}

	due := time.Date(today.Year(), today.Month(), cycleDay, 0, 0, 0, 0, loc)
	if today.Day() < cycleDay {
		due = time.Date(due.Year(), due.Month()-1, due.Day(), 0, 0, 0, 0, loc)
	}

	return !paid.Before(due)
}
