package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/family-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/family-schedule-bot/internal/domain/entity"
)

type scheduleRepo struct {
	db dbConn
}

func newScheduleRepo(db dbConn) contract.ScheduleRepo {
	return &scheduleRepo{db: db}
}

// List returns items in insertion order. The detector and the resolver rely
// on this order for their tie-breaks.
func (r *scheduleRepo) List() ([]*entity.ScheduleItem, error) {
	query := `
		SELECT id, child_id, title, day_of_week, start_time, end_time,
			notify_minutes_before, pickup_notify_minutes_before, fee,
			payment_cycle_day, last_paid_date, supplies
		FROM schedule_items
		ORDER BY rowid ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule items: %w", err)
	}
	defer rows.Close()

	var items []*entity.ScheduleItem
	for rows.Next() {
		item := &entity.ScheduleItem{}
		var pickup sql.NullInt64
		err := rows.Scan(
			&item.ID,
			&item.ChildID,
			&item.Title,
			&item.DayOfWeek,
			&item.StartTime,
			&item.EndTime,
			&item.NotifyMinutesBefore,
			&pickup,
			&item.Fee,
			&item.PaymentCycleDay,
			&item.LastPaidDate,
			&item.Supplies,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule item: %w", err)
		}
		if pickup.Valid {
			v := int(pickup.Int64)
			item.PickupNotifyMinutesBefore = &v
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate schedule items: %w", err)
	}

	return items, nil
}

func (r *scheduleRepo) Save(item *entity.ScheduleItem) error {
	query := `
		INSERT INTO schedule_items (id, child_id, title, day_of_week, start_time, end_time,
			notify_minutes_before, pickup_notify_minutes_before, fee,
			payment_cycle_day, last_paid_date, supplies)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			child_id = excluded.child_id,
			title = excluded.title,
			day_of_week = excluded.day_of_week,
			start_time = excluded.start_time,
			end_time = excluded.end_time,
			notify_minutes_before = excluded.notify_minutes_before,
			pickup_notify_minutes_before = excluded.pickup_notify_minutes_before,
			fee = excluded.fee,
			payment_cycle_day = excluded.payment_cycle_day,
			last_paid_date = excluded.last_paid_date,
			supplies = excluded.supplies,
			updated_at = ?
	`

	var pickup sql.NullInt64
	if item.PickupNotifyMinutesBefore != nil {
		pickup = sql.NullInt64{Int64: int64(*item.PickupNotifyMinutesBefore), Valid: true}
	}

	_, err := r.db.Exec(query,
		item.ID,
		item.ChildID,
		item.Title,
		item.DayOfWeek,
		item.StartTime,
		item.EndTime,
		item.NotifyMinutesBefore,
		pickup,
		item.Fee,
		item.PaymentCycleDay,
		item.LastPaidDate,
		item.Supplies,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to save schedule item: %w", err)
	}

	return nil
}

func (r *scheduleRepo) Delete(id string) error {
	query := `DELETE FROM schedule_items WHERE id = ?`

	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule item: %w", err)
	}

	return nil
}

func (r *scheduleRepo) DeleteByChild(childID string) error {
	query := `DELETE FROM schedule_items WHERE child_id = ?`

	_, err := r.db.Exec(query, childID)
	if err != nil {
		return fmt.Errorf("failed to delete schedule items of child: %w", err)
	}

	return nil
}
