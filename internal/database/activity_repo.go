package database

import (
	"fmt"
	"time"

	"github.com/diegoclair/family-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/family-schedule-bot/internal/domain/entity"
)

type activityRepo struct {
	db dbConn
}

func newActivityRepo(db dbConn) contract.ActivityRepo {
	return &activityRepo{db: db}
}

func (r *activityRepo) List() ([]*entity.Activity, error) {
	query := `
		SELECT id, name, category, default_fee, default_payment_day,
			supplies, teacher, phone, address
		FROM activities
		ORDER BY rowid ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get activities: %w", err)
	}
	defer rows.Close()

	var activities []*entity.Activity
	for rows.Next() {
		activity := &entity.Activity{}
		err := rows.Scan(
			&activity.ID,
			&activity.Name,
			&activity.Category,
			&activity.DefaultFee,
			&activity.DefaultPaymentDay,
			&activity.Supplies,
			&activity.Teacher,
			&activity.Phone,
			&activity.Address,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activities: %w", err)
	}

	return activities, nil
}

func (r *activityRepo) Save(activity *entity.Activity) error {
	query := `
		INSERT INTO activities (id, name, category, default_fee, default_payment_day,
			supplies, teacher, phone, address)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			default_fee = excluded.default_fee,
			default_payment_day = excluded.default_payment_day,
			supplies = excluded.supplies,
			teacher = excluded.teacher,
			phone = excluded.phone,
			address = excluded.address,
			updated_at = ?
	`

	_, err := r.db.Exec(query,
		activity.ID,
		activity.Name,
		string(activity.Category),
		activity.DefaultFee,
		activity.DefaultPaymentDay,
		activity.Supplies,
		activity.Teacher,
		activity.Phone,
		activity.Address,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to save activity: %w", err)
	}

	return nil
}

func (r *activityRepo) Delete(id string) error {
	query := `DELETE FROM activities WHERE id = ?`

	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}

	return nil
}
