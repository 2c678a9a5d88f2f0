package database

import (
	"fmt"

	"github.com/diegoclair/family-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/family-schedule-bot/internal/domain/entity"
)

type exceptionRepo struct {
	db dbConn
}

func newExceptionRepo(db dbConn) contract.ExceptionRepo {
	return &exceptionRepo{db: db}
}

func (r *exceptionRepo) List() ([]*entity.ScheduleException, error) {
	query := `
		SELECT id, schedule_id, date, reason
		FROM schedule_exceptions
		ORDER BY rowid ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule exceptions: %w", err)
	}
	defer rows.Close()

	var exceptions []*entity.ScheduleException
	for rows.Next() {
		exception := &entity.ScheduleException{}
		err := rows.Scan(
			&exception.ID,
			&exception.ScheduleID,
			&exception.Date,
			&exception.Reason,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule exception: %w", err)
		}
		exceptions = append(exceptions, exception)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate schedule exceptions: %w", err)
	}

	return exceptions, nil
}

func (r *exceptionRepo) Create(exception *entity.ScheduleException) error {
	query := `
		INSERT INTO schedule_exceptions (id, schedule_id, date, reason)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		exception.ID,
		exception.ScheduleID,
		exception.Date,
		exception.Reason,
	)
	if err != nil {
		return fmt.Errorf("failed to create schedule exception: %w", err)
	}

	return nil
}
