package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/family-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/family-schedule-bot/internal/domain/entity"
)

type childRepo struct {
	db dbConn
}

func newChildRepo(db dbConn) contract.ChildRepo {
	return &childRepo{db: db}
}

func (r *childRepo) List() ([]*entity.Child, error) {
	query := `
		SELECT id, name, age, color, voice
		FROM children
		ORDER BY rowid ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get children: %w", err)
	}
	defer rows.Close()

	var children []*entity.Child
	for rows.Next() {
		child := &entity.Child{}
		var age sql.NullInt64
		err := rows.Scan(
			&child.ID,
			&child.Name,
			&age,
			&child.Color,
			&child.Voice,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan child: %w", err)
		}
		if age.Valid {
			v := int(age.Int64)
			child.Age = &v
		}
		children = append(children, child)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate children: %w", err)
	}

	return children, nil
}

func (r *childRepo) Save(child *entity.Child) error {
	query := `
		INSERT INTO children (id, name, age, color, voice)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			age = excluded.age,
			color = excluded.color,
			voice = excluded.voice,
			updated_at = ?
	`

	var age sql.NullInt64
	if child.Age != nil {
		age = sql.NullInt64{Int64: int64(*child.Age), Valid: true}
	}

	_, err := r.db.Exec(query,
		child.ID,
		child.Name,
		age,
		child.Color,
		string(child.Voice),
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to save child: %w", err)
	}

	return nil
}

func (r *childRepo) Delete(id string) error {
	query := `DELETE FROM children WHERE id = ?`

	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete child: %w", err)
	}

	return nil
}
