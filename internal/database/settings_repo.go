package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/diegoclair/family-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/family-schedule-bot/internal/domain/entity"
)

const regionPreferenceKey = "region"

type settingsRepo struct {
	db dbConn
}

func newSettingsRepo(db dbConn) contract.SettingsRepo {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) GetBriefing() (*entity.BriefingSettings, error) {
	settings := &entity.BriefingSettings{}
	query := `
		SELECT enabled, time, days
		FROM briefing_settings
		WHERE id = 1
	`

	var daysJSON string
	err := r.db.QueryRow(query).Scan(
		&settings.Enabled,
		&settings.Time,
		&daysJSON,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get briefing settings: %w", err)
	}

	// Convert JSON to Days slice
	if err := json.Unmarshal([]byte(daysJSON), &settings.Days); err != nil {
		return nil, fmt.Errorf("failed to unmarshal briefing days: %w", err)
	}

	return settings, nil
}

func (r *settingsRepo) SaveBriefing(settings *entity.BriefingSettings) error {
	query := `
		INSERT INTO briefing_settings (id, enabled, time, days)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			enabled = excluded.enabled,
			time = excluded.time,
			days = excluded.days,
			updated_at = ?
	`

	// Convert Days to JSON for storage
	days := settings.Days
	if days == nil {
		days = []int{}
	}
	daysJSON, err := json.Marshal(days)
	if err != nil {
		return fmt.Errorf("failed to marshal briefing days: %w", err)
	}

	_, err = r.db.Exec(query,
		settings.Enabled,
		settings.Time,
		string(daysJSON),
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to save briefing settings: %w", err)
	}

	return nil
}

func (r *settingsRepo) GetRegionID() (string, error) {
	query := `SELECT value FROM preferences WHERE key = ?`

	var regionID string
	err := r.db.QueryRow(query, regionPreferenceKey).Scan(&regionID)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get region preference: %w", err)
	}

	return regionID, nil
}

func (r *settingsRepo) SaveRegionID(regionID string) error {
	query := `
		INSERT INTO preferences (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = ?
	`

	_, err := r.db.Exec(query, regionPreferenceKey, regionID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save region preference: %w", err)
	}

	return nil
}
