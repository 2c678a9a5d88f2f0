package database

import (
	"testing"

	"github.com/diegoclair/family-schedule-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepository_Briefing(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSettingsRepo(db.conn)

	// Seeded defaults
	settings, err := repo.GetBriefing()
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.False(t, settings.Enabled)
	assert.Equal(t, "08:00", settings.Time)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, settings.Days)

	updated := &entity.BriefingSettings{Enabled: true, Time: "07:30", Days: []int{0, 6}}
	require.NoError(t, repo.SaveBriefing(updated))

	settings, err = repo.GetBriefing()
	require.NoError(t, err)
	assert.Equal(t, updated, settings)

	// Nil days persist as an empty list
	require.NoError(t, repo.SaveBriefing(&entity.BriefingSettings{Time: "09:00"}))
	settings, err = repo.GetBriefing()
	require.NoError(t, err)
	assert.Empty(t, settings.Days)
}

func TestSettingsRepository_Region(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSettingsRepo(db.conn)

	regionID, err := repo.GetRegionID()
	require.NoError(t, err)
	assert.Equal(t, "seoul", regionID)

	require.NoError(t, repo.SaveRegionID("busan"))

	regionID, err = repo.GetRegionID()
	require.NoError(t, err)
	assert.Equal(t, "busan", regionID)
}

func TestSettingsRepository_RegionMissing(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	_, err := db.conn.Exec(`DELETE FROM preferences`)
	require.NoError(t, err)

	repo := newSettingsRepo(db.conn)
	regionID, err := repo.GetRegionID()
	require.NoError(t, err)
	assert.Empty(t, regionID)
}
