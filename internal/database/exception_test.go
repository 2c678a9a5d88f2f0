package database

import (
	"testing"

	"github.com/diegoclair/family-schedule-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExceptionRepository_CreateAndList(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newExceptionRepo(db.conn)

	exceptions, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, exceptions)

	first := &entity.ScheduleException{ID: "e1", ScheduleID: "s1", Date: "2024-03-04", Reason: "absent"}
	second := &entity.ScheduleException{ID: "e2", ScheduleID: "s1", Date: "2024-03-11", Reason: "absent"}
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	exceptions, err = repo.List()
	require.NoError(t, err)
	require.Len(t, exceptions, 2)
	assert.Equal(t, first, exceptions[0])
	assert.Equal(t, second, exceptions[1])

	// Ids are unique
	assert.Error(t, repo.Create(first))
}
