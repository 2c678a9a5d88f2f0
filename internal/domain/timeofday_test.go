package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{name: "Should parse midnight", value: "00:00", want: 0},
		{name: "Should parse morning time", value: "08:50", want: 530},
		{name: "Should parse last minute of day", value: "23:59", want: 1439},
		{name: "Should reject hour out of range", value: "24:00", wantErr: true},
		{name: "Should reject missing colon", value: "0900", wantErr: true},
		{name: "Should reject empty value", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeekStart(t *testing.T) {
	// Wednesday 2024-01-03
	now := time.Date(2024, 1, 3, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), WeekStart(now))

	// Sunday is its own week start
	sunday := time.Date(2024, 1, 7, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), WeekStart(sunday))
}

func TestRegionByID(t *testing.T) {
	r, ok := RegionByID("busan")
	require.True(t, ok)
	assert.Equal(t, "Busan", r.Name)

	_, ok = RegionByID("tokyo")
	assert.False(t, ok)

	assert.Equal(t, DefaultRegionID, DefaultRegion().ID)
}

func TestDefaultBriefingSettings(t *testing.T) {
	a := DefaultBriefingSettings()
	b := DefaultBriefingSettings()

	assert.False(t, a.Enabled)
	assert.Equal(t, "08:00", a.Time)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, a.Days)

	a.Days[0] = 0
	assert.Equal(t, Monday, b.Days[0], "Expected defaults to be independent copies")
}
