package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	ticks     atomic.Int32
	refreshes atomic.Int32
	location  atomic.Value
}

func (f *fakeEngine) Tick(now time.Time) {
	f.location.Store(now.Location().String())
	f.ticks.Add(1)
}

func (f *fakeEngine) RefreshWeather(ctx context.Context) error {
	f.refreshes.Add(1)
	return nil
}

func TestScheduler(t *testing.T) {
	engine := &fakeEngine{}
	location := time.FixedZone("KST", 9*60*60)

	s, err := New(engine, location)
	require.NoError(t, err)

	s.Start()
	defer func() {
		assert.NoError(t, s.Stop())
	}()

	// Weather is polled once on start
	require.Eventually(t, func() bool { return engine.refreshes.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.Eventually(t, func() bool { return engine.ticks.Load() >= 1 }, 3*time.Second, 10*time.Millisecond)
	assert.Equal(t, "KST", engine.location.Load())

	require.NoError(t, s.RefreshWeather())
	require.Eventually(t, func() bool { return engine.refreshes.Load() == 2 }, 2*time.Second, 10*time.Millisecond)
}
