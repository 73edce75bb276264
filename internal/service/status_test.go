package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirco-cloud/tripsync/models"
)

func TestStatusTracker_StartsIdle(t *testing.T) {
	tracker := NewStatusTracker(time.Minute)

	status := tracker.Current()
	assert.Equal(t, models.SyncIdle, status.State)
	assert.Empty(t, status.Message)
	assert.Nil(t, status.LastSync)
}

func TestStatusTracker_TerminalStateResetsToIdle(t *testing.T) {
	tracker := NewStatusTracker(20 * time.Millisecond)

	tracker.Set(models.SyncFailed, "Sync failed")
	assert.Equal(t, models.SyncFailed, tracker.Current().State)

	assert.Eventually(t, func() bool {
		return tracker.Current().State == models.SyncIdle
	}, time.Second, 5*time.Millisecond)
	assert.Empty(t, tracker.Current().Message)
}

func TestStatusTracker_RunningStateDoesNotReset(t *testing.T) {
	tracker := NewStatusTracker(20 * time.Millisecond)

	tracker.Set(models.SyncRunning, "")
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, models.SyncRunning, tracker.Current().State)
}

func TestStatusTracker_NewTransitionCancelsPendingReset(t *testing.T) {
	tracker := NewStatusTracker(20 * time.Millisecond)

	tracker.Set(models.SyncSuccess, "")
	tracker.Set(models.SyncRunning, "")
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, models.SyncRunning, tracker.Current().State)
}

func TestStatusTracker_LastSyncSurvivesIdleReset(t *testing.T) {
	tracker := NewStatusTracker(10 * time.Millisecond)
	ts := time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC)

	tracker.SetLastSync(ts)
	tracker.Set(models.SyncSuccess, "")

	assert.Eventually(t, func() bool {
		return tracker.Current().State == models.SyncIdle
	}, time.Second, 5*time.Millisecond)

	require.NotNil(t, tracker.Current().LastSync)
	assert.True(t, tracker.Current().LastSync.Equal(ts))
}

func TestStatusTracker_SubscribeAndUnsubscribe(t *testing.T) {
	tracker := NewStatusTracker(time.Minute)

	var mu sync.Mutex
	var seen []models.SyncState
	unsubscribe := tracker.Subscribe(func(status models.SyncStatus) {
		mu.Lock()
		seen = append(seen, status.State)
		mu.Unlock()
	})

	tracker.Set(models.SyncRunning, "")
	tracker.Set(models.SyncSuccess, "")
	unsubscribe()
	tracker.Set(models.SyncFailed, "ignored")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []models.SyncState{models.SyncRunning, models.SyncSuccess}, seen)
}
