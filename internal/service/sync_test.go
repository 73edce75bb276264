package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirco-cloud/tripsync/internal/adapter"
	"github.com/nirco-cloud/tripsync/internal/logger"
	"github.com/nirco-cloud/tripsync/models"
)

var syncNow = time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC)

type syncFixture struct {
	svc      *syncService
	plan     *fakePlanRepo
	settings *fakeSettingsRepo
	remote   *sharedRemote
	status   *StatusTracker
}

func newSyncFixture(t *testing.T, online bool, seed models.SyncConfig) *syncFixture {
	t.Helper()

	plan := newFakePlanRepo(func() time.Time { return syncNow })
	settings := &fakeSettingsRepo{}
	remote := &sharedRemote{}
	status := NewStatusTracker(time.Minute)

	svc := NewSyncService(
		newTestStorages(plan, settings, nil),
		remote,
		fakeConnectivity{online: online},
		status,
		seed,
		logger.Nop(),
	).(*syncService)
	svc.now = func() time.Time { return syncNow }

	return &syncFixture{svc: svc, plan: plan, settings: settings, remote: remote, status: status}
}

func seededConfig() models.SyncConfig {
	cfg := models.DefaultSyncConfig()
	cfg.Token = "ghp_secret"
	return cfg
}

func TestSyncNow_OfflineFailsWithoutNetworkCalls(t *testing.T) {
	f := newSyncFixture(t, false, seededConfig())

	_, err := f.svc.SyncNow(context.Background())

	require.ErrorIs(t, err, ErrOffline)
	assert.Equal(t, models.SyncFailed, f.status.Current().State)
	assert.Equal(t, "You are offline", f.status.Current().Message)
	assert.Zero(t, f.remote.pushes)
}

func TestSyncNow_MissingTokenFails(t *testing.T) {
	f := newSyncFixture(t, true, models.DefaultSyncConfig())

	_, err := f.svc.SyncNow(context.Background())

	require.ErrorIs(t, err, ErrNoToken)
	assert.Equal(t, "No sync token configured", f.status.Current().Message)
	assert.Zero(t, f.remote.pushes)
}

func TestSyncNow_FirstSyncPushesWithoutHandle(t *testing.T) {
	f := newSyncFixture(t, true, seededConfig())
	_, err := f.plan.Save(context.Background(), entryAt("a", syncNow, "Shrine"))
	require.NoError(t, err)

	live, err := f.svc.SyncNow(context.Background())

	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, 1, f.remote.pushes)
	require.NotNil(t, f.remote.doc)
	require.Len(t, f.remote.doc.Entries, 1)

	assert.Equal(t, models.SyncSuccess, f.status.Current().State)
	require.NotNil(t, f.status.Current().LastSync)
	assert.True(t, f.status.Current().LastSync.Equal(syncNow))

	saved, err := f.settings.GetLastSyncTime(context.Background())
	require.NoError(t, err)
	assert.True(t, saved.Equal(syncNow))
}

func TestSyncNow_MergesRemoteIntoLocalStore(t *testing.T) {
	f := newSyncFixture(t, true, seededConfig())

	stale := entryAt("a", syncNow.Add(-time.Hour), "old name")
	require.NoError(t, f.plan.ReplaceAll(context.Background(), []models.PlanEntry{stale}))

	f.remote.doc = &models.SyncDocument{Entries: []models.PlanEntry{
		entryAt("a", syncNow.Add(-time.Minute), "new name"),
		entryAt("b", syncNow.Add(-time.Minute), "Castle"),
	}}
	f.remote.handle = 3

	live, err := f.svc.SyncNow(context.Background())
	require.NoError(t, err)

	require.Len(t, live, 2)
	byID := map[string]models.PlanEntry{}
	for _, e := range live {
		byID[e.ID] = e
	}
	assert.Equal(t, "new name", byID["a"].Name)
	assert.Equal(t, "Castle", byID["b"].Name)

	stored, err := f.plan.ReadAllIncludingTombstones(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestSyncNow_PurgesExpiredTombstones(t *testing.T) {
	f := newSyncFixture(t, true, seededConfig())

	expired := tombstoneAt("old", syncNow.Add(-models.TombstoneMaxAge-time.Hour))
	fresh := tombstoneAt("fresh", syncNow.Add(-time.Hour))
	require.NoError(t, f.plan.ReplaceAll(context.Background(), []models.PlanEntry{expired, fresh}))

	live, err := f.svc.SyncNow(context.Background())
	require.NoError(t, err)
	assert.Empty(t, live)

	stored, err := f.plan.ReadAllIncludingTombstones(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "fresh", stored[0].ID)

	require.Len(t, f.remote.doc.Entries, 1)
	assert.Equal(t, "fresh", f.remote.doc.Entries[0].ID)
}

func TestSyncNow_ConflictKeepsMergedLocalState(t *testing.T) {
	f := newSyncFixture(t, true, seededConfig())

	require.NoError(t, f.plan.ReplaceAll(context.Background(), []models.PlanEntry{entryAt("a", syncNow, "Shrine")}))
	f.remote.pushErr = adapter.ErrConflict
	f.remote.doc = &models.SyncDocument{Entries: []models.PlanEntry{entryAt("b", syncNow, "Castle")}}

	_, err := f.svc.SyncNow(context.Background())

	require.ErrorIs(t, err, adapter.ErrConflict)
	assert.Equal(t, models.SyncFailed, f.status.Current().State)
	assert.Equal(t, "Conflict detected, sync again", f.status.Current().Message)

	// the merged set survived the failed push and will be retried next cycle
	stored, err := f.plan.ReadAllIncludingTombstones(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 2)

	_, err = f.settings.GetLastSyncTime(context.Background())
	require.Error(t, err)
}

func TestSyncNow_RejectsConcurrentCycle(t *testing.T) {
	f := newSyncFixture(t, true, seededConfig())
	f.svc.running.Store(true)

	_, err := f.svc.SyncNow(context.Background())

	assert.ErrorIs(t, err, ErrSyncInProgress)
}

func TestGetConfig_SeedUntilPersisted(t *testing.T) {
	seed := seededConfig()
	f := newSyncFixture(t, true, seed)

	cfg, err := f.svc.GetConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, seed, cfg)

	custom := models.SyncConfig{Token: "other", Owner: "me", Repo: "data", Branch: "main", FilePath: "p.json"}
	require.NoError(t, f.svc.SetConfig(context.Background(), custom))

	cfg, err = f.svc.GetConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, custom, cfg)
}
