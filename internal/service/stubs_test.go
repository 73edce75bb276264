package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/nirco-cloud/tripsync/internal/adapter"
	"github.com/nirco-cloud/tripsync/internal/store"
	"github.com/nirco-cloud/tripsync/models"
)

// fakePlanRepo is an in-memory stand-in for the SQLite plan repository with
// the same stamping contract.
type fakePlanRepo struct {
	mu      sync.Mutex
	entries map[string]models.PlanEntry
	now     func() time.Time

	saveErr    error
	readErr    error
	replaceErr error
}

func newFakePlanRepo(now func() time.Time) *fakePlanRepo {
	return &fakePlanRepo{entries: make(map[string]models.PlanEntry), now: now}
}

func (f *fakePlanRepo) Save(_ context.Context, entry models.PlanEntry) (models.PlanEntry, error) {
	if f.saveErr != nil {
		return models.PlanEntry{}, f.saveErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now().UTC()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now
	f.entries[entry.ID] = entry
	return entry, nil
}

func (f *fakePlanRepo) ReadAllLive(ctx context.Context) ([]models.PlanEntry, error) {
	all, err := f.ReadAllIncludingTombstones(ctx)
	if err != nil {
		return nil, err
	}
	return LiveEntries(all), nil
}

func (f *fakePlanRepo) ReadAllIncludingTombstones(context.Context) ([]models.PlanEntry, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	all := make([]models.PlanEntry, 0, len(f.entries))
	for _, entry := range f.entries {
		all = append(all, entry)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Day != all[j].Day {
			return all[i].Day < all[j].Day
		}
		if all[i].Order != all[j].Order {
			return all[i].Order < all[j].Order
		}
		return all[i].ID < all[j].ID
	})
	return all, nil
}

func (f *fakePlanRepo) Update(ctx context.Context, entry models.PlanEntry) (models.PlanEntry, error) {
	return f.Save(ctx, entry)
}

func (f *fakePlanRepo) SoftDelete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entry, ok := f.entries[id]
	if !ok {
		return nil
	}
	now := f.now().UTC()
	entry.DeletedAt = &now
	entry.UpdatedAt = now
	f.entries[id] = entry
	return nil
}

func (f *fakePlanRepo) ReplaceAll(_ context.Context, entries []models.PlanEntry) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries = make(map[string]models.PlanEntry, len(entries))
	for _, entry := range entries {
		f.entries[entry.ID] = entry
	}
	return nil
}

type fakeSettingsRepo struct {
	mu       sync.Mutex
	cfg      *models.SyncConfig
	lastSync *time.Time

	setLastSyncErr error
}

func (f *fakeSettingsRepo) GetSyncConfig(context.Context) (models.SyncConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cfg == nil {
		return models.SyncConfig{}, store.ErrNotFound
	}
	return *f.cfg, nil
}

func (f *fakeSettingsRepo) SetSyncConfig(_ context.Context, cfg models.SyncConfig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cfg = &cfg
	return nil
}

func (f *fakeSettingsRepo) GetLastSyncTime(context.Context) (time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lastSync == nil {
		return time.Time{}, store.ErrNotFound
	}
	return *f.lastSync, nil
}

func (f *fakeSettingsRepo) SetLastSyncTime(_ context.Context, ts time.Time) error {
	if f.setLastSyncErr != nil {
		return f.setLastSyncErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastSync = &ts
	return nil
}

type fakeLocationRepo struct {
	mu      sync.Mutex
	records map[string]models.Location
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{records: make(map[string]models.Location)}
}

func (f *fakeLocationRepo) SaveAll(_ context.Context, records []models.Location) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, record := range records {
		f.records[record.ID] = record
	}
	return nil
}

func (f *fakeLocationRepo) ReadAll(context.Context) ([]models.Location, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	all := make([]models.Location, 0, len(f.records))
	for _, record := range f.records {
		all = append(all, record)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

// sharedRemote mimics the content store: one document, one content-hash
// handle, rejected writes on handle mismatch. Shared between replicas in
// convergence tests.
type sharedRemote struct {
	mu      sync.Mutex
	doc     *models.SyncDocument
	handle  int
	pullErr error
	pushErr error

	pushes int
}

func (r *sharedRemote) Pull(context.Context, models.SyncConfig) (*adapter.RemoteDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pullErr != nil {
		return nil, r.pullErr
	}
	if r.doc == nil {
		return nil, nil
	}
	return &adapter.RemoteDocument{
		Entries: models.NormalizeAll(r.doc.Entries),
		Handle:  fmt.Sprintf("h%d", r.handle),
	}, nil
}

func (r *sharedRemote) Push(_ context.Context, _ models.SyncConfig, entries []models.PlanEntry, handle string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pushErr != nil {
		return r.pushErr
	}

	current := ""
	if r.doc != nil {
		current = fmt.Sprintf("h%d", r.handle)
	}
	if handle != current {
		return adapter.ErrConflict
	}

	r.doc = &models.SyncDocument{
		Version:  models.SyncVersion,
		SyncedAt: time.Now().UTC(),
		Entries:  append([]models.PlanEntry(nil), entries...),
	}
	r.handle++
	r.pushes++
	return nil
}

type fakeConnectivity struct{ online bool }

func (f fakeConnectivity) Online(context.Context) bool { return f.online }

func newTestStorages(plan *fakePlanRepo, settings *fakeSettingsRepo, locations *fakeLocationRepo) *store.Storages {
	if locations == nil {
		locations = newFakeLocationRepo()
	}
	return &store.Storages{Plan: plan, Locations: locations, Settings: settings}
}
