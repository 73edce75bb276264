// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirco Cloud

package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/nirco-cloud/tripsync/internal/adapter"
	"github.com/nirco-cloud/tripsync/internal/logger"
	"github.com/nirco-cloud/tripsync/internal/store"
	"github.com/nirco-cloud/tripsync/models"
)

// SyncService drives the full synchronization cycle against the shared remote
// document and exposes the resulting status projection.
type SyncService interface {
	// SyncNow runs one full cycle: preconditions, pull, merge, purge, local
	// replace, push, bookkeeping. Returns the live (non-tombstone) entry set
	// after the cycle. At most one cycle runs at a time.
	SyncNow(ctx context.Context) ([]models.PlanEntry, error)

	// Status returns the current status projection.
	Status() models.SyncStatus

	// GetConfig returns the effective remote document configuration: the
	// persisted one, or the seed when nothing was persisted yet.
	GetConfig(ctx context.Context) (models.SyncConfig, error)

	// SetConfig persists a new remote document configuration.
	SetConfig(ctx context.Context, cfg models.SyncConfig) error
}

type syncService struct {
	plan         store.PlanRepository
	settings     store.SettingsRepository
	remote       adapter.DocumentClient
	connectivity adapter.ConnectivityChecker
	status       *StatusTracker
	seed         models.SyncConfig
	logger       *logger.Logger

	now     func() time.Time
	running atomic.Bool
}

// NewSyncService wires the sync orchestrator.
func NewSyncService(
	storage *store.Storages,
	remote adapter.DocumentClient,
	connectivity adapter.ConnectivityChecker,
	status *StatusTracker,
	seed models.SyncConfig,
	log *logger.Logger,
) SyncService {
	return &syncService{
		plan:         storage.Plan,
		settings:     storage.Settings,
		remote:       remote,
		connectivity: connectivity,
		status:       status,
		seed:         seed,
		logger:       log,
		now:          time.Now,
	}
}

func (s *syncService) SyncNow(ctx context.Context) ([]models.PlanEntry, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrSyncInProgress
	}
	defer s.running.Store(false)

	s.status.Set(models.SyncRunning, "")

	live, err := s.runCycle(ctx)
	if err != nil {
		s.logger.Warn().
			Str("func", "syncService.SyncNow").
			Err(err).
			Msg("sync cycle failed")
		s.status.Set(models.SyncFailed, statusMessage(err))
		return nil, err
	}

	s.status.Set(models.SyncSuccess, "")

	s.logger.Info().
		Str("func", "syncService.SyncNow").
		Int("live_entries", len(live)).
		Msg("sync cycle completed")

	return live, nil
}

// runCycle executes the ordered steps of one synchronization round. Any step
// failing aborts the round; local durable state is only replaced after a
// successful merge, and the merged set is written locally before the push so
// a push failure never loses the merge result.
func (s *syncService) runCycle(ctx context.Context) ([]models.PlanEntry, error) {
	if !s.connectivity.Online(ctx) {
		return nil, ErrOffline
	}

	cfg, err := s.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	if cfg.Token == "" {
		return nil, ErrNoToken
	}

	local, err := s.plan.ReadAllIncludingTombstones(ctx)
	if err != nil {
		return nil, fmt.Errorf("read local entries: %w", err)
	}

	doc, err := s.remote.Pull(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pull remote document: %w", err)
	}

	merged := local
	handle := ""
	if doc != nil {
		merged = MergeEntries(local, doc.Entries)
		handle = doc.Handle
	}

	now := s.now().UTC()
	merged = PurgeStaleTombstones(merged, models.TombstoneMaxAge, now)

	if err = s.plan.ReplaceAll(ctx, merged); err != nil {
		return nil, fmt.Errorf("replace local entries: %w", err)
	}

	if err = s.remote.Push(ctx, cfg, merged, handle); err != nil {
		return nil, fmt.Errorf("push remote document: %w", err)
	}

	if err = s.settings.SetLastSyncTime(ctx, now); err != nil {
		return nil, fmt.Errorf("save last sync time: %w", err)
	}
	s.status.SetLastSync(now)

	return LiveEntries(merged), nil
}

func (s *syncService) Status() models.SyncStatus {
	return s.status.Current()
}

func (s *syncService) GetConfig(ctx context.Context) (models.SyncConfig, error) {
	cfg, err := s.settings.GetSyncConfig(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return s.seed, nil
	}
	if err != nil {
		return models.SyncConfig{}, fmt.Errorf("read sync config: %w", err)
	}
	return cfg, nil
}

func (s *syncService) SetConfig(ctx context.Context, cfg models.SyncConfig) error {
	if err := s.settings.SetSyncConfig(ctx, cfg); err != nil {
		return fmt.Errorf("save sync config: %w", err)
	}
	return nil
}

// statusMessage maps a cycle failure onto the short message shown next to the
// error state.
func statusMessage(err error) string {
	switch {
	case errors.Is(err, ErrOffline):
		return "You are offline"
	case errors.Is(err, ErrNoToken):
		return "No sync token configured"
	case errors.Is(err, adapter.ErrConflict):
		return "Conflict detected, sync again"
	default:
		return "Sync failed"
	}
}
