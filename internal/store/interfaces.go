// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirco Cloud

package store

import (
	"context"
	"time"

	"github.com/nirco-cloud/tripsync/models"
)

// PlanRepository is the durable local store of the full PlanEntry set,
// including tombstones, keyed by entry id. All operations are local writes;
// no network I/O happens here.
type PlanRepository interface {
	// Save inserts or overwrites an entry by id. It stamps CreatedAt when
	// absent and always refreshes UpdatedAt, returning the stored entry.
	Save(ctx context.Context, entry models.PlanEntry) (models.PlanEntry, error)

	// ReadAllLive returns all entries with a nil DeletedAt.
	ReadAllLive(ctx context.Context) ([]models.PlanEntry, error)

	// ReadAllIncludingTombstones returns every stored entry, tombstones
	// included. This is the version fed into merge.
	ReadAllIncludingTombstones(ctx context.Context) ([]models.PlanEntry, error)

	// Update overwrites an existing entry by id, refreshing UpdatedAt.
	// Same contract as Save for a pre-existing id.
	Update(ctx context.Context, entry models.PlanEntry) (models.PlanEntry, error)

	// SoftDelete replaces the entry with a tombstone copy
	// (DeletedAt = UpdatedAt = now). No-op if the id is absent.
	SoftDelete(ctx context.Context, id string) error

	// ReplaceAll atomically clears the store and writes exactly the given
	// set, tombstones included. Used after merge so local state matches
	// the merged result for future sync rounds.
	ReplaceAll(ctx context.Context, entries []models.PlanEntry) error
}

// LocationRepository persists the read-only location catalog consumed by
// coordinate enrichment.
type LocationRepository interface {
	// SaveAll upserts the given catalog records by id.
	SaveAll(ctx context.Context, records []models.Location) error

	// ReadAll returns every catalog record.
	ReadAll(ctx context.Context) ([]models.Location, error)
}

// SettingsRepository persists the small configuration records that live next
// to the plan: the remote sync configuration and the last-sync timestamp.
type SettingsRepository interface {
	// GetSyncConfig returns the persisted remote document configuration.
	// Returns ErrNotFound when none has been saved yet.
	GetSyncConfig(ctx context.Context) (models.SyncConfig, error)

	// SetSyncConfig persists the remote document configuration.
	SetSyncConfig(ctx context.Context, cfg models.SyncConfig) error

	// GetLastSyncTime returns the completion timestamp of the most recent
	// successful sync cycle. Returns ErrNotFound before the first sync.
	GetLastSyncTime(ctx context.Context) (time.Time, error)

	// SetLastSyncTime records the completion timestamp of a sync cycle.
	SetLastSyncTime(ctx context.Context, ts time.Time) error
}
