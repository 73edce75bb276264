// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirco Cloud

package adapter

import (
	"context"

	"github.com/nirco-cloud/tripsync/models"
)

// RemoteDocument is the decoded result of a pull: the full shared entry list
// (tombstones included) and the content-hash handle used as the
// optimistic-concurrency token for the subsequent push. The handle is
// discarded after the cycle completes.
type RemoteDocument struct {
	Entries []models.PlanEntry
	Handle  string
}

// DocumentClient reads and writes the single shared JSON document through a
// versioned content store with hash-based optimistic concurrency.
type DocumentClient interface {
	// Pull fetches the document at the cfg coordinates. A missing document
	// (first sync ever) is a valid outcome reported as (nil, nil).
	Pull(ctx context.Context, cfg models.SyncConfig) (*RemoteDocument, error)

	// Push encodes the entry list into the document envelope and writes it.
	// A non-empty handle is sent as the expected current-content-hash
	// precondition; a concurrent-writer rejection surfaces as ErrConflict.
	Push(ctx context.Context, cfg models.SyncConfig, entries []models.PlanEntry, handle string) error
}

// ConnectivityChecker answers the sync orchestrator's "are we online"
// precondition. Injectable so tests and offline-first callers can stub it.
type ConnectivityChecker interface {
	Online(ctx context.Context) bool
}
