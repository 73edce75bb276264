// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirco Cloud

package service

import (
	"time"

	"github.com/nirco-cloud/tripsync/models"
)

// MergeEntries deterministically combines a local and a remote entry set into
// one authoritative set using per-entry last-write-wins.
//
// Every local entry seeds the result. A remote entry with an id not yet
// present is inserted; a remote entry colliding with an existing id wins only
// when its last-write timestamp is strictly greater, so ties keep the
// local-seeded value. Tombstones participate identically to live entries: a
// newer tombstone overrides a live edit and a newer live edit resurrects over
// a stale tombstone.
//
// The outcome is commutative per id given the same two timestamped versions:
// the entry with the later UpdatedAt wins regardless of which side it came
// from. Result order follows local order with remote-only entries appended;
// consumers re-sort by day and position.
func MergeEntries(local, remote []models.PlanEntry) []models.PlanEntry {
	index := make(map[string]int, len(local))
	merged := make([]models.PlanEntry, 0, len(local)+len(remote))

	for _, entry := range local {
		index[entry.ID] = len(merged)
		merged = append(merged, entry)
	}

	for _, entry := range remote {
		at, exists := index[entry.ID]
		if !exists {
			index[entry.ID] = len(merged)
			merged = append(merged, entry)
			continue
		}

		if entry.LastWriteTime().After(merged[at].LastWriteTime()) {
			merged[at] = entry
		}
	}

	return merged
}

// PurgeStaleTombstones drops every tombstone whose DeletedAt is older than
// maxAge relative to now. A tombstone exactly at the retention boundary is
// kept; live entries are never dropped.
//
// Tombstones must outlive the longest plausible offline period of any replica
// so deletions are not resurrected by a replica that has not synced in a
// while, but must not accumulate forever.
func PurgeStaleTombstones(entries []models.PlanEntry, maxAge time.Duration, now time.Time) []models.PlanEntry {
	cutoff := now.Add(-maxAge)

	kept := make([]models.PlanEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.DeletedAt != nil && entry.DeletedAt.Before(cutoff) {
			continue
		}
		kept = append(kept, entry)
	}

	return kept
}

// LiveEntries returns the non-tombstone subset of entries.
func LiveEntries(entries []models.PlanEntry) []models.PlanEntry {
	live := make([]models.PlanEntry, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDeleted() {
			live = append(live, entry)
		}
	}
	return live
}
