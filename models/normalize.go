// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirco Cloud

package models

import "time"

// Normalize backfills defaults for fields introduced by schema evolution so
// loosely-shaped external records (remote documents, legacy local exports)
// become fully-typed PlanEntry values that merge safely.
//
// It is applied at every external-data ingress point: remote pull and plan
// file import. Normalize is total and idempotent:
// Normalize(Normalize(e)) == Normalize(e).
func Normalize(entry PlanEntry) PlanEntry {
	if entry.Owner == "" {
		entry.Owner = OwnerShared
	}
	if entry.Type == "" {
		entry.Type = TypeLocation
	}
	if entry.UpdatedAt.IsZero() {
		if !entry.CreatedAt.IsZero() {
			entry.UpdatedAt = entry.CreatedAt
		} else {
			entry.UpdatedAt = time.Now().UTC()
		}
	}

	return entry
}

// NormalizeAll applies Normalize to every entry of a decoded list.
func NormalizeAll(entries []PlanEntry) []PlanEntry {
	normalized := make([]PlanEntry, len(entries))
	for i, entry := range entries {
		normalized[i] = Normalize(entry)
	}
	return normalized
}
