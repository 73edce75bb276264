// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirco Cloud

package models

import "time"

// SyncVersion is the informational version string written into every pushed
// sync document. It is not enforced on read.
const SyncVersion = "3.0.0"

// TombstoneMaxAge is how long tombstones are retained before a sync cycle
// physically purges them. It must outlive the longest plausible offline
// period of any replica so deletions are not resurrected by a stale replica.
const TombstoneMaxAge = 30 * 24 * time.Hour

// SyncConfig identifies the remote document a replica synchronizes against:
// repository coordinates, branch, file path, and the bearer credential.
// User-supplied, persisted locally, read at the start of every sync cycle.
type SyncConfig struct {
	// Token is the bearer credential for the remote content API. An empty
	// token is a terminal precondition failure for sync, not a crash.
	Token string `json:"token"`

	// Owner and Repo are the repository coordinates of the document.
	Owner string `json:"owner"`
	Repo  string `json:"repo"`

	// Branch is the ref the document lives on.
	Branch string `json:"branch"`

	// FilePath is the path of the document inside the repository.
	FilePath string `json:"filePath"`
}

// DefaultSyncConfig returns the remote coordinates used when the user has not
// overridden them. The token always comes from the user.
func DefaultSyncConfig() SyncConfig {
	return SyncConfig{
		Owner:    "Nirco-Cloud",
		Repo:     "trip-data",
		Branch:   "main",
		FilePath: "plan.json",
	}
}

// SyncDocument is the wire envelope of the shared remote document. The entry
// list includes tombstones.
type SyncDocument struct {
	Version  string      `json:"version"`
	SyncedAt time.Time   `json:"syncedAt"`
	Entries  []PlanEntry `json:"entries"`
}

// SyncState is the UI-facing projection of the orchestrator's progress.
type SyncState string

const (
	SyncIdle    SyncState = "idle"
	SyncRunning SyncState = "syncing"
	SyncSuccess SyncState = "success"
	SyncFailed  SyncState = "error"
)

// SyncStatus is the status/error/timestamp tuple exposed to the application
// layer. It is a projection, not durable state.
type SyncStatus struct {
	State    SyncState  `json:"state"`
	Message  string     `json:"message,omitempty"`
	LastSync *time.Time `json:"lastSync,omitempty"`
}
