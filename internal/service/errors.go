package service

import "errors"

var (
	// ErrOffline means the connectivity precondition failed; no network
	// operation was attempted.
	ErrOffline = errors.New("device is offline")

	// ErrNoToken means no bearer credential is configured for the remote
	// document. Terminal for the cycle, not a crash.
	ErrNoToken = errors.New("no sync token configured")

	// ErrSyncInProgress is returned when a sync cycle is requested while
	// another one is still running.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrInvalidEntry rejects a plan entry that fails creation validation.
	ErrInvalidEntry = errors.New("invalid plan entry")

	// ErrInvalidPlanFile rejects an import payload that is not a recognized
	// plan file shape.
	ErrInvalidPlanFile = errors.New("invalid plan file")

	// ErrNoEntriesFound rejects an import payload that parsed but yielded no
	// valid entries.
	ErrNoEntriesFound = errors.New("no plan entries found in file")

	// ErrNoLocationsFound rejects a location catalog payload with no valid
	// records.
	ErrNoLocationsFound = errors.New("no location records found")
)
