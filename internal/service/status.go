// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirco Cloud

package service

import (
	"sync"
	"time"

	"github.com/nirco-cloud/tripsync/models"
)

// StatusTracker holds the single UI-facing sync status projection and fans
// out changes to subscribers. Terminal states (success, error) automatically
// revert to idle after the configured display window; the last-sync timestamp
// survives the reset.
type StatusTracker struct {
	mu          sync.Mutex
	status      models.SyncStatus
	resetAfter  time.Duration
	resetTimer  *time.Timer
	subscribers map[int]func(models.SyncStatus)
	nextSubID   int
}

// NewStatusTracker constructs an idle tracker whose terminal states revert
// after resetAfter.
func NewStatusTracker(resetAfter time.Duration) *StatusTracker {
	return &StatusTracker{
		status:      models.SyncStatus{State: models.SyncIdle},
		resetAfter:  resetAfter,
		subscribers: make(map[int]func(models.SyncStatus)),
	}
}

// Current returns the status projection as of now.
func (t *StatusTracker) Current() models.SyncStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// Set transitions the tracker to state with an optional message and notifies
// subscribers. Success and error states schedule the reset to idle; a new
// transition cancels any pending reset.
func (t *StatusTracker) Set(state models.SyncState, message string) {
	t.mu.Lock()

	if t.resetTimer != nil {
		t.resetTimer.Stop()
		t.resetTimer = nil
	}

	t.status.State = state
	t.status.Message = message

	if state == models.SyncSuccess || state == models.SyncFailed {
		t.resetTimer = time.AfterFunc(t.resetAfter, t.resetToIdle)
	}

	status, listeners := t.snapshotLocked()
	t.mu.Unlock()

	notify(status, listeners)
}

// SetLastSync records the completion time of the most recent successful
// cycle. Kept across idle resets.
func (t *StatusTracker) SetLastSync(ts time.Time) {
	t.mu.Lock()
	t.status.LastSync = &ts
	status, listeners := t.snapshotLocked()
	t.mu.Unlock()

	notify(status, listeners)
}

// Subscribe registers fn for every subsequent status change and returns the
// matching unsubscribe function.
func (t *StatusTracker) Subscribe(fn func(models.SyncStatus)) func() {
	t.mu.Lock()
	id := t.nextSubID
	t.nextSubID++
	t.subscribers[id] = fn
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		delete(t.subscribers, id)
		t.mu.Unlock()
	}
}

func (t *StatusTracker) resetToIdle() {
	t.mu.Lock()
	// A transition may have raced the timer; only a terminal state resets.
	if t.status.State != models.SyncSuccess && t.status.State != models.SyncFailed {
		t.resetTimer = nil
		t.mu.Unlock()
		return
	}

	t.status.State = models.SyncIdle
	t.status.Message = ""
	t.resetTimer = nil

	status, listeners := t.snapshotLocked()
	t.mu.Unlock()

	notify(status, listeners)
}

// snapshotLocked copies the status and subscriber list so callbacks run
// outside the lock.
func (t *StatusTracker) snapshotLocked() (models.SyncStatus, []func(models.SyncStatus)) {
	listeners := make([]func(models.SyncStatus), 0, len(t.subscribers))
	for _, fn := range t.subscribers {
		listeners = append(listeners, fn)
	}
	return t.status, listeners
}

func notify(status models.SyncStatus, listeners []func(models.SyncStatus)) {
	for _, fn := range listeners {
		fn(status)
	}
}
