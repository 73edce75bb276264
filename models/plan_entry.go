// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirco Cloud

package models

import "time"

// OwnerShared is the default visibility tag. Entries carrying any other owner
// tag are private and hidden from sessions without the matching passphrase.
const OwnerShared = "shared"

// PlanEntry is the unit of itinerary data and the primary persistence model.
// One record describes one item on the trip plan: a place to visit, a booking,
// or a free-form note, positioned by trip day and an ordering key within that
// day.
//
// A PlanEntry with a non-nil DeletedAt is a tombstone: it carries no semantic
// meaning beyond its identity and timestamps and exists only so the deletion
// can propagate to other replicas during sync.
type PlanEntry struct {
	// ID is the opaque stable identifier of the entry. Globally unique,
	// never reused.
	ID string `json:"id"`

	// Day is the 1-based trip-day number the entry belongs to.
	Day int `json:"day"`

	// Order positions the entry among entries sharing the same day.
	Order int `json:"order"`

	// Type is a tag from the fixed entry-type vocabulary
	// (location, flight, hotel, car_rental, train, activity, note).
	Type string `json:"type"`

	// Name is the display string shown in lists and on the map.
	Name string `json:"name"`

	// Lat and Lng are optional coordinates. Nil when the entry has no
	// position of its own; Coordinate Enrichment may backfill them from
	// the location catalog via LocationID.
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`

	// LocationID is an optional weak reference to a location catalog
	// record. Lookup only, not ownership.
	LocationID *string `json:"locationId,omitempty"`

	// Note is optional free text attached to the entry.
	Note *string `json:"note,omitempty"`

	// Owner controls which sessions display the entry: OwnerShared, or a
	// private-owner tag.
	Owner string `json:"owner"`

	// Meta is an optional type-specific payload (confirmation numbers,
	// times, stations). Values may be opaque encrypted strings produced by
	// the passphrase encryption module; the store and the merge engine
	// never interpret them.
	Meta Meta `json:"meta"`

	// CreatedAt is set once at creation and never updated.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed on every create and every mutation. It is the
	// merge ordering key and must be monotonically non-decreasing across
	// the entry's local history.
	UpdatedAt time.Time `json:"updatedAt"`

	// DeletedAt marks the entry a tombstone when non-nil.
	DeletedAt *time.Time `json:"deletedAt"`
}

// Meta holds the type-specific payload of a PlanEntry. Values are opaque to
// the sync core: they may be plain strings or encrypted blobs.
type Meta map[string]OpaqueValue

// IsDeleted reports whether the entry is a tombstone.
func (e *PlanEntry) IsDeleted() bool {
	return e.DeletedAt != nil
}

// LastWriteTime returns the timestamp used for last-write-wins ordering
// during merge: UpdatedAt when set, otherwise CreatedAt, otherwise the zero
// time.
func (e *PlanEntry) LastWriteTime() time.Time {
	if !e.UpdatedAt.IsZero() {
		return e.UpdatedAt
	}
	return e.CreatedAt
}
