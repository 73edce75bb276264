package store

import "errors"

// ErrNotFound is returned when a requested record does not exist in the
// local store.
var ErrNotFound = errors.New("record not found")
