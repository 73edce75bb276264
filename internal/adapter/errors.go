package adapter

import (
	"errors"
	"fmt"
)

// ErrConflict reports that the optimistic-concurrency precondition failed on
// push: another writer updated the remote document between this cycle's pull
// and push. The caller recovers by re-running the whole cycle.
var ErrConflict = errors.New("remote document conflict")

// RemoteError is any other non-success response from the remote content API.
// It carries the raw response body as diagnostic context.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote content API returned %d: %s", e.StatusCode, e.Body)
}
