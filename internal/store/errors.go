package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel for missing documents, for use with
// errors.Is().
var ErrNotFound = errors.New("not found")

// NotFoundError reports a lookup or delete of an id that is not in the
// store.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("quote %q not found", e.ID)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
