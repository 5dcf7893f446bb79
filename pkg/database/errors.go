package database

import (
	"errors"
	"fmt"
)

// ErrNotExist is returned by a Backend when nothing has been persisted yet
var ErrNotExist = errors.New("document does not exist")

// StorageWriteError means the document could not be persisted. The mutation
// that triggered the save did not take effect.
type StorageWriteError struct {
	Target string
	Err    error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("failed to write document to %s: %v", e.Target, e.Err)
}

func (e *StorageWriteError) Unwrap() error {
	return e.Err
}

// IsWriteError reports whether err carries a StorageWriteError
func IsWriteError(err error) bool {
	var target *StorageWriteError
	return errors.As(err, &target)
}
