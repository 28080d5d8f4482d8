package cache

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/zenkeeper/internal/common"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store is closed")

// StorageError reports a failed cache operation. It matches
// common.ErrStorage and unwraps to the cause.
type StorageError struct {
	Op   string
	Kind string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Kind, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == common.ErrStorage }

// Wrap returns err as a *StorageError for op on kind. It returns nil for a
// nil err and leaves an existing *StorageError untouched.
func Wrap(op, kind string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Kind: kind, Err: err}
}
