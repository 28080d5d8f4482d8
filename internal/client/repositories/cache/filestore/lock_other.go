//go:build !unix && !windows

package filestore

import (
	"errors"
	"os"
)

var errLockUnsupported = errors.New("advisory file locks are not supported on this platform")

func lockFile(*os.File, bool) error { return errLockUnsupported }

func unlockFile(*os.File) error { return errLockUnsupported }
