//go:build linux || darwin

package xerrors

import (
	"errors"

	"golang.org/x/sys/unix"
)

// IsDiskFull reports whether err indicates the filesystem is out of space,
// first by unwrapping to the platform ENOSPC errno, then by falling back
// to a message substring match.
func IsDiskFull(err error) bool {
	if err == nil {
		return false
	}
	var errno unix.Errno
	if errors.As(err, &errno) && errno == unix.ENOSPC {
		return true
	}
	return messageLooksDiskFull(err)
}
