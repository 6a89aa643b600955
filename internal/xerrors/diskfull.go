package xerrors

import "strings"

// diskFullSubstrings catches disk-full errors surfaced as plain strings by
// layers that don't preserve the underlying platform error code (e.g. some
// network filesystems, or errors that crossed a process boundary).
var diskFullSubstrings = []string{
	"no space left on device",
	"disk full",
	"not enough space",
}

// messageLooksDiskFull is the platform-independent fallback used by
// IsDiskFull after the platform-specific error-code check.
func messageLooksDiskFull(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, s := range diskFullSubstrings {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

// ClassifyIO wraps an I/O error as either DiskFull or Io, whichever
// IsDiskFull indicates, so callers never have to special-case it inline.
func ClassifyIO(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsDiskFull(err) {
		return New(DiskFull, op, err)
	}
	return New(Io, op, err)
}
