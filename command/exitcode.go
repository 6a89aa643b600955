package command

import "github.com/peak/xsort/internal/xerrors"

// Exit codes follow spec.md §6's Sort CLI table exactly: 0 success, 1
// usage, 2 input missing, 3 I/O error (including disk-full), 4 cancelled
// by user, 99 unexpected error.
const (
	exitCodeOK           = 0
	exitCodeUsage        = 1
	exitCodeInputMissing = 2
	exitCodeIO           = 3
	exitCodeCancelled    = 4
	exitCodeUnexpected   = 99
)

func exitCodeFor(err error) int {
	if err == nil {
		return exitCodeOK
	}
	if xerrors.IsCancelled(err) {
		return exitCodeCancelled
	}
	switch xerrors.KindOf(err) {
	case xerrors.InvalidArgument:
		return exitCodeUsage
	case xerrors.InputMissing:
		return exitCodeInputMissing
	case xerrors.Io, xerrors.DiskFull:
		return exitCodeIO
	default:
		return exitCodeUnexpected
	}
}
