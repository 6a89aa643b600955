// Package xerrors defines the error kinds surfaced by the sort engine and
// the generator, and the helpers for classifying and aggregating them.
package xerrors

import (
	"context"
	"errors"

	"github.com/hashicorp/go-multierror"
)

// Kind classifies an Error for the CLI's exit-code mapping.
type Kind int

const (
	// Unknown is the zero value; never produced by New.
	Unknown Kind = iota
	// InvalidArgument marks a null/blank output path or temp directory, or
	// a non-positive target size passed to the generator writer.
	InvalidArgument
	// InputMissing marks an absent input file at sort start.
	InputMissing
	// Io marks any underlying read/write/open/delete failure not covered
	// by a more specific kind.
	Io
	// DiskFull is an Io failure identified by platform error code or
	// message substring, distinguished so the CLI can advise.
	DiskFull
	// Cancelled marks cooperative cancellation observed by a phase.
	Cancelled
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case InputMissing:
		return "InputMissing"
	case Io:
		return "Io"
	case DiskFull:
		return "DiskFull"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Error wraps an underlying error with the Kind and operation that
// produced it, following the shape of the teacher's own *Error type.
type Error struct {
	Kind     Kind
	Op       string
	Original error
}

func (e *Error) Error() string {
	if e.Original == nil {
		return e.Kind.String() + ": " + e.Op
	}
	return e.Op + ": " + e.Original.Error()
}

func (e *Error) Unwrap() error {
	return e.Original
}

// New wraps err with kind and op. Returns nil if err is nil.
func New(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Original: err}
}

// KindOf reports the Kind carried by err, walking multierror aggregates
// and wrapped errors the way the teacher's isCancelationError does.
// An err with no classified Kind reports Unknown.
func KindOf(err error) Kind {
	if err == nil {
		return Unknown
	}

	var xe *Error
	if errors.As(err, &xe) {
		return xe.Kind
	}

	if merr, ok := err.(*multierror.Error); ok {
		for _, sub := range merr.Errors {
			if k := KindOf(sub); k != Unknown {
				return k
			}
		}
	}

	if errors.Is(err, context.Canceled) {
		return Cancelled
	}

	return Unknown
}

// IsCancelled reports whether err represents cooperative cancellation,
// either directly, via context.Canceled, or nested inside a
// *multierror.Error, mirroring the teacher's IsCancelation helper.
func IsCancelled(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return true
	}
	if merr, ok := err.(*multierror.Error); ok {
		for _, sub := range merr.Errors {
			if IsCancelled(sub) {
				return true
			}
		}
	}
	var xe *Error
	if errors.As(err, &xe) {
		return xe.Kind == Cancelled
	}
	return false
}
