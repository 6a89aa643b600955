package generator

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/cheggaaa/pb/v3"

	"github.com/peak/xsort/internal/xerrors"
)

// writeBufferSize is the buffered-writer size for the generated file
// (spec §4.5: "64 KiB buffer").
const writeBufferSize = 64 * 1024

// WriterOptions configures the file writer (consumer side of the
// generator pipeline).
type WriterOptions struct {
	In          <-chan Batch
	Path        string
	TargetBytes int64
	Cancel      context.CancelFunc
}

// RunWriter drains batches from opts.In in receive order, writing each
// record's Raw form as one line, until the file reaches opts.TargetBytes,
// at which point it signals opts.Cancel so producers stop. It always
// signals opts.Cancel before returning, whether it stopped because the
// target was reached, because the channel closed, or because of an error
// (spec §4.5, §4.6).
func RunWriter(ctx context.Context, opts WriterOptions) (err error) {
	defer opts.Cancel()

	if opts.TargetBytes <= 0 {
		return xerrors.New(xerrors.InvalidArgument, "generate", fmt.Errorf("target size must be positive, got %d", opts.TargetBytes))
	}

	f, createErr := os.Create(opts.Path)
	if createErr != nil {
		return xerrors.ClassifyIO("create output", createErr)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = xerrors.ClassifyIO("close output", cerr)
		}
	}()

	w := bufio.NewWriterSize(f, writeBufferSize)

	bar := pb.New64(opts.TargetBytes)
	bar.Set(pb.Bytes, true)
	bar.Start()
	defer bar.Finish()

	var written int64

	defer func() {
		if werr := w.Flush(); werr != nil && err == nil {
			err = xerrors.ClassifyIO("flush output", werr)
		}
	}()

	for batch := range opts.In {
		for _, r := range batch {
			n, werr := w.WriteString(r.Raw)
			if werr == nil {
				werr = w.WriteByte('\n')
			}
			if werr != nil {
				return xerrors.ClassifyIO("write output", werr)
			}
			written += int64(n) + 1
		}

		bar.SetCurrent(written)

		if written >= opts.TargetBytes {
			return nil
		}
	}

	return nil
}
