package generator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/peak/xsort/internal/record"
	"gotest.tools/v3/assert"
)

func TestRunWriterRejectsNonPositiveTarget(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := RunWriter(context.Background(), WriterOptions{
		Path:        filepath.Join(dir, "out.txt"),
		TargetBytes: 0,
		Cancel:      cancel,
	})
	assert.ErrorContains(t, err, "target size must be positive")
}

func TestRunWriterStopsAtTargetAndSignalsCancel(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	in := make(chan Batch, 10)
	ctx, cancel := context.WithCancel(context.Background())

	for i := 0; i < 5; i++ {
		in <- Batch{record.New(int64(i), "FixedText")}
	}
	close(in)

	err := RunWriter(ctx, WriterOptions{In: in, Path: path, TargetBytes: 20, Cancel: cancel})
	assert.NilError(t, err)

	select {
	case <-ctx.Done():
	default:
		t.Fatal("expected writer to signal cancellation")
	}

	// Each batch is one 13-byte line ("0. FixedText\n"); the second batch
	// brings the file to 26 bytes, past the 20-byte target, so the
	// remaining three batches are never written.
	info, err := os.Stat(path)
	assert.NilError(t, err)
	assert.Equal(t, info.Size(), int64(26))
}

func TestRunWriterDrainsAllOnChannelClose(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	in := make(chan Batch, 10)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in <- Batch{record.New(1, "Apple")}
	in <- Batch{record.New(2, "Banana")}
	close(in)

	err := RunWriter(ctx, WriterOptions{In: in, Path: path, TargetBytes: 1 << 30, Cancel: cancel})
	assert.NilError(t, err)

	b, err := os.ReadFile(path)
	assert.NilError(t, err)
	assert.Equal(t, string(b), "1. Apple\n2. Banana\n")
}
