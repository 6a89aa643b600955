package sortengine

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/peak/xsort/internal/record"
	"github.com/peak/xsort/internal/xlog"
)

// chunkFilePattern is the filename template for a flushed chunk (spec §3,
// §6: "chunk_{decimal-index}.tmp").
const chunkFilePattern = "chunk_%d.tmp"

// ChunkOptions configures the chunking phase.
type ChunkOptions struct {
	InputPath     string
	TempDir       string
	MaxChunkBytes int64
	Logger        *xlog.Logger
}

// chunk accumulates records in memory along with a running, deliberately
// oversized byte estimate (record.EstimateSize), used only to decide when
// to flush, never as an on-disk size.
type chunk struct {
	records   []record.Record
	byteCount int64
}

func (c *chunk) append(r record.Record) {
	c.records = append(c.records, r)
	c.byteCount += int64(record.EstimateSize(r))
}

func (c *chunk) empty() bool {
	return len(c.records) == 0
}

func (c *chunk) reset() {
	c.records = c.records[:0]
	c.byteCount = 0
}

func (c *chunk) sort() {
	sort.Slice(c.records, func(i, j int) bool {
		return record.Less(c.records[i], c.records[j])
	})
}

// BuildChunks streams input, splits it into sorted temp files bounded by
// opts.MaxChunkBytes, and returns their paths in creation order. Filenames
// encode creation order, but the merge phase does not depend on that
// order (spec §3, §4.1).
//
// On cancellation the in-progress chunk is abandoned (never flushed) and
// the temp files already produced are returned alongside the context's
// error, so the caller can still clean them up.
func BuildChunks(ctx context.Context, opts ChunkOptions) ([]string, error) {
	f, err := os.Open(opts.InputPath)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	var (
		paths []string
		cur   = &chunk{}
		index int
		flush = func() error {
			if cur.empty() {
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			cur.sort()
			path, err := writeChunk(opts.TempDir, index, cur.records)
			if err != nil {
				return err
			}
			if opts.Logger != nil {
				opts.Logger.Info(xlog.ChunkFlushedMessage{Path: path, Records: len(cur.records)})
			}
			paths = append(paths, path)
			index++
			cur.reset()
			return nil
		}
	)

	var scanFlushErr error
	scanErr := scanLines(bufio.NewReaderSize(f, readBufferSize), func(line string) bool {
		if err := ctx.Err(); err != nil {
			return false
		}

		r, ok := record.Parse(line)
		if !ok {
			logSkippedLine(opts.Logger, opts.InputPath, line)
			return true
		}

		cur.append(r)
		if cur.byteCount >= opts.MaxChunkBytes {
			if ferr := flush(); ferr != nil {
				scanFlushErr = ferr
				return false
			}
		}
		return true
	})

	if scanFlushErr != nil {
		return paths, scanFlushErr
	}
	if scanErr != nil {
		return paths, fmt.Errorf("read input: %w", scanErr)
	}
	if err := ctx.Err(); err != nil {
		return paths, err
	}

	if err := flush(); err != nil {
		return paths, err
	}

	return paths, nil
}

// writeChunk writes records, in the order given, to a new
// chunk_{index}.tmp file inside dir, returning its path. The caller sorts
// them first.
func writeChunk(dir string, index int, records []record.Record) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf(chunkFilePattern, index))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create chunk: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriterSize(f, writeBufferSize)
	for _, r := range records {
		if _, err := w.WriteString(r.Raw); err != nil {
			return "", fmt.Errorf("write chunk: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return "", fmt.Errorf("write chunk: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("flush chunk: %w", err)
	}

	return path, nil
}
