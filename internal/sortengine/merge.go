package sortengine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/peak/xsort/internal/pqueue"
	"github.com/peak/xsort/internal/record"
	"github.com/peak/xsort/internal/xlog"
)

// MergeOptions configures the k-way merge phase.
type MergeOptions struct {
	ChunkPaths []string
	OutputPath string
	Logger     *xlog.Logger
}

// cursor pairs one chunk's reader with the record it is currently holding,
// the unit the merge's priority queue is keyed on (spec §9: "Priority
// queue over heterogeneous cursors").
type cursor struct {
	path    string
	file    *os.File
	reader  *bufio.Reader
	current record.Record
}

// advance reads the cursor's next valid line, silently skipping blank
// lines, and reports whether a record is now available. A non-blank line
// that fails to parse is logged and abandons the rest of that chunk, per
// spec §4.2's "drop the reader's tail" contract.
func (c *cursor) advance(logger *xlog.Logger) (bool, error) {
	for {
		line, err := readLine(c.reader)
		if err != nil {
			return false, err
		}
		if line == nil {
			return false, nil
		}

		r, ok := record.Parse(*line)
		if !ok {
			if strings.TrimSpace(*line) == "" {
				// blank line: skip without treating it as an unparseable
				// tail worth a warning.
				continue
			}
			if logger != nil {
				logger.Warning(xlog.AbandonedReaderMessage{Path: c.path})
			}
			return false, nil
		}

		c.current = r
		return true, nil
	}
}

// readLine returns the next line (without its terminator) or nil at EOF.
// It accepts both LF and CRLF terminated lines.
func readLine(r *bufio.Reader) (*string, error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(line) == 0 && err == io.EOF {
		return nil, nil
	}
	line = trimLineEnding(line)
	return &line, nil
}

func trimLineEnding(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		s = s[:n-1]
	}
	if n := len(s); n > 0 && s[n-1] == '\r' {
		s = s[:n-1]
	}
	return s
}

func (c *cursor) close() error {
	return c.file.Close()
}

// Merge opens every chunk, seeds a min-heap keyed on each chunk's current
// record, and repeatedly emits the minimum while refilling from the chunk
// that supplied it, writing the result to opts.OutputPath (spec §4.2).
//
// Every opened reader is closed on every exit path, including
// cancellation and error, and their close errors are aggregated rather
// than dropped.
func Merge(ctx context.Context, opts MergeOptions) (err error) {
	out, createErr := os.Create(opts.OutputPath)
	if createErr != nil {
		return fmt.Errorf("create output: %w", createErr)
	}

	var openCursors []*cursor
	defer func() {
		var closeErrs *multierror.Error
		for _, c := range openCursors {
			if cerr := c.close(); cerr != nil {
				closeErrs = multierror.Append(closeErrs, cerr)
			}
		}
		if cerr := out.Close(); cerr != nil {
			closeErrs = multierror.Append(closeErrs, cerr)
		}
		if closeErrs != nil {
			if err == nil {
				err = closeErrs.ErrorOrNil()
			} else {
				closeErrs = multierror.Append(closeErrs, err)
				err = closeErrs.ErrorOrNil()
			}
		}
	}()

	if len(opts.ChunkPaths) == 0 {
		return nil
	}

	pq := pqueue.New(func(a, b *cursor) bool {
		return record.Less(a.current, b.current)
	})

	for _, path := range opts.ChunkPaths {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open chunk %v: %w", path, err)
		}
		c := &cursor{path: path, file: f, reader: bufio.NewReaderSize(f, readBufferSize)}
		openCursors = append(openCursors, c)

		ok, err := c.advance(opts.Logger)
		if err != nil {
			return fmt.Errorf("read chunk %v: %w", path, err)
		}
		if ok {
			pq.Push(c)
		}
	}

	w := bufio.NewWriterSize(out, writeBufferSize)
	for pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		c := pq.Pop()
		if _, werr := w.WriteString(c.current.Raw); werr != nil {
			return fmt.Errorf("write output: %w", werr)
		}
		if werr := w.WriteByte('\n'); werr != nil {
			return fmt.Errorf("write output: %w", werr)
		}

		more, aerr := c.advance(opts.Logger)
		if aerr != nil {
			return fmt.Errorf("read chunk %v: %w", c.path, aerr)
		}
		if more {
			pq.Push(c)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}
