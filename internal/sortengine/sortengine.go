// Package sortengine implements the external merge sort: the chunking
// phase, the k-way merge phase, and the orchestrator that sequences them
// and guarantees temp-file cleanup.
package sortengine

import (
	"bufio"
	"io"

	"github.com/peak/xsort/internal/xlog"
)

// readBufferSize is the suggested buffered-reader size for input and
// chunk files (spec §4.1: "suggested buffer 64 KiB").
const readBufferSize = 64 * 1024

// writeBufferSize is the buffered-writer size for chunk and output files.
const writeBufferSize = 64 * 1024

// scanLines calls fn for every line of r, stopping early if fn returns
// false. bufio.ScanLines already treats a trailing \r\n as one line break,
// so LF and CRLF input are both handled by one code path (spec §6:
// "consumers must accept either LF or CRLF on input").
func scanLines(r io.Reader, fn func(line string) (more bool)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, readBufferSize), 1024*1024*1024)
	for scanner.Scan() {
		if !fn(scanner.Text()) {
			break
		}
	}
	return scanner.Err()
}

func logSkippedLine(logger *xlog.Logger, source, line string) {
	if logger == nil {
		return
	}
	logger.Warning(xlog.SkippedLineMessage{Source: source, Line: line})
}
