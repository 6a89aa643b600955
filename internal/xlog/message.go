package xlog

import (
	"encoding/json"
	"fmt"
)

// Message is the interface for a structured log line; both the text and
// JSON renderers are produced up front so the writer goroutine never has
// to know the message's concrete type.
type Message interface {
	fmt.Stringer
	JSON() string
}

func asJSON(v interface{}) string {
	b, _ := json.Marshal(v)
	return string(b)
}

// SkippedLineMessage reports an input line that failed to parse and was
// dropped (spec §3: "Invalid lines are silently skipped with a warning").
type SkippedLineMessage struct {
	Source string `json:"source"`
	Line   string `json:"line"`
}

func (m SkippedLineMessage) String() string {
	return fmt.Sprintf("skipping unparseable line in %v: %q", m.Source, m.Line)
}

func (m SkippedLineMessage) JSON() string { return asJSON(m) }

// ChunkFlushedMessage reports a chunk flushed to disk during the chunking
// phase.
type ChunkFlushedMessage struct {
	Path    string `json:"path"`
	Records int    `json:"records"`
}

func (m ChunkFlushedMessage) String() string {
	return fmt.Sprintf("wrote chunk %v (%d records)", m.Path, m.Records)
}

func (m ChunkFlushedMessage) JSON() string { return asJSON(m) }

// AbandonedReaderMessage reports a chunk reader closed early because its
// first (or next) line failed to parse (spec §4.2: "a warning is
// emitted").
type AbandonedReaderMessage struct {
	Path string `json:"path"`
}

func (m AbandonedReaderMessage) String() string {
	return fmt.Sprintf("abandoning chunk reader for %v: unparseable line", m.Path)
}

func (m AbandonedReaderMessage) JSON() string { return asJSON(m) }

// CleanupWarningMessage reports a non-fatal failure during temp-file
// cleanup (spec §4.3: "Cleanup errors are logged as warnings, never
// propagated").
type CleanupWarningMessage struct {
	Path string `json:"path"`
	Err  string `json:"error"`
}

func (m CleanupWarningMessage) String() string {
	return fmt.Sprintf("cleanup warning for %v: %v", m.Path, m.Err)
}

func (m CleanupWarningMessage) JSON() string { return asJSON(m) }

// SummaryMessage is the end-of-run stat line (SPEC_FULL, supplemented
// features).
type SummaryMessage struct {
	Operation string `json:"operation"`
	Detail    string `json:"detail"`
}

func (m SummaryMessage) String() string {
	return fmt.Sprintf("%v: %v", m.Operation, m.Detail)
}

func (m SummaryMessage) JSON() string { return asJSON(m) }
