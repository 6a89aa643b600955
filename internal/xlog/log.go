// Package xlog is a small leveled logger shared by the sort engine and the
// generator. Log lines are funneled through a single buffered channel so
// concurrent producers and workers never interleave partial lines on
// stdout, the same technique the teacher's own log package uses.
package xlog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "#"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LevelFromString parses a CLI --log flag value, defaulting to LevelInfo
// for anything unrecognized.
func LevelFromString(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warning":
		return LevelWarning
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger is a leveled, optionally JSON-formatted logger that serializes
// concurrent writers through one background goroutine.
type Logger struct {
	lines chan string
	done  chan struct{}
	impl  *log.Logger
	level Level
	json  bool
}

// New creates a Logger at level writing to os.Stdout and starts its
// background drain goroutine. Callers must call Close before exiting to
// flush pending lines.
func New(level Level, jsonOutput bool) *Logger {
	l := &Logger{
		lines: make(chan string, 10000),
		done:  make(chan struct{}),
		impl:  log.New(os.Stdout, "", 0),
		level: level,
		json:  jsonOutput,
	}
	go l.drain()
	return l
}

func (l *Logger) drain() {
	defer close(l.done)
	for line := range l.lines {
		l.impl.Println(line)
	}
}

func (l *Logger) render(level Level, msg Message) string {
	if l.json {
		return msg.JSON()
	}
	return fmt.Sprintf("%v %v", level, msg.String())
}

func (l *Logger) emit(level Level, msg Message) {
	if level < l.level {
		return
	}
	l.lines <- l.render(level, msg)
}

func (l *Logger) Debug(msg Message)   { l.emit(LevelDebug, msg) }
func (l *Logger) Info(msg Message)    { l.emit(LevelInfo, msg) }
func (l *Logger) Warning(msg Message) { l.emit(LevelWarning, msg) }
func (l *Logger) Error(msg Message)   { l.emit(LevelError, msg) }

// Close flushes all pending lines and stops the drain goroutine.
func (l *Logger) Close() {
	close(l.lines)
	<-l.done
}

// stringMessage adapts a plain string to the Message interface for
// call sites that don't warrant a dedicated struct.
type stringMessage string

func (s stringMessage) String() string { return string(s) }
func (s stringMessage) JSON() string {
	b, _ := json.Marshal(struct {
		Message string `json:"message"`
	}{string(s)})
	return string(b)
}

// Plain wraps s as a Message.
func Plain(s string) Message { return stringMessage(s) }
