package xlog

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestLevelFromString(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warning", LevelWarning},
		{"error", LevelError},
		{"garbage", LevelInfo},
		{"", LevelInfo},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, LevelFromString(tc.in), tc.want)
		})
	}
}

func TestLoggerDropsBelowLevel(t *testing.T) {
	t.Parallel()

	l := New(LevelError, false)
	defer l.Close()

	// Below-threshold messages must not block or panic; Close should
	// still drain cleanly.
	l.Debug(Plain("should be dropped"))
	l.Info(Plain("should be dropped"))
	l.Warning(Plain("should be dropped"))
}
