package command

import (
	"strings"

	"github.com/peak/xsort/internal/xlog"
)

// printError logs err through logger, collapsing multiline messages into
// one line the way the teacher's cleanupError does.
func printError(logger *xlog.Logger, op string, err error) {
	if logger == nil || err == nil {
		return
	}
	logger.Error(xlog.Plain(op + ": " + cleanupError(err)))
}

func cleanupError(err error) string {
	s := strings.ReplaceAll(err.Error(), "\n", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	s = strings.ReplaceAll(s, "  ", " ")
	return strings.TrimSpace(s)
}
