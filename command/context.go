package command

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/peak/xsort/internal/xlog"
)

type contextKey int

const (
	loggerContextKey contextKey = iota
	statContextKey
)

// setLogger attaches logger to c so subcommands and the After hook can
// retrieve it without threading it through every function signature.
func setLogger(c *cli.Context, logger *xlog.Logger) {
	c.Context = context.WithValue(c.Context, loggerContextKey, logger)
}

func loggerFromContext(c *cli.Context) *xlog.Logger {
	logger, _ := c.Context.Value(loggerContextKey).(*xlog.Logger)
	return logger
}

// setStat records a one-line run summary, surfaced by the App's After
// hook when --stat is given.
func setStat(c *cli.Context, detail string) {
	c.Context = context.WithValue(c.Context, statContextKey, detail)
}

func statFromContext(c *cli.Context) (string, bool) {
	detail, ok := c.Context.Value(statContextKey).(string)
	return detail, ok
}
