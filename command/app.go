package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/peak/xsort/internal/xlog"
)

const appName = "xsort"

var app = &cli.App{
	Name:  appName,
	Usage: "external merge-sort engine and synthetic file generator",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "enable JSON formatted log output",
		},
		&cli.GenericFlag{
			Name: "log",
			Value: &EnumValue{
				Enum:    []string{"debug", "info", "warning", "error"},
				Default: "info",
			},
			Usage: "log level: (debug, info, warning, error)",
		},
		&cli.BoolFlag{
			Name:  "stat",
			Usage: "print a one-line summary of the run before exiting",
		},
	},
	Before: func(c *cli.Context) error {
		level := xlog.LevelFromString(c.String("log"))
		logger := xlog.New(level, c.Bool("json"))
		setLogger(c, logger)
		return nil
	},
	CommandNotFound: func(c *cli.Context, command string) {
		fmt.Fprintf(os.Stderr, "xsort: %q is not an xsort command. See 'xsort --help'.\n", command)
	},
	OnUsageError: func(c *cli.Context, err error, isSubcommand bool) error {
		fmt.Fprintf(os.Stderr, "Incorrect Usage: %v\n", err)
		fmt.Fprintf(os.Stderr, "See 'xsort --help' for usage\n")
		return err
	},
	Action: func(c *cli.Context) error {
		if c.Args().Present() {
			cli.ShowCommandHelp(c, c.Args().First())
			return cli.Exit("", exitCodeUsage)
		}
		return cli.ShowAppHelp(c)
	},
	After: func(c *cli.Context) error {
		logger := loggerFromContext(c)
		if logger == nil {
			return nil
		}
		if c.Bool("stat") {
			if detail, ok := statFromContext(c); ok {
				logger.Info(xlog.SummaryMessage{Operation: c.Command.Name, Detail: detail})
			}
		}
		logger.Close()
		return nil
	},
}

// Commands returns the set of top-level xsort subcommands.
func Commands() []*cli.Command {
	return []*cli.Command{
		NewSortCommand(),
		NewGenerateCommand(),
	}
}

// Main is the entrypoint used by cmd/xsort. It wires ctx (which callers
// cancel on SIGINT) through to urfave/cli's context-aware run.
func Main(ctx context.Context, args []string) error {
	app.Commands = Commands()
	return app.RunContext(ctx, args)
}
