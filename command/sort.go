package command

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/peak/xsort/internal/sortengine"
)

func NewSortCommand() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Usage:     "sort a numbered-record file by text then number, using bounded memory",
		ArgsUsage: "source-file destination-file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "temp-dir",
				Usage: "directory for intermediate chunk files (default: a fresh directory under the OS temp dir)",
			},
			&cli.Int64Flag{
				Name:  "max-chunk-size",
				Value: sortengine.DefaultMaxChunkBytes,
				Usage: "approximate in-memory budget per chunk, in bytes",
			},
		},
		Action: func(c *cli.Context) error {
			if err := checkNumberOfArguments(c, 2, 2); err != nil {
				return cli.Exit(err, exitCodeUsage)
			}
			if err := validateSortFlags(c); err != nil {
				return cli.Exit(err, exitCodeUsage)
			}

			logger := loggerFromContext(c)
			src := c.Args().Get(0)
			dst := c.Args().Get(1)

			tempDir := c.String("temp-dir")
			if tempDir == "" {
				tempDir = filepath.Join(os.TempDir(), "xsort-"+uuid.New().String())
			}

			err := sortengine.Run(c.Context, sortengine.Options{
				InputPath:     src,
				OutputPath:    dst,
				TempDir:       tempDir,
				MaxChunkBytes: c.Int64("max-chunk-size"),
				Logger:        logger,
			})
			if err != nil {
				printError(logger, "sort", err)
				return cli.Exit("", exitCodeFor(err))
			}
			// sortengine.Run swallows cancellation and returns nil, so a
			// cancelled run is detected from the context.
			if c.Context.Err() != nil {
				return cli.Exit("", exitCodeCancelled)
			}

			setStat(c, fmt.Sprintf("sorted %s into %s", src, dst))
			return nil
		},
	}
}
