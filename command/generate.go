package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/peak/xsort/internal/generator"
)

func NewGenerateCommand() *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Usage:     "generate a synthetic numbered-record file of at least the given size",
		ArgsUsage: "destination-file size-in-bytes",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "producers",
				Usage: "number of concurrent line-producer goroutines (default: number of CPUs)",
			},
			&cli.IntFlag{
				Name:  "lines-per-batch",
				Value: generator.DefaultLinesPerBatch,
				Usage: "records handed to the writer per batch",
			},
			&cli.IntFlag{
				Name:  "channel-capacity",
				Value: generator.DefaultChannelCapacity,
				Usage: "bounded channel capacity between producers and the writer",
			},
		},
		Action: func(c *cli.Context) error {
			if err := checkNumberOfArguments(c, 2, 2); err != nil {
				return cli.Exit(err, exitCodeUsage)
			}

			logger := loggerFromContext(c)
			dst := c.Args().Get(0)

			var targetBytes int64
			if _, err := fmt.Sscanf(c.Args().Get(1), "%d", &targetBytes); err != nil || targetBytes <= 0 {
				return cli.Exit(fmt.Sprintf("size-in-bytes must be a positive integer, got %q", c.Args().Get(1)), exitCodeUsage)
			}

			if err := validateGenerateFlags(c); err != nil {
				return cli.Exit(err, exitCodeUsage)
			}

			err := generator.Run(c.Context, generator.Options{
				OutputPath:      dst,
				TargetBytes:     targetBytes,
				Producers:       c.Int("producers"),
				LinesPerBatch:   c.Int("lines-per-batch"),
				ChannelCapacity: c.Int("channel-capacity"),
			})
			if err != nil {
				printError(logger, "generate", err)
				return cli.Exit("", exitCodeFor(err))
			}

			setStat(c, fmt.Sprintf("generated %s (>= %d bytes)", dst, targetBytes))
			return nil
		},
	}
}
