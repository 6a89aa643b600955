package command

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// checkNumberOfArguments checks if the number of positional arguments is
// within [min, max]. max < 0 means unbounded.
func checkNumberOfArguments(ctx *cli.Context, min, max int) error {
	l := ctx.Args().Len()
	if l < min {
		return fmt.Errorf("expected at least %d arguments but was given %d: %q", min, l, ctx.Args().Slice())
	}
	if max >= 0 && l > max {
		return fmt.Errorf("expected at most %d arguments but was given %d: %q", max, l, ctx.Args().Slice())
	}
	return nil
}

// validateSortFlags rejects a non-positive --max-chunk-size before it
// reaches sortengine.Run, instead of letting it be silently replaced by
// the default.
func validateSortFlags(c *cli.Context) error {
	if c.Int64("max-chunk-size") <= 0 {
		return fmt.Errorf("--max-chunk-size must be greater than 0, got %d", c.Int64("max-chunk-size"))
	}
	return nil
}

// validateGenerateFlags rejects non-positive --lines-per-batch or
// --channel-capacity, and a negative --producers, before they reach
// generator.Run.
func validateGenerateFlags(c *cli.Context) error {
	if c.Int("lines-per-batch") <= 0 {
		return fmt.Errorf("--lines-per-batch must be greater than 0, got %d", c.Int("lines-per-batch"))
	}
	if c.Int("channel-capacity") <= 0 {
		return fmt.Errorf("--channel-capacity must be greater than 0, got %d", c.Int("channel-capacity"))
	}
	if c.Int("producers") < 0 {
		return fmt.Errorf("--producers must not be negative, got %d", c.Int("producers"))
	}
	return nil
}
