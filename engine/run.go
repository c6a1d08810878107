package engine

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Run steps at the fixed tick interval until a Quit event, ctx cancellation or
// too many consecutive failing ticks. Cancellation is observed between ticks
func (c *Compositor) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.opts.TickInterval)
	defer ticker.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		quit, err := c.Step()
		if err != nil {
			c.errStreak++
			c.stats.tickErrors.Add(1)
			log.Printf("tick %d failed (%d in a row): %v", c.frames, c.errStreak, err)
			if limit := c.opts.MaxConsecutiveErrors; limit > 0 && c.errStreak >= limit {
				return fmt.Errorf("%w: %w", ErrTooManyErrors, err)
			}
		} else {
			c.errStreak = 0
		}
		if quit {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
