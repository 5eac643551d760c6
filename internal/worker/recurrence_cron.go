package worker

// recurrence_cron.go
// Background goroutine that periodically materializes recurring expenses
// whose next due date has passed.

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// RecurrenceSpawner materializes due recurring expenses. Implemented by the
// expense service; declared here so the cron does not depend on it.
type RecurrenceSpawner interface {
	SpawnDueRecurring(ctx context.Context, now time.Time) (int, error)
}

// StartRecurrenceCron launches a goroutine that ticks on the given interval
// and spawns any recurring expenses that have come due. It respects the
// context for graceful shutdown.
func StartRecurrenceCron(ctx context.Context, spawner RecurrenceSpawner, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		log.Info().Dur("interval", interval).Msg("recurrence_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("recurrence_cron: shutting down")
				return
			case <-ticker.C:
				spawned, err := spawner.SpawnDueRecurring(ctx, time.Now())
				if err != nil {
					log.Error().Err(err).Msg("recurrence_cron: failed to spawn due expenses")
					continue
				}
				if spawned > 0 {
					log.Info().Int("count", spawned).Msg("recurrence_cron: spawned recurring expenses")
				}
			}
		}
	}()
}
