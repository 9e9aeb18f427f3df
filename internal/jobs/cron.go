package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/corebeautylab/salon-scheduler/internal/config"
	"github.com/corebeautylab/salon-scheduler/internal/domain/schedule"
	"github.com/corebeautylab/salon-scheduler/internal/timezone"
	ucStats "github.com/corebeautylab/salon-scheduler/internal/usecase/stats"
)

// Start schedules the recurring jobs. Currently one: warm the
// "today" stats cache before the salon opens so the dashboard's
// first request of the day is served from Redis.
func Start(
	cfg *config.Config,
	aggregator *ucStats.Aggregator,
	log zerolog.Logger,
) *cron.Cron {

	c := cron.New(cron.WithLocation(timezone.Location(cfg.Timezone)))

	_, err := c.AddFunc("30 6 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		now := timezone.NowIn(cfg.Timezone)
		if _, err := aggregator.Execute(ctx, schedule.PeriodToday, now, time.Monday); err != nil {
			log.Error().Err(err).Msg("stats warmup failed")
			return
		}
		log.Info().Msg("stats cache warmed")
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to register stats warmup job")
		return c
	}

	c.Start()
	return c
}
