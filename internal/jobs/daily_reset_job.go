package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DailyResetJob zeroes every driver's completed-today counter at midnight.
type DailyResetJob struct {
	handler commands.ResetDailyCountersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDailyResetJob creates a job for the day rollover.
func NewDailyResetJob(handler commands.ResetDailyCountersCommandHandler, logger *slog.Logger) *DailyResetJob {
	return &DailyResetJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "daily_reset_job"),
	}
}

// Start begins the reset job, running at midnight server time.
func (j *DailyResetJob) Start() error {
	_, err := j.cron.AddFunc("0 0 0 * * *", func() {
		ctx := context.Background()

		if err := j.handler.Handle(ctx, commands.NewResetDailyCountersCommand()); err != nil {
			j.logger.ErrorContext(ctx, "Daily reset job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Daily delivery counters reset")
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily reset job started (running at midnight)")
	return nil
}

// Stop stops the reset job.
func (j *DailyResetJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily reset job stopped")
}
