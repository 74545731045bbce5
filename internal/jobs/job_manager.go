package jobs

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingCashRefreshJob *PendingCashRefreshJob
	dailyResetJob         *DailyResetJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	refreshPendingCashHandler commands.RefreshPendingCashCommandHandler,
	resetDailyCountersHandler commands.ResetDailyCountersCommandHandler,
	driverRepo ports.DriverRepository,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingCashRefreshJob: NewPendingCashRefreshJob(refreshPendingCashHandler, driverRepo, logger),
		dailyResetJob:         NewDailyResetJob(resetDailyCountersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingCashRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending cash refresh job: %w", err)
	}

	if err := jm.dailyResetJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.pendingCashRefreshJob.Stop()
		return fmt.Errorf("failed to start daily reset job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingCashRefreshJob.Stop()
	jm.dailyResetJob.Stop()
}
