package jobs

import (
	"context"
	"errors"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// PendingCashRefreshJob periodically recomputes every driver's pending cash
// balance from the order and collection ledger. The cached balance on the
// aggregate can drift only through bugs or manual data fixes; the refresh
// reconciles it.
type PendingCashRefreshJob struct {
	handler    commands.RefreshPendingCashCommandHandler
	driverRepo ports.DriverRepository
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewPendingCashRefreshJob creates a job that reconciles driver cash balances.
// The driver repository supplies the set of drivers to refresh on each run.
func NewPendingCashRefreshJob(
	handler commands.RefreshPendingCashCommandHandler,
	driverRepo ports.DriverRepository,
	logger *slog.Logger,
) *PendingCashRefreshJob {
	return &PendingCashRefreshJob{
		handler:    handler,
		driverRepo: driverRepo,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "pending_cash_refresh_job"),
	}
}

// Start begins the refresh job, running every five minutes.
func (j *PendingCashRefreshJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()

		drivers, err := j.driverRepo.GetAll(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending cash refresh job failed to list drivers", "error", err)
			return
		}

		for _, aggregate := range drivers {
			cmd, err := commands.NewRefreshPendingCashCommand(aggregate.ID())
			if err != nil {
				j.logger.ErrorContext(ctx, "Pending cash refresh job failed to build command",
					"driver_id", aggregate.ID().String(), "error", err)
				continue
			}

			if err := j.handler.Handle(ctx, cmd); err != nil {
				// An integrity fault means the ledger itself disagrees with
				// the cached balance; surface it loudly but keep going so one
				// bad driver does not block the rest.
				if errors.Is(err, errs.ErrIntegrityFault) {
					j.logger.ErrorContext(ctx, "Pending cash refresh found a ledger integrity fault",
						"driver_id", aggregate.ID().String(), "error", err)
					continue
				}
				j.logger.ErrorContext(ctx, "Pending cash refresh job failed",
					"driver_id", aggregate.ID().String(), "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending cash refresh job started (running every five minutes)")
	return nil
}

// Stop stops the refresh job.
func (j *PendingCashRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending cash refresh job stopped")
}
