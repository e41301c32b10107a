package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// MatchingJob runs the storage-to-order matching sweep on a schedule.
// Every run scans activated storages and creates requests for the orders
// each storage can serve.
type MatchingJob struct {
	handler commands.MatchStoragesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewMatchingJob creates the matching job. The sweep runs once a minute;
// partial failures inside a run are aggregated by the handler and logged here.
func NewMatchingJob(handler commands.MatchStoragesCommandHandler, logger *slog.Logger) *MatchingJob {
	return &MatchingJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "matching_job"),
	}
}

// Start schedules the matching sweep to run at the top of every minute.
func (j *MatchingJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewMatchStoragesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Matching sweep finished with failures", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Matching job started (running every minute)")
	return nil
}

// Stop stops the matching job.
func (j *MatchingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Matching job stopped")
}
