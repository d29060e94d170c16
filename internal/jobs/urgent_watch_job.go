package jobs

import (
	"context"
	"log/slog"
	"time"

	"jobshop/internal/core/application/usecases/queries"
	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/core/domain/model/workorder"

	"github.com/robfig/cron/v3"
)

// UrgentWatchJob periodically scans the escalated work orders and logs the
// ones past their due date. Observability only: the job never mutates
// records, it gives the morning shift a list of what slipped.
type UrgentWatchJob struct {
	handler queries.GetWorkOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
	spec    string

	// now is the clock overdue checks compare against.
	now func() time.Time
}

// NewUrgentWatchJob creates a job that checks urgent work orders on the
// given cron spec (with seconds field).
func NewUrgentWatchJob(handler queries.GetWorkOrdersQueryHandler, spec string, logger *slog.Logger) *UrgentWatchJob {
	return &UrgentWatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "urgent_watch_job"),
		spec:    spec,
		now:     time.Now,
	}
}

// Start schedules the urgent watch job.
func (j *UrgentWatchJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Urgent watch job started", "spec", j.spec)
	return nil
}

// Stop stops the urgent watch job.
func (j *UrgentWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Urgent watch job stopped")
}

func (j *UrgentWatchJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetWorkOrdersQuery(workorder.UnknownJobType, 0, true)
	if err != nil {
		j.logger.ErrorContext(ctx, "Urgent watch job failed to build query", "error", err)
		return
	}

	orders, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Urgent watch job failed", "error", err)
		return
	}

	today := kernel.NewDate(j.now())
	overdue := 0
	for _, wo := range orders {
		if wo.UrgentDueDate == "" {
			continue
		}

		dueDate, dateErr := kernel.DateFromString(wo.UrgentDueDate)
		if dateErr != nil || !dueDate.Before(today) {
			continue
		}

		overdue++
		j.logger.WarnContext(ctx, "Urgent work order past due date",
			"jo_number", wo.JoNumber,
			"item_no", wo.ItemNo,
			"serial_no", wo.SerialNo,
			"job_type", wo.JobType,
			"urgent_due_date", wo.UrgentDueDate,
		)
	}

	j.logger.InfoContext(ctx, "Urgent watch sweep finished",
		"urgent", len(orders), "overdue", overdue)
}
