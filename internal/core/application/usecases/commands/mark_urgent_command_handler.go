package commands

import (
	"context"
	"time"

	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/pkg/errs"
)

// MarkUrgentCommandHandler handles urgency escalation. The work orders and
// the category entries sharing the job number are updated in one
// transaction, so the two aggregates cannot diverge: either all of them
// carry the new due date or none do.
type MarkUrgentCommandHandler struct {
	uowFactory UrgencyUoWFactory

	// now is the clock used to reject past due dates. Overridable in tests.
	now func() time.Time
}

// NewMarkUrgentCommandHandler creates a handler for urgency escalation.
func NewMarkUrgentCommandHandler(uowFactory UrgencyUoWFactory) MarkUrgentCommandHandler {
	return MarkUrgentCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the escalation command. Returns a not-found error when
// no work order and no category entry carries the job number.
func (h *MarkUrgentCommandHandler) Handle(ctx context.Context, cmd MarkUrgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	today := kernel.NewDate(h.now())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	woRepo := uow.WorkOrderRepository()
	orders, err := woRepo.GetAllByJobNo(ctx, cmd.JobNo())
	if err != nil {
		return err
	}

	ceRepo := uow.CategoryEntryRepository()
	entries, err := ceRepo.GetAllByJobNo(ctx, cmd.JobNo())
	if err != nil {
		return err
	}

	if len(orders) == 0 && len(entries) == 0 {
		return errs.NewObjectNotFoundError("job_no", cmd.JobNo())
	}

	for _, wo := range orders {
		if err = wo.MarkUrgent(cmd.DueDate(), today); err != nil {
			return err
		}
		if err = woRepo.Update(ctx, wo); err != nil {
			return err
		}
	}

	for _, entry := range entries {
		if err = entry.MarkUrgent(cmd.DueDate(), today); err != nil {
			return err
		}
		if err = ceRepo.Update(ctx, entry); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
