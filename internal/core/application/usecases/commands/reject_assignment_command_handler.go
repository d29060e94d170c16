package commands

import (
	"context"
)

// RejectAssignmentCommandHandler handles the READY_FOR_QC to REJECTED
// transition. No counter is decremented here: remaining quantity is always
// recomputed from the ledger, so the rejected units are assignable again as
// soon as the transaction commits.
type RejectAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewRejectAssignmentCommandHandler creates a handler for QC rejection.
func NewRejectAssignmentCommandHandler(uowFactory AssignmentUoWFactory) RejectAssignmentCommandHandler {
	return RejectAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection. Only assignments awaiting inspection can
// be rejected; terminal records stay as they are.
func (h *RejectAssignmentCommandHandler) Handle(ctx context.Context, cmd RejectAssignmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AssignmentRepository()
	entry, err := repo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}

	if err = entry.Reject(); err != nil {
		return err
	}

	if err = repo.Update(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
