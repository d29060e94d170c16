package commands

import (
	"context"
)

// AcceptAssignmentCommandHandler handles the READY_FOR_QC to ACCEPTED
// transition. Accepting an already-accepted assignment is a no-op, so the
// operation is safe to retry.
type AcceptAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAcceptAssignmentCommandHandler creates a handler for QC acceptance.
func NewAcceptAssignmentCommandHandler(uowFactory AssignmentUoWFactory) AcceptAssignmentCommandHandler {
	return AcceptAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance. A pending or rejected assignment cannot
// be accepted; the status machine rejects the transition.
func (h *AcceptAssignmentCommandHandler) Handle(ctx context.Context, cmd AcceptAssignmentCommand) error {
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

	if err = entry.Accept(); err != nil {
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
