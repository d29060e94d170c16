package commands

import (
	"context"
)

// MarkReadyForQCCommandHandler handles the PENDING to READY_FOR_QC
// transition on a ledger entry.
type MarkReadyForQCCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewMarkReadyForQCCommandHandler creates a handler for the ready-for-QC transition.
func NewMarkReadyForQCCommandHandler(uowFactory AssignmentUoWFactory) MarkReadyForQCCommandHandler {
	return MarkReadyForQCCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition. Any source state other than PENDING is
// rejected by the status machine and nothing is persisted.
func (h *MarkReadyForQCCommandHandler) Handle(ctx context.Context, cmd MarkReadyForQCCommand) error {
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

	if err = entry.MarkReadyForQC(); err != nil {
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
