package commands

import (
	"context"
)

// DeletePOServiceCommandHandler handles confirmed administrative deletes of
// PO service records. Without confirmation the handler is side-effect-free.
type DeletePOServiceCommandHandler struct {
	uowFactory POServiceUoWFactory
}

// NewDeletePOServiceCommandHandler creates a handler for PO service deletes.
func NewDeletePOServiceCommandHandler(uowFactory POServiceUoWFactory) DeletePOServiceCommandHandler {
	return DeletePOServiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete. Returns ErrDeleteNotConfirmed before
// touching storage when the operator did not confirm.
func (h *DeletePOServiceCommandHandler) Handle(ctx context.Context, cmd DeletePOServiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if !cmd.Confirmed() {
		return ErrDeleteNotConfirmed
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.POServiceRepository()
	if _, err := repo.Get(ctx, cmd.RecordID()); err != nil {
		return err
	}

	if err := repo.Delete(ctx, cmd.RecordID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
