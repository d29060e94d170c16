package commands

import (
	"context"
)

// DeleteWorkOrderCommandHandler handles confirmed administrative deletes of
// work orders. Without confirmation the handler is side-effect-free.
type DeleteWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewDeleteWorkOrderCommandHandler creates a handler for work-order deletes.
func NewDeleteWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) DeleteWorkOrderCommandHandler {
	return DeleteWorkOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete. Returns ErrDeleteNotConfirmed before
// touching storage when the operator did not confirm.
func (h *DeleteWorkOrderCommandHandler) Handle(ctx context.Context, cmd DeleteWorkOrderCommand) error {
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

	repo := uow.WorkOrderRepository()
	// Get first so a missing id surfaces as not-found, not a silent no-op.
	if _, err := repo.Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := repo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
