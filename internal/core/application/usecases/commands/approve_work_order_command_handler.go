package commands

import (
	"context"
)

// ApproveWorkOrderCommandHandler handles the approval gate for work orders.
// Only approved orders can have quantity reserved against them.
type ApproveWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewApproveWorkOrderCommandHandler creates a handler for work-order approval.
func NewApproveWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) ApproveWorkOrderCommandHandler {
	return ApproveWorkOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command. Approving an already-approved
// order commits without visible change.
func (h *ApproveWorkOrderCommandHandler) Handle(ctx context.Context, cmd ApproveWorkOrderCommand) error {
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

	repo := uow.WorkOrderRepository()
	wo, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	wo.Approve()

	if err = repo.Update(ctx, wo); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
