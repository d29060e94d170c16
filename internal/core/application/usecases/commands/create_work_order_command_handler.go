package commands

import (
	"context"

	"jobshop/internal/core/domain/model/workorder"
)

// CreateWorkOrderCommandHandler handles the business logic for work-order
// intake. Builds the job-type variant the command asks for and persists it
// in the pending-approval state.
type CreateWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewCreateWorkOrderCommandHandler creates a handler for work-order intake.
// Requires a WorkOrderUoWFactory for transactional persistence.
func NewCreateWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) CreateWorkOrderCommandHandler {
	return CreateWorkOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the work-order creation command.
// The variant constructor enforces the per-type required fields; nothing is
// persisted when it rejects the input.
func (h *CreateWorkOrderCommandHandler) Handle(ctx context.Context, cmd CreateWorkOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	wo, err := buildWorkOrder(cmd)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WorkOrderRepository().Add(ctx, wo); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// buildWorkOrder dispatches to the variant constructor matching the
// command's job type. Shared with the assembly handler.
func buildWorkOrder(cmd CreateWorkOrderCommand) (*workorder.WorkOrder, error) {
	switch cmd.JobType() {
	case workorder.TsoService:
		return workorder.NewTsoServiceOrder(
			cmd.OrderID(), cmd.SubType(), cmd.JobCategory(), cmd.Header(), cmd.Item())
	case workorder.Kanban:
		return workorder.NewKanbanOrder(
			cmd.OrderID(), cmd.SubType(), cmd.JobCategory(), cmd.Header(), cmd.Item())
	default:
		return workorder.NewJobServiceOrder(
			cmd.OrderID(), cmd.SubType(), cmd.JobNo(), cmd.JobCategory(), cmd.Header(), cmd.Item())
	}
}
