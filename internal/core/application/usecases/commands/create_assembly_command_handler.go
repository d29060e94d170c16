package commands

import (
	"context"
	"fmt"

	"jobshop/internal/core/domain/model/workorder"
)

// CreateAssemblyCommandHandler handles atomic batch intake of work orders
// sharing one header. Every sub-item becomes one WorkOrder with sub type
// ASSEMBLY; a validation failure on any sub-item aborts the whole batch
// before anything is written.
type CreateAssemblyCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewCreateAssemblyCommandHandler creates a handler for assembly intake.
// Requires a WorkOrderUoWFactory for transactional persistence.
func NewCreateAssemblyCommandHandler(uowFactory WorkOrderUoWFactory) CreateAssemblyCommandHandler {
	return CreateAssemblyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assembly creation command. All sub-items are
// validated up front, then persisted inside one transaction, so a failure
// at any point leaves no partial rows. Sub-item errors carry the 1-based
// position the operator sees on the entry form.
func (h *CreateAssemblyCommandHandler) Handle(ctx context.Context, cmd CreateAssemblyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ids := cmd.OrderIDs()
	orders := make([]*workorder.WorkOrder, 0, len(cmd.Items()))
	for i, item := range cmd.Items() {
		sub, err := NewCreateWorkOrderCommand(
			ids[i], cmd.JobType(), workorder.Assembly,
			cmd.JobNo(), cmd.JobCategory(), cmd.Header(), item)
		if err != nil {
			return fmt.Errorf("item %d: %w", i+1, err)
		}

		wo, err := buildWorkOrder(sub)
		if err != nil {
			return fmt.Errorf("item %d: %w", i+1, err)
		}
		orders = append(orders, wo)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkOrderRepository()
	for i, wo := range orders {
		if err := repo.Add(ctx, wo); err != nil {
			return fmt.Errorf("item %d: %w", i+1, err)
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
