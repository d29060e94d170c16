package commands

import (
	"context"
	"errors"
	"fmt"

	"jobshop/internal/core/domain/model/assignment"
	"jobshop/internal/core/domain/services"
	"jobshop/internal/pkg/errs"
)

// SelectionValidator checks a machine/worker selection against the loaded
// catalog taxonomy. Implemented by catalog.Catalog.
type SelectionValidator interface {
	ValidateSelection(sel assignment.Selection) error
}

// AssignWorkerCommandHandler handles quantity reservation and ledger
// append. The work-order row is read under a FOR UPDATE lock, so two
// operators racing for the same key serialize: the second sees the first's
// ledger entry and over-allocation is rejected instead of double-booked.
type AssignWorkerCommandHandler struct {
	uowFactory AssignmentUoWFactory
	selections SelectionValidator
	allocator  services.QuantityAllocator
}

// NewAssignWorkerCommandHandler creates a handler for worker assignment.
// Requires an AssignmentUoWFactory and the catalog for selection checks.
func NewAssignWorkerCommandHandler(
	uowFactory AssignmentUoWFactory,
	selections SelectionValidator,
) AssignWorkerCommandHandler {
	return AssignWorkerCommandHandler{
		uowFactory: uowFactory,
		selections: selections,
		allocator:  services.NewQuantityAllocator(),
	}
}

// Handle processes the assignment command: validates the selection against
// the catalog, locks the work order, recomputes remaining quantity from the
// ledger, and appends the new pending assignment — all in one transaction.
func (h *AssignWorkerCommandHandler) Handle(ctx context.Context, cmd AssignWorkerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.selections.ValidateSelection(cmd.Selection()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	wo, err := uow.WorkOrderRepository().GetByKeyForUpdate(
		ctx, cmd.JoNo(), cmd.ItemNo(), cmd.SerialNo())
	if err != nil {
		// A key with no matching serial has nothing to allocate from; the
		// reservation fails the same way as an exhausted work order.
		if errors.Is(err, errs.ErrObjectNotFound) {
			return fmt.Errorf("%w: %v", services.ErrNoQuantity, err)
		}
		return err
	}

	assignmentRepo := uow.AssignmentRepository()
	ledger, err := assignmentRepo.GetAllByKey(ctx, cmd.JoNo(), cmd.ItemNo(), cmd.SerialNo())
	if err != nil {
		return err
	}

	entry, err := h.allocator.Reserve(
		wo, ledger, cmd.AssignmentID(), cmd.Selection(), cmd.QuantityNo(), cmd.AssigningDate())
	if err != nil {
		return err
	}

	if err = assignmentRepo.Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
