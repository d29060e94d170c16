package commands

import (
	"context"

	"jobshop/internal/core/domain/model/poservice"
)

// CreatePOServiceCommandHandler handles intake of purchase-order service
// records.
type CreatePOServiceCommandHandler struct {
	uowFactory POServiceUoWFactory
}

// NewCreatePOServiceCommandHandler creates a handler for PO service intake.
func NewCreatePOServiceCommandHandler(uowFactory POServiceUoWFactory) CreatePOServiceCommandHandler {
	return CreatePOServiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the PO service creation command.
func (h *CreatePOServiceCommandHandler) Handle(ctx context.Context, cmd CreatePOServiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	record, err := poservice.NewPOService(
		cmd.RecordID(), cmd.PoNo(), cmd.PoDate(), cmd.PnNo(),
		cmd.Description(), cmd.PoQnty(), cmd.JobNo(), cmd.JoCategory())
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

	if err = uow.POServiceRepository().Add(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
