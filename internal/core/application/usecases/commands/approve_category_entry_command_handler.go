package commands

import (
	"context"
)

// ApproveCategoryEntryCommandHandler handles the approval gate for
// category entries.
type ApproveCategoryEntryCommandHandler struct {
	uowFactory CategoryEntryUoWFactory
}

// NewApproveCategoryEntryCommandHandler creates a handler for category-entry approval.
func NewApproveCategoryEntryCommandHandler(uowFactory CategoryEntryUoWFactory) ApproveCategoryEntryCommandHandler {
	return ApproveCategoryEntryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command. Approving an already-approved
// entry commits without visible change.
func (h *ApproveCategoryEntryCommandHandler) Handle(ctx context.Context, cmd ApproveCategoryEntryCommand) error {
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

	repo := uow.CategoryEntryRepository()
	entry, err := repo.Get(ctx, cmd.EntryID())
	if err != nil {
		return err
	}

	entry.Approve()

	if err = repo.Update(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
