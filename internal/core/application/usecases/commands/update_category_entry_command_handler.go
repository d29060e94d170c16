package commands

import (
	"context"
)

// UpdateCategoryEntryCommandHandler handles edits to specification entries.
type UpdateCategoryEntryCommandHandler struct {
	uowFactory CategoryEntryUoWFactory
}

// NewUpdateCategoryEntryCommandHandler creates a handler for category-entry edits.
func NewUpdateCategoryEntryCommandHandler(uowFactory CategoryEntryUoWFactory) UpdateCategoryEntryCommandHandler {
	return UpdateCategoryEntryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit command. The aggregate rejects invalid
// replacement fields, in which case the stored entry is left as it was.
func (h *UpdateCategoryEntryCommandHandler) Handle(ctx context.Context, cmd UpdateCategoryEntryCommand) error {
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

	if err = entry.Update(cmd.Details()); err != nil {
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
