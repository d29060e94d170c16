package commands

import (
	"context"
)

// DeleteCategoryEntryCommandHandler handles confirmed administrative
// deletes of category entries. Without confirmation the handler is
// side-effect-free.
type DeleteCategoryEntryCommandHandler struct {
	uowFactory CategoryEntryUoWFactory
}

// NewDeleteCategoryEntryCommandHandler creates a handler for category-entry deletes.
func NewDeleteCategoryEntryCommandHandler(uowFactory CategoryEntryUoWFactory) DeleteCategoryEntryCommandHandler {
	return DeleteCategoryEntryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete. Returns ErrDeleteNotConfirmed before
// touching storage when the operator did not confirm.
func (h *DeleteCategoryEntryCommandHandler) Handle(ctx context.Context, cmd DeleteCategoryEntryCommand) error {
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

	repo := uow.CategoryEntryRepository()
	if _, err := repo.Get(ctx, cmd.EntryID()); err != nil {
		return err
	}

	if err := repo.Delete(ctx, cmd.EntryID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
