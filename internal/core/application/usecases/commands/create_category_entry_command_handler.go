package commands

import (
	"context"

	"jobshop/internal/core/domain/model/categoryentry"
)

// CreateCategoryEntryCommandHandler handles intake of specification entries.
type CreateCategoryEntryCommandHandler struct {
	uowFactory CategoryEntryUoWFactory
}

// NewCreateCategoryEntryCommandHandler creates a handler for category-entry intake.
func NewCreateCategoryEntryCommandHandler(uowFactory CategoryEntryUoWFactory) CreateCategoryEntryCommandHandler {
	return CreateCategoryEntryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the category-entry creation command. The entry starts
// unapproved; nothing is persisted when the aggregate rejects the input.
func (h *CreateCategoryEntryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryEntryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	entry, err := categoryentry.NewCategoryEntry(cmd.EntryID(), cmd.JobNo(), cmd.Details())
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

	if err = uow.CategoryEntryRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
