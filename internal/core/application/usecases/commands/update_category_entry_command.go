package commands

import (
	"errors"

	"jobshop/internal/core/domain/model/categoryentry"
	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/pkg/guard"
)

var ErrUpdateCategoryEntryCommandIsNotConstructed = errors.New(
	"UpdateCategoryEntryCommand must be created via NewUpdateCategoryEntryCommand constructor",
)

// UpdateCategoryEntryCommand represents a request to replace the
// specification fields of an existing category entry. Approval and urgency
// state are not touched by an edit.
type UpdateCategoryEntryCommand struct { //nolint:recvcheck //using for validation
	entryID kernel.UUID
	details categoryentry.Details

	guard guard.ConstructorGuard
}

// NewUpdateCategoryEntryCommand creates a command to edit a category entry.
func NewUpdateCategoryEntryCommand(
	entryID kernel.UUID,
	details categoryentry.Details,
) (UpdateCategoryEntryCommand, error) {
	cmd := UpdateCategoryEntryCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setEntryID(entryID); err != nil {
		return UpdateCategoryEntryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCategoryEntryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCategoryEntryCommandIsNotConstructed)
}

// EntryID returns the identifier of the entry to edit.
func (c UpdateCategoryEntryCommand) EntryID() kernel.UUID {
	return c.entryID
}

// Details returns the replacement specification fields.
func (c UpdateCategoryEntryCommand) Details() categoryentry.Details {
	return c.details
}

func (c *UpdateCategoryEntryCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}

	c.entryID = entryID
	return nil
}
