package commands

import (
	"errors"

	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/pkg/guard"
)

var ErrDeleteCategoryEntryCommandIsNotConstructed = errors.New(
	"DeleteCategoryEntryCommand must be created via NewDeleteCategoryEntryCommand constructor",
)

// DeleteCategoryEntryCommand represents a confirmed administrative delete
// of a category entry.
type DeleteCategoryEntryCommand struct { //nolint:recvcheck //using for validation
	entryID   kernel.UUID
	confirmed bool

	guard guard.ConstructorGuard
}

// NewDeleteCategoryEntryCommand creates a command to delete a category entry.
func NewDeleteCategoryEntryCommand(entryID kernel.UUID, confirmed bool) (DeleteCategoryEntryCommand, error) {
	cmd := DeleteCategoryEntryCommand{
		confirmed: confirmed,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setEntryID(entryID); err != nil {
		return DeleteCategoryEntryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCategoryEntryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCategoryEntryCommandIsNotConstructed)
}

// EntryID returns the identifier of the entry to delete.
func (c DeleteCategoryEntryCommand) EntryID() kernel.UUID {
	return c.entryID
}

// Confirmed reports whether the operator confirmed the delete.
func (c DeleteCategoryEntryCommand) Confirmed() bool {
	return c.confirmed
}

func (c *DeleteCategoryEntryCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}

	c.entryID = entryID
	return nil
}
