package commands

import (
	"errors"

	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/pkg/guard"
)

var ErrApproveCategoryEntryCommandIsNotConstructed = errors.New(
	"ApproveCategoryEntryCommand must be created via NewApproveCategoryEntryCommand constructor",
)

// ApproveCategoryEntryCommand represents a request to pass a category entry
// through the approval gate. Approval is one-way; re-approving is a no-op.
type ApproveCategoryEntryCommand struct { //nolint:recvcheck //using for validation
	entryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveCategoryEntryCommand creates a command to approve a category entry.
func NewApproveCategoryEntryCommand(entryID kernel.UUID) (ApproveCategoryEntryCommand, error) {
	cmd := ApproveCategoryEntryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setEntryID(entryID); err != nil {
		return ApproveCategoryEntryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveCategoryEntryCommand) Validate() error {
	return c.guard.Validate(ErrApproveCategoryEntryCommandIsNotConstructed)
}

// EntryID returns the identifier of the entry to approve.
func (c ApproveCategoryEntryCommand) EntryID() kernel.UUID {
	return c.entryID
}

func (c *ApproveCategoryEntryCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}

	c.entryID = entryID
	return nil
}
