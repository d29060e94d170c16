package commands

import (
	"errors"

	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/pkg/guard"
)

var ErrDeletePOServiceCommandIsNotConstructed = errors.New(
	"DeletePOServiceCommand must be created via NewDeletePOServiceCommand constructor",
)

// DeletePOServiceCommand represents a confirmed administrative delete of a
// purchase-order service record.
type DeletePOServiceCommand struct { //nolint:recvcheck //using for validation
	recordID  kernel.UUID
	confirmed bool

	guard guard.ConstructorGuard
}

// NewDeletePOServiceCommand creates a command to delete a PO service record.
func NewDeletePOServiceCommand(recordID kernel.UUID, confirmed bool) (DeletePOServiceCommand, error) {
	cmd := DeletePOServiceCommand{
		confirmed: confirmed,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setRecordID(recordID); err != nil {
		return DeletePOServiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePOServiceCommand) Validate() error {
	return c.guard.Validate(ErrDeletePOServiceCommandIsNotConstructed)
}

// RecordID returns the identifier of the record to delete.
func (c DeletePOServiceCommand) RecordID() kernel.UUID {
	return c.recordID
}

// Confirmed reports whether the operator confirmed the delete.
func (c DeletePOServiceCommand) Confirmed() bool {
	return c.confirmed
}

func (c *DeletePOServiceCommand) setRecordID(recordID kernel.UUID) error {
	if err := recordID.Validate(); err != nil {
		return err
	}

	c.recordID = recordID
	return nil
}
