package commands

import (
	"errors"

	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/pkg/guard"
)

var (
	ErrDeleteWorkOrderCommandIsNotConstructed = errors.New(
		"DeleteWorkOrderCommand must be created via NewDeleteWorkOrderCommand constructor",
	)

	// ErrDeleteNotConfirmed is returned by the delete handlers when the
	// operator has not confirmed the destructive action. The record is
	// untouched; the caller re-submits with confirmation.
	ErrDeleteNotConfirmed = errors.New("delete requires explicit confirmation")
)

// DeleteWorkOrderCommand represents a confirmed administrative delete of a
// work order.
type DeleteWorkOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	confirmed bool

	guard guard.ConstructorGuard
}

// NewDeleteWorkOrderCommand creates a command to delete a work order.
// The confirmed flag carries the operator's explicit confirmation; the
// handler refuses to act without it.
func NewDeleteWorkOrderCommand(orderID kernel.UUID, confirmed bool) (DeleteWorkOrderCommand, error) {
	cmd := DeleteWorkOrderCommand{
		confirmed: confirmed,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return DeleteWorkOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteWorkOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the work order to delete.
func (c DeleteWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Confirmed reports whether the operator confirmed the delete.
func (c DeleteWorkOrderCommand) Confirmed() bool {
	return c.confirmed
}

func (c *DeleteWorkOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
