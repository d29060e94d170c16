package commands

import (
	"errors"

	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/pkg/guard"
)

var ErrApproveWorkOrderCommandIsNotConstructed = errors.New(
	"ApproveWorkOrderCommand must be created via NewApproveWorkOrderCommand constructor",
)

// ApproveWorkOrderCommand represents a request to pass a work order through
// the approval gate. Approval is one-way; re-approving is a no-op.
type ApproveWorkOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveWorkOrderCommand creates a command to approve a work order.
func NewApproveWorkOrderCommand(orderID kernel.UUID) (ApproveWorkOrderCommand, error) {
	cmd := ApproveWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ApproveWorkOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveWorkOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the work order to approve.
func (c ApproveWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ApproveWorkOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
