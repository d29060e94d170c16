package commands

import (
	"errors"

	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/pkg/guard"
)

var ErrMarkReadyForQCCommandIsNotConstructed = errors.New(
	"MarkReadyForQCCommand must be created via NewMarkReadyForQCCommand constructor",
)

// MarkReadyForQCCommand represents a request to move a pending assignment
// into the quality-check queue.
type MarkReadyForQCCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkReadyForQCCommand creates a command to queue an assignment for QC.
func NewMarkReadyForQCCommand(assignmentID kernel.UUID) (MarkReadyForQCCommand, error) {
	cmd := MarkReadyForQCCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setAssignmentID(assignmentID); err != nil {
		return MarkReadyForQCCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkReadyForQCCommand) Validate() error {
	return c.guard.Validate(ErrMarkReadyForQCCommandIsNotConstructed)
}

// AssignmentID returns the identifier of the assignment to queue.
func (c MarkReadyForQCCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

func (c *MarkReadyForQCCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}
