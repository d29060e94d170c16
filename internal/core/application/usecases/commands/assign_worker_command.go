package commands

import (
	"errors"
	"fmt"

	"jobshop/internal/core/domain/model/assignment"
	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/pkg/errs"
	"jobshop/internal/pkg/guard"
)

var ErrAssignWorkerCommandIsNotConstructed = errors.New(
	"AssignWorkerCommand must be created via NewAssignWorkerCommand constructor",
)

// AssignWorkerCommand represents a request to reserve quantityNo units of
// one work-order serial and hand them to a machine and worker.
//
// Example:
//
//	cmd, err := NewAssignWorkerCommand(
//	    kernel.NewUUID(), 42, 101, "A",
//	    assignment.Selection{
//	        MachineCategory: "Lathe",
//	        MachineSize:     "small",
//	        MachineCode:     "SFL1",
//	        WorkerName:      "Naseem",
//	    },
//	    3, assigningDate)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment data: %w", err)
//	}
//
//	handler := NewAssignWorkerCommandHandler(uowFactory, cat)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to assign worker: %w", err)
//	}
type AssignWorkerCommand struct { //nolint:recvcheck //using for validation
	assignmentID  kernel.UUID
	joNo          int
	itemNo        int
	serialNo      string
	selection     assignment.Selection
	quantityNo    int
	assigningDate kernel.Date

	guard guard.ConstructorGuard
}

// NewAssignWorkerCommand creates a command to reserve and assign units.
// Validates the ledger key, quantity, and date; the selection itself is
// checked against the catalog taxonomy by the handler.
func NewAssignWorkerCommand(
	assignmentID kernel.UUID,
	joNo int,
	itemNo int,
	serialNo string,
	selection assignment.Selection,
	quantityNo int,
	assigningDate kernel.Date,
) (AssignWorkerCommand, error) {
	cmd := AssignWorkerCommand{
		itemNo:    itemNo,
		selection: selection,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssignmentID(assignmentID),
		cmd.setJoNo(joNo),
		cmd.setSerialNo(serialNo),
		cmd.setQuantityNo(quantityNo),
		cmd.setAssigningDate(assigningDate),
	); err != nil {
		return AssignWorkerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignWorkerCommand) Validate() error {
	return c.guard.Validate(ErrAssignWorkerCommandIsNotConstructed)
}

// AssignmentID returns the identifier for the new ledger entry.
func (c AssignWorkerCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// JoNo returns the work-order group number of the ledger key.
func (c AssignWorkerCommand) JoNo() int {
	return c.joNo
}

// ItemNo returns the item number of the ledger key.
func (c AssignWorkerCommand) ItemNo() int {
	return c.itemNo
}

// SerialNo returns the serial of the ledger key.
func (c AssignWorkerCommand) SerialNo() string {
	return c.serialNo
}

// Selection returns the machine and worker selection.
func (c AssignWorkerCommand) Selection() assignment.Selection {
	return c.selection
}

// QuantityNo returns the number of units to reserve.
func (c AssignWorkerCommand) QuantityNo() int {
	return c.quantityNo
}

// AssigningDate returns the hand-over date.
func (c AssignWorkerCommand) AssigningDate() kernel.Date {
	return c.assigningDate
}

func (c *AssignWorkerCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *AssignWorkerCommand) setJoNo(joNo int) error {
	if joNo <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("jo_no",
			fmt.Errorf("%d is not a positive integer", joNo))
	}

	c.joNo = joNo
	return nil
}

func (c *AssignWorkerCommand) setSerialNo(serialNo string) error {
	if serialNo == "" {
		return errs.NewValueIsRequiredError("serial_no")
	}

	c.serialNo = serialNo
	return nil
}

func (c *AssignWorkerCommand) setQuantityNo(quantityNo int) error {
	if quantityNo <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity_no",
			fmt.Errorf("%d is not greater than 0", quantityNo))
	}

	c.quantityNo = quantityNo
	return nil
}

func (c *AssignWorkerCommand) setAssigningDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("assigning_date", err)
	}

	c.assigningDate = date
	return nil
}
