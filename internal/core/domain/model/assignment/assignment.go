package assignment

import (
	"errors"
	"fmt"

	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/pkg/errs"
)

// ErrAssignmentIsNotConstructed is returned when an Assignment was not
// created through NewAssignment or RestoreAssignment.
var ErrAssignmentIsNotConstructed = errors.New(
	"Assignment must be created via NewAssignment or RestoreAssignment",
)

// Selection names the machine and worker an assignment sends units to.
// The taxonomy itself (which sizes a category has, which workers run a
// size) lives in the catalog; the aggregate only requires an internally
// consistent selection.
type Selection struct {
	// MachineCategory is the machine family, e.g. "Lathe" or "Milling".
	MachineCategory string

	// MachineSize is the size class within the category. Empty for
	// categories that have a single machine.
	MachineSize string

	// MachineCode is the individual machine code, e.g. "SFL1". A code may
	// only accompany a selection that carries a size.
	MachineCode string

	// WorkerName is the operator receiving the units.
	WorkerName string
}

// Assignment is one append-only entry in the assignment ledger: a number of
// units of one work-order serial handed to a machine and worker on a date.
// The ledger is the single source of truth for remaining quantity, so
// records are never updated or deleted; only their quality-check status
// moves.
type Assignment struct {
	id kernel.UUID

	joNo     int
	itemNo   int
	serialNo string

	selection Selection

	quantityNo    int
	assigningDate kernel.Date

	status Status

	guard kernel.ConstructorGuard
}

// NewAssignment creates a pending assignment of quantityNo units of the
// (joNo, itemNo, serialNo) key to the selected machine and worker.
// Whether quantityNo fits the remaining quantity is the allocator's
// concern, not the aggregate's.
func NewAssignment(
	id kernel.UUID,
	joNo int,
	itemNo int,
	serialNo string,
	selection Selection,
	quantityNo int,
	assigningDate kernel.Date,
) (*Assignment, error) {
	a := &Assignment{
		status: Pending,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setKey(joNo, itemNo, serialNo),
		a.setSelection(selection),
		a.setQuantityNo(quantityNo),
		a.setAssigningDate(assigningDate),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an Assignment from persistence, preserving
// its quality-check status.
func RestoreAssignment(
	id kernel.UUID,
	joNo int,
	itemNo int,
	serialNo string,
	selection Selection,
	quantityNo int,
	assigningDate kernel.Date,
	status Status,
) (*Assignment, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Assignment{
		id:            id,
		joNo:          joNo,
		itemNo:        itemNo,
		serialNo:      serialNo,
		selection:     selection,
		quantityNo:    quantityNo,
		assigningDate: assigningDate,
		status:        status,
		guard:         kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Assignment was created through a constructor.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// IsEqual compares two assignments by their unique identifiers.
func (a *Assignment) IsEqual(other *Assignment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID { return a.id }

// JoNo returns the work-order group number the assignment draws from.
func (a *Assignment) JoNo() int { return a.joNo }

// ItemNo returns the item number of the assigned units.
func (a *Assignment) ItemNo() int { return a.itemNo }

// SerialNo returns the serial the units belong to.
func (a *Assignment) SerialNo() string { return a.serialNo }

// MachineCategory returns the selected machine family.
func (a *Assignment) MachineCategory() string { return a.selection.MachineCategory }

// MachineSize returns the selected size class, empty when the category has
// a single machine.
func (a *Assignment) MachineSize() string { return a.selection.MachineSize }

// MachineCode returns the selected machine code.
func (a *Assignment) MachineCode() string { return a.selection.MachineCode }

// WorkerName returns the operator receiving the units.
func (a *Assignment) WorkerName() string { return a.selection.WorkerName }

// QuantityNo returns the number of units assigned.
func (a *Assignment) QuantityNo() int { return a.quantityNo }

// AssigningDate returns the date the units were handed over.
func (a *Assignment) AssigningDate() kernel.Date { return a.assigningDate }

// Status returns the assignment's quality-check status.
func (a *Assignment) Status() Status { return a.status }

// CountsAgainstQuantity reports whether the assignment's units are held
// against the work order's quantity. Rejected units return to the pool.
func (a *Assignment) CountsAgainstQuantity() bool {
	return a.status != Rejected
}

// MarkReadyForQC moves the assignment from Pending to ReadyForQC.
func (a *Assignment) MarkReadyForQC() error {
	status, err := a.status.MarkReadyForQC()
	if err != nil {
		return err
	}
	a.status = status
	return nil
}

// Accept moves the assignment from ReadyForQC to Accepted. Accepting an
// already-accepted assignment is a no-op.
func (a *Assignment) Accept() error {
	status, err := a.status.Accept()
	if err != nil {
		return err
	}
	a.status = status
	return nil
}

// Reject moves the assignment from ReadyForQC to Rejected, returning its
// quantity to the allocatable pool.
func (a *Assignment) Reject() error {
	status, err := a.status.Reject()
	if err != nil {
		return err
	}
	a.status = status
	return nil
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setKey(joNo, itemNo int, serialNo string) error {
	var problems []error

	if joNo <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("jo_no",
			fmt.Errorf("%d is not a positive integer", joNo)))
	}
	if itemNo < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("item_no",
			fmt.Errorf("%d is negative", itemNo)))
	}
	if serialNo == "" {
		problems = append(problems, errs.NewValueIsRequiredError("serial_no"))
	}

	if err := errors.Join(problems...); err != nil {
		return err
	}

	a.joNo = joNo
	a.itemNo = itemNo
	a.serialNo = serialNo
	return nil
}

func (a *Assignment) setSelection(selection Selection) error {
	var problems []error

	if selection.MachineCategory == "" {
		problems = append(problems, errs.NewValueIsRequiredError("machine_category"))
	}
	if selection.WorkerName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("worker_name"))
	}
	if selection.MachineCode != "" && selection.MachineSize == "" {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("machine_code",
			fmt.Errorf("%q requires a machine size", selection.MachineCode)))
	}

	if err := errors.Join(problems...); err != nil {
		return err
	}

	a.selection = selection
	return nil
}

func (a *Assignment) setQuantityNo(quantityNo int) error {
	if quantityNo <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity_no",
			fmt.Errorf("%d is not greater than 0", quantityNo))
	}
	a.quantityNo = quantityNo
	return nil
}

func (a *Assignment) setAssigningDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("assigning_date", err)
	}
	a.assigningDate = date
	return nil
}
