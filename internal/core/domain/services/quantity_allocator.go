package services

import (
	"errors"
	"fmt"

	"jobshop/internal/core/domain/model/assignment"
	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/core/domain/model/workorder"
)

var (
	// ErrOverAllocation is returned when a reservation asks for more units
	// than remain unassigned on the work order.
	ErrOverAllocation = errors.New("requested quantity exceeds remaining quantity")

	// ErrNotApproved is returned when units are reserved against a work
	// order that has not passed the approval gate.
	ErrNotApproved = errors.New("work order is not approved")

	// ErrNoQuantity is returned when the work order carries no allocatable
	// quantity at all.
	ErrNoQuantity = errors.New("work order has no quantity to assign")
)

// QuantityAllocator is a domain service that guards the work order's
// quantity pool. Remaining quantity is always recomputed from the
// assignment ledger; no component keeps a separate counter, so the ledger
// stays the single source of truth under concurrent writers.
//
// Business rules:
//   - remaining = WorkOrder.qty − Σ quantity_no of non-rejected assignments
//     for the same (jo_no, item_no, serial_no) key
//   - Reservation requires an approved work order
//   - Reservation never exceeds the remaining quantity
//
// Serialization of concurrent reservations against one key is the caller's
// concern; handlers take a row lock on the work order before invoking
// Reserve so two racing reservations observe each other's ledger entries.
type QuantityAllocator struct{}

// NewQuantityAllocator creates a new QuantityAllocator instance.
func NewQuantityAllocator() QuantityAllocator {
	return QuantityAllocator{}
}

// Remaining computes how many units of the work order are still assignable
// given the ledger entries for its key. Rejected assignments do not count:
// their units went back to the pool for rework.
func (qa QuantityAllocator) Remaining(wo *workorder.WorkOrder, ledger []*assignment.Assignment) (int, error) {
	if err := wo.Validate(); err != nil {
		return 0, err
	}

	assigned := 0
	for i, a := range ledger {
		if err := a.Validate(); err != nil {
			return 0, fmt.Errorf("ledger entry %d: %w", i+1, err)
		}
		if a.CountsAgainstQuantity() {
			assigned += a.QuantityNo()
		}
	}

	remaining := wo.Qty() - assigned
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// Reserve checks a reservation of quantityNo units against the work order
// and its ledger, and on success returns the new pending assignment. The
// assignment is not persisted here; the caller appends it to the ledger in
// the same transaction that held the work-order lock.
//
// Returns:
//   - ErrNotApproved if the work order has not been approved
//   - ErrNoQuantity if the work order has no quantity or quantityNo
//     is not positive
//   - ErrOverAllocation if quantityNo exceeds the remaining quantity
func (qa QuantityAllocator) Reserve(
	wo *workorder.WorkOrder,
	ledger []*assignment.Assignment,
	assignmentID kernel.UUID,
	selection assignment.Selection,
	quantityNo int,
	assigningDate kernel.Date,
) (*assignment.Assignment, error) {
	if err := wo.Validate(); err != nil {
		return nil, err
	}

	if !wo.IsApproved() {
		return nil, ErrNotApproved
	}
	if wo.Qty() <= 0 || quantityNo <= 0 {
		return nil, ErrNoQuantity
	}

	remaining, err := qa.Remaining(wo, ledger)
	if err != nil {
		return nil, err
	}
	if quantityNo > remaining {
		return nil, fmt.Errorf("%w: requested %d, remaining %d", ErrOverAllocation, quantityNo, remaining)
	}

	return assignment.NewAssignment(
		assignmentID,
		wo.JoNumber(),
		wo.ItemNo(),
		wo.SerialNo(),
		selection,
		quantityNo,
		assigningDate,
	)
}
