package ports

import (
	"context"

	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/core/domain/model/workorder"
)

// WorkOrderRepository defines the persistence contract for work-order
// aggregates.
type WorkOrderRepository interface {
	// Add persists a new work order to storage.
	// The work order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Update persists changes to an existing work order.
	Update(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Get retrieves a work order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error)

	// GetByKey retrieves the work order matching the assignment ledger key
	// (jo_number, item_no, serial_no).
	GetByKey(ctx context.Context, joNumber, itemNo int, serialNo string) (*workorder.WorkOrder, error)

	// GetByKeyForUpdate retrieves the work order matching the ledger key
	// while holding a row lock until the surrounding transaction ends.
	// Used to serialize concurrent quantity reservations on one key.
	GetByKeyForUpdate(ctx context.Context, joNumber, itemNo int, serialNo string) (*workorder.WorkOrder, error)

	// GetAllByJobNo retrieves every work order carrying the given customer
	// job number. Used by urgency escalation, which updates them all.
	GetAllByJobNo(ctx context.Context, jobNo int) ([]*workorder.WorkOrder, error)

	// Delete removes a work order from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
