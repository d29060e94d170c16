package ports

import (
	"context"

	"jobshop/internal/core/domain/model/assignment"
	"jobshop/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for the append-only
// assignment ledger. Historical records are never rewritten; Update exists
// solely to persist quality-check status transitions.
type AssignmentRepository interface {
	// Add appends a new assignment to the ledger.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Update persists a status transition on an existing assignment.
	Update(ctx context.Context, aggregate *assignment.Assignment) error

	// Get retrieves an assignment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	// GetAllByKey retrieves the ledger entries for one
	// (jo_number, item_no, serial_no) key, the unit the allocator
	// computes remaining quantity over.
	GetAllByKey(ctx context.Context, joNo, itemNo int, serialNo string) ([]*assignment.Assignment, error)

	// GetAllByJoNo retrieves every ledger entry for a work-order group.
	GetAllByJoNo(ctx context.Context, joNo int) ([]*assignment.Assignment, error)
}
