package ports

import (
	"context"

	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/core/domain/model/poservice"
)

// POServiceRepository defines the persistence contract for purchase-order
// service records.
type POServiceRepository interface {
	// Add persists a new PO service record to storage.
	Add(ctx context.Context, aggregate *poservice.POService) error

	// Get retrieves a PO service record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*poservice.POService, error)

	// Delete removes a PO service record from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
