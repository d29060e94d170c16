package ports

import (
	"context"

	"jobshop/internal/core/domain/model/categoryentry"
	"jobshop/internal/core/domain/model/kernel"
)

// CategoryEntryRepository defines the persistence contract for
// category-entry aggregates.
type CategoryEntryRepository interface {
	// Add persists a new category entry to storage.
	Add(ctx context.Context, aggregate *categoryentry.CategoryEntry) error

	// Update persists changes to an existing category entry.
	Update(ctx context.Context, aggregate *categoryentry.CategoryEntry) error

	// Get retrieves a category entry by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*categoryentry.CategoryEntry, error)

	// GetAllByJobNo retrieves the category entries carrying the given job
	// number. Used by urgency escalation alongside the work orders.
	GetAllByJobNo(ctx context.Context, jobNo int) ([]*categoryentry.CategoryEntry, error)

	// Delete removes a category entry from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
