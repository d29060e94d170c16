package poservicerepo

import (
	"context"
	"errors"

	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/core/domain/model/poservice"
	"jobshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPOServiceRepository implements POServiceRepository using GORM.
type GormPOServiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPOServiceRepository creates a new GORM PO service repository.
func NewGormPOServiceRepository(db *gorm.DB, tracker aggregateTracker) *GormPOServiceRepository {
	return &GormPOServiceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new PO service record to the database.
func (r *GormPOServiceRepository) Add(ctx context.Context, aggregate *poservice.POService) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a PO service record by ID.
func (r *GormPOServiceRepository) Get(ctx context.Context, id kernel.UUID) (*poservice.POService, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto POServiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("po_service", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a PO service record from the database.
func (r *GormPOServiceRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&POServiceDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("po_service", id.String())
	}

	return nil
}
