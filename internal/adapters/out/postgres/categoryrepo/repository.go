package categoryrepo

import (
	"context"
	"errors"

	"jobshop/internal/core/domain/model/categoryentry"
	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCategoryEntryRepository implements CategoryEntryRepository using GORM.
type GormCategoryEntryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCategoryEntryRepository creates a new GORM category-entry repository.
func NewGormCategoryEntryRepository(db *gorm.DB, tracker aggregateTracker) *GormCategoryEntryRepository {
	return &GormCategoryEntryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new category entry to the database.
func (r *GormCategoryEntryRepository) Add(ctx context.Context, aggregate *categoryentry.CategoryEntry) error {
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

// Update saves an existing category entry to the database.
func (r *GormCategoryEntryRepository) Update(ctx context.Context, aggregate *categoryentry.CategoryEntry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CategoryEntryDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a category entry by ID.
func (r *GormCategoryEntryRepository) Get(ctx context.Context, id kernel.UUID) (*categoryentry.CategoryEntry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CategoryEntryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("category_entry", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByJobNo retrieves the category entries carrying the given job number.
func (r *GormCategoryEntryRepository) GetAllByJobNo(
	ctx context.Context,
	jobNo int,
) ([]*categoryentry.CategoryEntry, error) {
	var dtos []CategoryEntryDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "job_no = ?", jobNo).Error; err != nil {
		return nil, err
	}

	entries := make([]*categoryentry.CategoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Delete removes a category entry from the database.
func (r *GormCategoryEntryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CategoryEntryDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("category_entry", id.String())
	}

	return nil
}
