package workorderrepo

import (
	"context"
	"errors"

	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/core/domain/model/workorder"
	"jobshop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWorkOrderRepository implements WorkOrderRepository using GORM.
type GormWorkOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWorkOrderRepository creates a new GORM work-order repository.
func NewGormWorkOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new work order to the database.
func (r *GormWorkOrderRepository) Add(ctx context.Context, aggregate *workorder.WorkOrder) error {
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

// Update saves an existing work order to the database.
func (r *GormWorkOrderRepository) Update(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&WorkOrderDTO{}).Where("id = ?", dto.ID).
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

// Get retrieves a work order by ID.
func (r *GormWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("work_order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByKey retrieves a work order by its (JO number, item, serial) key.
func (r *GormWorkOrderRepository) GetByKey(
	ctx context.Context,
	joNumber, itemNo int,
	serialNo string,
) (*workorder.WorkOrder, error) {
	var dto WorkOrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "jo_number = ? AND item_no = ? AND serial_no = ?", joNumber, itemNo, serialNo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("jo_number", joNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByKeyForUpdate retrieves a work order by key holding a row lock until
// the surrounding transaction ends. The assignment engine takes this lock
// before reading the ledger, which serializes concurrent assignments to the
// same item.
func (r *GormWorkOrderRepository) GetByKeyForUpdate(
	ctx context.Context,
	joNumber, itemNo int,
	serialNo string,
) (*workorder.WorkOrder, error) {
	var dto WorkOrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&dto, "jo_number = ? AND item_no = ? AND serial_no = ?", joNumber, itemNo, serialNo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("jo_number", joNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByJobNo retrieves every work order carrying the given job number.
func (r *GormWorkOrderRepository) GetAllByJobNo(ctx context.Context, jobNo int) ([]*workorder.WorkOrder, error) {
	var dtos []WorkOrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "job_no = ?", jobNo).Error; err != nil {
		return nil, err
	}

	orders := make([]*workorder.WorkOrder, 0, len(dtos))
	for _, dto := range dtos {
		wo, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, wo)
	}

	return orders, nil
}

// Delete removes a work order from the database.
func (r *GormWorkOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&WorkOrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("work_order", id.String())
	}

	return nil
}
