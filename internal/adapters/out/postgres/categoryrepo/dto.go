// Package categoryrepo provides data transfer objects and mapping functions
// for category-entry persistence.
package categoryrepo

import (
	"time"

	"jobshop/internal/core/domain/model/categoryentry"
	"jobshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CategoryEntryDTO represents the database structure for persisting
// category-entry aggregates. The drawing_recieved_date column keeps the
// spelling the shop's paper forms and existing exports use.
type CategoryEntryDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobNo               int       `gorm:"index"`
	Description         string
	MaterialType        string
	Bar                 string
	Tempp               string
	Qty                 int
	ClientName          string
	DrawingReceivedDate time.Time `gorm:"column:drawing_recieved_date"`
	Remark              string
	Approved            bool
	Urgent              bool `gorm:"index"`
	UrgentDueDate       *time.Time
}

// TableName specifies the database table name for category entries.
func (CategoryEntryDTO) TableName() string {
	return "category_entries"
}

// fromDomain converts a category-entry domain aggregate to its database
// representation.
func fromDomain(aggregate *categoryentry.CategoryEntry) CategoryEntryDTO {
	var urgentDueDate *time.Time
	if due := aggregate.UrgentDueDate(); due != nil {
		t := due.Time()
		urgentDueDate = &t
	}

	return CategoryEntryDTO{
		ID:                  aggregate.ID().Bytes(),
		JobNo:               aggregate.JobNo(),
		Description:         aggregate.Description(),
		MaterialType:        aggregate.MaterialType(),
		Bar:                 aggregate.Bar(),
		Tempp:               aggregate.Tempp(),
		Qty:                 aggregate.Qty(),
		ClientName:          aggregate.ClientName(),
		DrawingReceivedDate: aggregate.DrawingReceivedDate().Time(),
		Remark:              aggregate.Remark(),
		Approved:            aggregate.IsApproved(),
		Urgent:              aggregate.Urgent(),
		UrgentDueDate:       urgentDueDate,
	}
}

// toDomain converts a database DTO to a category-entry domain aggregate.
func toDomain(dto CategoryEntryDTO) (*categoryentry.CategoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var urgentDueDate *kernel.Date
	if dto.UrgentDueDate != nil {
		due := kernel.NewDate(*dto.UrgentDueDate)
		urgentDueDate = &due
	}

	return categoryentry.RestoreCategoryEntry(
		id, dto.JobNo,
		categoryentry.Details{
			Description:         dto.Description,
			MaterialType:        dto.MaterialType,
			Bar:                 dto.Bar,
			Tempp:               dto.Tempp,
			Qty:                 dto.Qty,
			ClientName:          dto.ClientName,
			DrawingReceivedDate: kernel.NewDate(dto.DrawingReceivedDate),
			Remark:              dto.Remark,
		},
		dto.Approved, dto.Urgent, urgentDueDate,
	)
}
