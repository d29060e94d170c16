// Package poservicerepo provides data transfer objects and mapping
// functions for purchase-order service persistence.
package poservicerepo

import (
	"time"

	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/core/domain/model/poservice"

	"github.com/google/uuid"
)

// POServiceDTO represents the database structure for persisting PO service
// records.
type POServiceDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PoNo        string    `gorm:"index"`
	PoDate      time.Time
	PnNo        string
	Description string
	PoQnty      int
	JobNo       int    `gorm:"index"`
	JoCategory  string `gorm:"index"`
}

// TableName specifies the database table name for PO service records.
func (POServiceDTO) TableName() string {
	return "po_services"
}

// fromDomain converts a PO service domain aggregate to its database
// representation.
func fromDomain(aggregate *poservice.POService) POServiceDTO {
	return POServiceDTO{
		ID:          aggregate.ID().Bytes(),
		PoNo:        aggregate.PoNo(),
		PoDate:      aggregate.PoDate().Time(),
		PnNo:        aggregate.PnNo(),
		Description: aggregate.Description(),
		PoQnty:      aggregate.PoQnty(),
		JobNo:       aggregate.JobNo(),
		JoCategory:  aggregate.JoCategory().String(),
	}
}

// toDomain converts a database DTO to a PO service domain aggregate.
func toDomain(dto POServiceDTO) (*poservice.POService, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	category, err := poservice.CategoryFromString(dto.JoCategory)
	if err != nil {
		return nil, err
	}

	return poservice.RestorePOService(
		id, dto.PoNo, kernel.NewDate(dto.PoDate), dto.PnNo,
		dto.Description, dto.PoQnty, dto.JobNo, category,
	)
}
