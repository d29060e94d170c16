// Package workorderrepo provides data transfer objects and mapping functions
// for work-order persistence. Implements the repository pattern for the
// work-order aggregate, converting between domain entities and database rows.
package workorderrepo

import (
	"time"

	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/core/domain/model/workorder"

	"github.com/google/uuid"
)

// WorkOrderDTO represents the database structure for persisting work-order
// aggregates. The (jo_number, item_no, serial_no) composite index backs the
// quantity-ledger lookups of the assignment engine.
type WorkOrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobType         string    `gorm:"index"`
	SubType         string
	JobNo           int `gorm:"index"`
	JoNumber        int `gorm:"index:idx_work_orders_key"`
	JobCategory     string
	JobOrderDate    time.Time
	MtlRcdDate      time.Time
	MtlChallanNo    int
	ItemNo          int    `gorm:"index:idx_work_orders_key"`
	SerialNo        string `gorm:"index:idx_work_orders_key"`
	Qty             int
	ItemDescription string
	MOC             string `gorm:"column:moc"`
	BinLocation     string
	MaterialRemark  string
	Remark          string
	Approved        bool
	Urgent          bool `gorm:"index"`
	UrgentDueDate   *time.Time
}

// TableName specifies the database table name for work-order entities.
func (WorkOrderDTO) TableName() string {
	return "work_orders"
}

// fromDomain converts a work-order domain aggregate to its database
// representation.
func fromDomain(aggregate *workorder.WorkOrder) WorkOrderDTO {
	var urgentDueDate *time.Time
	if due := aggregate.UrgentDueDate(); due != nil {
		t := due.Time()
		urgentDueDate = &t
	}

	return WorkOrderDTO{
		ID:              aggregate.ID().Bytes(),
		JobType:         aggregate.JobType().String(),
		SubType:         aggregate.SubType().String(),
		JobNo:           aggregate.JobNo(),
		JoNumber:        aggregate.JoNumber(),
		JobCategory:     aggregate.JobCategory(),
		JobOrderDate:    aggregate.JobOrderDate().Time(),
		MtlRcdDate:      aggregate.MtlRcdDate().Time(),
		MtlChallanNo:    aggregate.MtlChallanNo(),
		ItemNo:          aggregate.ItemNo(),
		SerialNo:        aggregate.SerialNo(),
		Qty:             aggregate.Qty(),
		ItemDescription: aggregate.ItemDescription(),
		MOC:             aggregate.MOC(),
		BinLocation:     aggregate.BinLocation(),
		MaterialRemark:  aggregate.MaterialRemark(),
		Remark:          aggregate.Remark(),
		Approved:        aggregate.IsApproved(),
		Urgent:          aggregate.Urgent(),
		UrgentDueDate:   urgentDueDate,
	}
}

// toDomain converts a database DTO to a work-order domain aggregate using
// RestoreWorkOrder, preserving approval and urgency state.
func toDomain(dto WorkOrderDTO) (*workorder.WorkOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	jobType, err := workorder.JobTypeFromString(dto.JobType)
	if err != nil {
		return nil, err
	}

	subType, err := workorder.SubTypeFromString(dto.SubType)
	if err != nil {
		return nil, err
	}

	var urgentDueDate *kernel.Date
	if dto.UrgentDueDate != nil {
		due := kernel.NewDate(*dto.UrgentDueDate)
		urgentDueDate = &due
	}

	return workorder.RestoreWorkOrder(
		id, jobType, subType, dto.JobNo, dto.JoNumber, dto.JobCategory,
		workorder.Header{
			JoNumber:     dto.JoNumber,
			JobOrderDate: kernel.NewDate(dto.JobOrderDate),
			MtlRcdDate:   kernel.NewDate(dto.MtlRcdDate),
			MtlChallanNo: dto.MtlChallanNo,
		},
		workorder.ItemDetails{
			ItemNo:          dto.ItemNo,
			SerialNo:        dto.SerialNo,
			Qty:             dto.Qty,
			ItemDescription: dto.ItemDescription,
			MOC:             dto.MOC,
			BinLocation:     dto.BinLocation,
			MaterialRemark:  dto.MaterialRemark,
			Remark:          dto.Remark,
		},
		dto.Approved, dto.Urgent, urgentDueDate,
	)
}
