// Package assignmentrepo provides data transfer objects and mapping
// functions for assignment persistence.
package assignmentrepo

import (
	"time"

	"jobshop/internal/core/domain/model/assignment"
	"jobshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting assignment
// aggregates. The (jo_no, item_no, serial_no) composite index serves the
// ledger reads of the quantity allocator; status is stored as its wire
// string so the rows read naturally in SQL.
type AssignmentDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	JoNo            int       `gorm:"index:idx_assignments_key"`
	ItemNo          int       `gorm:"index:idx_assignments_key"`
	SerialNo        string    `gorm:"index:idx_assignments_key"`
	MachineCategory string
	MachineSize     string
	MachineCode     string
	WorkerName      string
	QuantityNo      int
	AssigningDate   time.Time
	Status          string `gorm:"index"`
}

// TableName specifies the database table name for assignments.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment domain aggregate to its database
// representation.
func fromDomain(aggregate *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:              aggregate.ID().Bytes(),
		JoNo:            aggregate.JoNo(),
		ItemNo:          aggregate.ItemNo(),
		SerialNo:        aggregate.SerialNo(),
		MachineCategory: aggregate.MachineCategory(),
		MachineSize:     aggregate.MachineSize(),
		MachineCode:     aggregate.MachineCode(),
		WorkerName:      aggregate.WorkerName(),
		QuantityNo:      aggregate.QuantityNo(),
		AssigningDate:   aggregate.AssigningDate().Time(),
		Status:          aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to an assignment domain aggregate.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := assignment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(
		id, dto.JoNo, dto.ItemNo, dto.SerialNo,
		assignment.Selection{
			MachineCategory: dto.MachineCategory,
			MachineSize:     dto.MachineSize,
			MachineCode:     dto.MachineCode,
			WorkerName:      dto.WorkerName,
		},
		dto.QuantityNo,
		kernel.NewDate(dto.AssigningDate),
		status,
	)
}
