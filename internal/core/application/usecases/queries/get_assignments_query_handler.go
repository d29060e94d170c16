package queries

import (
	"context"
	"time"

	"jobshop/internal/core/domain/model/assignment"
	"jobshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAssignmentsQueryHandler retrieves assignment rows from the database.
// Serves the worker-assignment table and the QC screen.
type GetAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignmentsQueryHandler creates a handler for assignment queries.
func NewGetAssignmentsQueryHandler(db *gorm.DB) GetAssignmentsQueryHandler {
	return GetAssignmentsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by assigning date, oldest
// first, so the QC queue drains in work order.
func (h GetAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentsQuery,
) ([]GetAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			id,
			jo_no,
			item_no,
			serial_no,
			machine_category,
			machine_size,
			machine_code,
			worker_name,
			quantity_no,
			assigning_date,
			status
		FROM assignments
		WHERE 1=1
	`
	args := make([]any, 0, 3)

	if query.JoNo() != 0 {
		sqlText += " AND jo_no = ?"
		args = append(args, query.JoNo())
	}
	if query.Status() != assignment.UnknownStatus {
		sqlText += " AND status = ?"
		args = append(args, query.Status().String())
	}
	if query.AssignTo() != "" {
		sqlText += " AND worker_name = ?"
		args = append(args, query.AssignTo())
	}
	sqlText += " ORDER BY assigning_date, jo_no, item_no"

	entries := make([]GetAssignmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAssignmentsQueryResponse
		var id uuid.UUID
		var assigningDate time.Time

		err = rows.Scan(
			&id,
			&resp.JoNo,
			&resp.ItemNo,
			&resp.SerialNo,
			&resp.MachineCategory,
			&resp.MachineSize,
			&resp.MachineCode,
			&resp.WorkerName,
			&resp.QuantityNo,
			&assigningDate,
			&resp.Status,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = entryID
		resp.AssigningDate = assigningDate.Format(kernel.DateLayout)

		entries = append(entries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
