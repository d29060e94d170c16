package queries

import (
	"context"
	"database/sql"
	"time"

	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/core/domain/model/workorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWorkOrdersQueryHandler retrieves work orders from the database for the
// tracking screens. Bypasses the aggregate layer and reads the rows
// directly, which keeps the list cheap even for large jobs.
type GetWorkOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkOrdersQueryHandler creates a handler for work-order queries.
// Requires a GORM database connection for query execution.
func NewGetWorkOrdersQueryHandler(db *gorm.DB) GetWorkOrdersQueryHandler {
	return GetWorkOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by JO number, then item
// number and serial, matching the order of the physical job-order sheets.
func (h GetWorkOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetWorkOrdersQuery,
) ([]GetWorkOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			id,
			job_type,
			sub_type,
			job_no,
			jo_number,
			job_category,
			job_order_date,
			mtl_rcd_date,
			mtl_challan_no,
			item_no,
			serial_no,
			qty,
			item_description,
			moc,
			bin_location,
			material_remark,
			remark,
			approved,
			urgent,
			urgent_due_date
		FROM work_orders
		WHERE 1=1
	`
	args := make([]any, 0, 3)

	if query.JobType() != workorder.UnknownJobType {
		sqlText += " AND job_type = ?"
		args = append(args, query.JobType().String())
	}
	if query.JobNo() != 0 {
		sqlText += " AND job_no = ?"
		args = append(args, query.JobNo())
	}
	if query.UrgentOnly() {
		sqlText += " AND urgent"
	}
	sqlText += " ORDER BY jo_number, item_no, serial_no"

	orders := make([]GetWorkOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetWorkOrdersQueryResponse
		var id uuid.UUID
		var jobOrderDate, mtlRcdDate time.Time
		var urgentDueDate sql.NullTime

		err = rows.Scan(
			&id,
			&resp.JobType,
			&resp.SubType,
			&resp.JobNo,
			&resp.JoNumber,
			&resp.JobCategory,
			&jobOrderDate,
			&mtlRcdDate,
			&resp.MtlChallanNo,
			&resp.ItemNo,
			&resp.SerialNo,
			&resp.Qty,
			&resp.ItemDescription,
			&resp.MOC,
			&resp.BinLocation,
			&resp.MaterialRemark,
			&resp.Remark,
			&resp.Approved,
			&resp.Urgent,
			&urgentDueDate,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.JobOrderDate = jobOrderDate.Format(kernel.DateLayout)
		resp.MtlRcdDate = mtlRcdDate.Format(kernel.DateLayout)
		if urgentDueDate.Valid {
			resp.UrgentDueDate = urgentDueDate.Time.Format(kernel.DateLayout)
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
