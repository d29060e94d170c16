package queries

import (
	"context"
	"database/sql"
	"time"

	"jobshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCategoryEntriesQueryHandler retrieves category entries from the
// database for the category tracking screen.
type GetCategoryEntriesQueryHandler struct {
	db *gorm.DB
}

// NewGetCategoryEntriesQueryHandler creates a handler for category-entry
// queries.
func NewGetCategoryEntriesQueryHandler(db *gorm.DB) GetCategoryEntriesQueryHandler {
	return GetCategoryEntriesQueryHandler{db: db}
}

// Handle executes the query, sorted by job number.
func (h GetCategoryEntriesQueryHandler) Handle(
	ctx context.Context,
	query GetCategoryEntriesQuery,
) ([]GetCategoryEntriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			id,
			job_no,
			description,
			material_type,
			bar,
			tempp,
			qty,
			client_name,
			drawing_recieved_date,
			remark,
			approved,
			urgent,
			urgent_due_date
		FROM category_entries
		WHERE 1=1
	`
	args := make([]any, 0, 1)

	if query.JobNo() != 0 {
		sqlText += " AND job_no = ?"
		args = append(args, query.JobNo())
	}
	if query.UrgentOnly() {
		sqlText += " AND urgent"
	}
	sqlText += " ORDER BY job_no"

	entries := make([]GetCategoryEntriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCategoryEntriesQueryResponse
		var id uuid.UUID
		var drawingDate time.Time
		var urgentDueDate sql.NullTime

		err = rows.Scan(
			&id,
			&resp.JobNo,
			&resp.Description,
			&resp.MaterialType,
			&resp.Bar,
			&resp.Tempp,
			&resp.Qty,
			&resp.ClientName,
			&drawingDate,
			&resp.Remark,
			&resp.Approved,
			&resp.Urgent,
			&urgentDueDate,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = entryID
		resp.DrawingReceivedDate = drawingDate.Format(kernel.DateLayout)
		if urgentDueDate.Valid {
			resp.UrgentDueDate = urgentDueDate.Time.Format(kernel.DateLayout)
		}

		entries = append(entries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
