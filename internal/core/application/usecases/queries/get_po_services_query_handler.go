package queries

import (
	"context"
	"time"

	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/core/domain/model/poservice"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPOServicesQueryHandler retrieves purchase-order service records from
// the database.
type GetPOServicesQueryHandler struct {
	db *gorm.DB
}

// NewGetPOServicesQueryHandler creates a handler for PO service queries.
func NewGetPOServicesQueryHandler(db *gorm.DB) GetPOServicesQueryHandler {
	return GetPOServicesQueryHandler{db: db}
}

// Handle executes the query, sorted by PO number.
func (h GetPOServicesQueryHandler) Handle(
	ctx context.Context,
	query GetPOServicesQuery,
) ([]GetPOServicesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			id,
			po_no,
			po_date,
			pn_no,
			description,
			po_qnty,
			job_no,
			jo_category
		FROM po_services
		WHERE 1=1
	`
	args := make([]any, 0, 1)

	if query.JoCategory() != poservice.UnknownCategory {
		sqlText += " AND jo_category = ?"
		args = append(args, query.JoCategory().String())
	}
	sqlText += " ORDER BY po_no"

	records := make([]GetPOServicesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPOServicesQueryResponse
		var id uuid.UUID
		var poDate time.Time

		err = rows.Scan(
			&id,
			&resp.PoNo,
			&poDate,
			&resp.PnNo,
			&resp.Description,
			&resp.PoQnty,
			&resp.JobNo,
			&resp.JoCategory,
		)
		if err != nil {
			return nil, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = recordID
		resp.PoDate = poDate.Format(kernel.DateLayout)

		records = append(records, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
