package queries

import (
	"context"
	"database/sql"
	"errors"

	"jobshop/internal/core/domain/model/assignment"
	"jobshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRemainingQuantityQueryHandler computes the unassigned quantity for one
// work-order item straight in SQL. The same arithmetic the allocator runs
// on aggregates, but without loading them, so the assignment form can poll
// it cheaply.
type GetRemainingQuantityQueryHandler struct {
	db *gorm.DB
}

// NewGetRemainingQuantityQueryHandler creates a handler for remaining
// quantity lookups.
func NewGetRemainingQuantityQueryHandler(db *gorm.DB) GetRemainingQuantityQueryHandler {
	return GetRemainingQuantityQueryHandler{db: db}
}

// Handle executes the lookup. Returns a not-found error when no work order
// carries the key. Rejected assignments are excluded from the assigned sum.
func (h GetRemainingQuantityQueryHandler) Handle(
	ctx context.Context,
	query GetRemainingQuantityQuery,
) (GetRemainingQuantityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRemainingQuantityQueryResponse{}, err
	}

	resp := GetRemainingQuantityQueryResponse{
		JoNo:     query.JoNo(),
		ItemNo:   query.ItemNo(),
		SerialNo: query.SerialNo(),
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			wo.qty,
			COALESCE(SUM(a.quantity_no) FILTER (WHERE a.status != ?), 0) AS assigned
		FROM work_orders wo
		LEFT JOIN assignments a
			ON a.jo_no = wo.jo_number
			AND a.item_no = wo.item_no
			AND a.serial_no = wo.serial_no
		WHERE wo.jo_number = ? AND wo.item_no = ? AND wo.serial_no = ?
		GROUP BY wo.qty
	`, assignment.Rejected.String(), query.JoNo(), query.ItemNo(), query.SerialNo()).Row()

	if err := row.Scan(&resp.Qty, &resp.Assigned); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetRemainingQuantityQueryResponse{},
				errs.NewObjectNotFoundError("jo_no", query.JoNo())
		}
		return GetRemainingQuantityQueryResponse{}, err
	}

	resp.Remaining = resp.Qty - resp.Assigned
	if resp.Remaining < 0 {
		resp.Remaining = 0
	}

	return resp, nil
}
