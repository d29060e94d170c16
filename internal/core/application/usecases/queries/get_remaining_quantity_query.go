package queries

import (
	"errors"
	"fmt"

	"jobshop/internal/pkg/errs"
	"jobshop/internal/pkg/guard"
)

var ErrGetRemainingQuantityQueryIsNotConstructed = errors.New(
	"GetRemainingQuantityQuery must be created via NewGetRemainingQuantityQuery constructor",
)

// GetRemainingQuantityQuery reports how many pieces of one work-order item
// are still unassigned. Rejected assignments do not count against the
// quantity, so their pieces show up as remaining again.
type GetRemainingQuantityQuery struct {
	joNo     int
	itemNo   int
	serialNo string

	guard guard.ConstructorGuard
}

// NewGetRemainingQuantityQuery creates a query for one work-order item,
// addressed by its (JO number, item number, serial) key.
func NewGetRemainingQuantityQuery(joNo, itemNo int, serialNo string) (GetRemainingQuantityQuery, error) {
	if joNo <= 0 {
		return GetRemainingQuantityQuery{}, errs.NewValueIsInvalidErrorWithCause("jo_no",
			fmt.Errorf("%d is not a positive integer", joNo))
	}
	if serialNo == "" {
		return GetRemainingQuantityQuery{}, errs.NewValueIsRequiredError("serial_no")
	}

	return GetRemainingQuantityQuery{
		joNo:     joNo,
		itemNo:   itemNo,
		serialNo: serialNo,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRemainingQuantityQuery) Validate() error {
	return q.guard.Validate(ErrGetRemainingQuantityQueryIsNotConstructed)
}

// JoNo returns the JO number of the item.
func (q GetRemainingQuantityQuery) JoNo() int {
	return q.joNo
}

// ItemNo returns the item number within the JO.
func (q GetRemainingQuantityQuery) ItemNo() int {
	return q.itemNo
}

// SerialNo returns the serial within the item.
func (q GetRemainingQuantityQuery) SerialNo() string {
	return q.serialNo
}

// GetRemainingQuantityQueryResponse reports the quantity arithmetic for one
// item: ordered total, pieces held by live assignments, and what is left.
type GetRemainingQuantityQueryResponse struct {
	JoNo      int
	ItemNo    int
	SerialNo  string
	Qty       int
	Assigned  int
	Remaining int
}
