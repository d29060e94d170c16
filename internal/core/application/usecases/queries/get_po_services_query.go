package queries

import (
	"errors"

	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/core/domain/model/poservice"
	"jobshop/internal/pkg/guard"
)

var ErrGetPOServicesQueryIsNotConstructed = errors.New(
	"GetPOServicesQuery must be created via NewGetPOServicesQuery constructor",
)

// GetPOServicesQuery retrieves purchase-order service records, optionally
// narrowed to one JO category.
type GetPOServicesQuery struct {
	joCategory poservice.Category

	guard guard.ConstructorGuard
}

// NewGetPOServicesQuery creates a query to retrieve PO service records.
// Pass poservice.UnknownCategory to skip the category filter.
func NewGetPOServicesQuery(joCategory poservice.Category) (GetPOServicesQuery, error) {
	if joCategory != poservice.UnknownCategory {
		if err := joCategory.Validate(); err != nil {
			return GetPOServicesQuery{}, err
		}
	}

	return GetPOServicesQuery{
		joCategory: joCategory,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPOServicesQuery) Validate() error {
	return q.guard.Validate(ErrGetPOServicesQueryIsNotConstructed)
}

// JoCategory returns the category filter, UnknownCategory when unset.
func (q GetPOServicesQuery) JoCategory() poservice.Category {
	return q.joCategory
}

// GetPOServicesQueryResponse represents one PO service row in the read
// model.
type GetPOServicesQueryResponse struct {
	ID          kernel.UUID
	PoNo        string
	PoDate      string
	PnNo        string
	Description string
	PoQnty      int
	JobNo       int
	JoCategory  string
}
