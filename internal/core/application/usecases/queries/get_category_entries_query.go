package queries

import (
	"errors"

	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/pkg/guard"
)

var ErrGetCategoryEntriesQueryIsNotConstructed = errors.New(
	"GetCategoryEntriesQuery must be created via NewGetCategoryEntriesQuery constructor",
)

// GetCategoryEntriesQuery retrieves category entries. A zero job number
// returns all of them; urgentOnly narrows to escalated entries.
type GetCategoryEntriesQuery struct {
	jobNo      int
	urgentOnly bool

	guard guard.ConstructorGuard
}

// NewGetCategoryEntriesQuery creates a query to retrieve category entries.
func NewGetCategoryEntriesQuery(jobNo int, urgentOnly bool) GetCategoryEntriesQuery {
	return GetCategoryEntriesQuery{
		jobNo:      jobNo,
		urgentOnly: urgentOnly,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetCategoryEntriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCategoryEntriesQueryIsNotConstructed)
}

// JobNo returns the job-number filter, zero when unset.
func (q GetCategoryEntriesQuery) JobNo() int {
	return q.jobNo
}

// UrgentOnly reports whether only escalated entries are requested.
func (q GetCategoryEntriesQuery) UrgentOnly() bool {
	return q.urgentOnly
}

// GetCategoryEntriesQueryResponse represents one category entry row in the
// read model.
type GetCategoryEntriesQueryResponse struct {
	ID                  kernel.UUID
	JobNo               int
	Description         string
	MaterialType        string
	Bar                 string
	Tempp               string
	Qty                 int
	ClientName          string
	DrawingReceivedDate string
	Remark              string
	Approved            bool
	Urgent              bool
	UrgentDueDate       string
}
