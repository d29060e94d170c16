// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/core/domain/model/workorder"
	"jobshop/internal/pkg/guard"
)

var ErrGetWorkOrdersQueryIsNotConstructed = errors.New(
	"GetWorkOrdersQuery must be created via NewGetWorkOrdersQuery constructor",
)

// GetWorkOrdersQuery retrieves work orders for the tracking screens.
// All filters are optional and combine with AND: a job type narrows to one
// variant, a job number to one customer job, and urgentOnly to escalated
// orders.
//
// Example:
//
//	query, err := NewGetWorkOrdersQuery(workorder.JobService, 500, false)
//	if err != nil {
//	    return fmt.Errorf("invalid filter: %w", err)
//	}
//
//	orders, err := handler.Handle(ctx, query)
type GetWorkOrdersQuery struct {
	jobType    workorder.JobType
	jobNo      int
	urgentOnly bool

	guard guard.ConstructorGuard
}

// NewGetWorkOrdersQuery creates a query to retrieve work orders. Pass
// workorder.UnknownJobType and a zero job number to skip those filters.
func NewGetWorkOrdersQuery(jobType workorder.JobType, jobNo int, urgentOnly bool) (GetWorkOrdersQuery, error) {
	if jobType != workorder.UnknownJobType {
		if err := jobType.Validate(); err != nil {
			return GetWorkOrdersQuery{}, err
		}
	}

	return GetWorkOrdersQuery{
		jobType:    jobType,
		jobNo:      jobNo,
		urgentOnly: urgentOnly,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrdersQueryIsNotConstructed)
}

// JobType returns the job-type filter, UnknownJobType when unset.
func (q GetWorkOrdersQuery) JobType() workorder.JobType {
	return q.jobType
}

// JobNo returns the job-number filter, zero when unset.
func (q GetWorkOrdersQuery) JobNo() int {
	return q.jobNo
}

// UrgentOnly reports whether only escalated orders are requested.
func (q GetWorkOrdersQuery) UrgentOnly() bool {
	return q.urgentOnly
}

// GetWorkOrdersQueryResponse represents one work order row in the read
// model, flattened for the tracking table.
type GetWorkOrdersQueryResponse struct {
	ID              kernel.UUID
	JobType         string
	SubType         string
	JobNo           int
	JoNumber        int
	JobCategory     string
	JobOrderDate    string
	MtlRcdDate      string
	MtlChallanNo    int
	ItemNo          int
	SerialNo        string
	Qty             int
	ItemDescription string
	MOC             string
	BinLocation     string
	MaterialRemark  string
	Remark          string
	Approved        bool
	Urgent          bool
	UrgentDueDate   string
}
