package queries

import (
	"errors"

	"jobshop/internal/core/domain/model/assignment"
	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/pkg/guard"
)

var ErrGetAssignmentsQueryIsNotConstructed = errors.New(
	"GetAssignmentsQuery must be created via NewGetAssignmentsQuery constructor",
)

// GetAssignmentsQuery retrieves assignment records. A zero JO number skips
// the key filter; UnknownStatus skips the status filter; an empty assignTo
// skips the worker filter. The QC screen uses the status filter to list what
// awaits inspection, and the planning board filters by worker to show one
// person's workload.
type GetAssignmentsQuery struct {
	joNo     int
	status   assignment.Status
	assignTo string

	guard guard.ConstructorGuard
}

// NewGetAssignmentsQuery creates a query to retrieve assignments.
func NewGetAssignmentsQuery(
	joNo int,
	status assignment.Status,
	assignTo string,
) (GetAssignmentsQuery, error) {
	if status != assignment.UnknownStatus {
		if err := status.Validate(); err != nil {
			return GetAssignmentsQuery{}, err
		}
	}

	return GetAssignmentsQuery{
		joNo:     joNo,
		status:   status,
		assignTo: assignTo,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentsQueryIsNotConstructed)
}

// JoNo returns the JO-number filter, zero when unset.
func (q GetAssignmentsQuery) JoNo() int {
	return q.joNo
}

// Status returns the status filter, UnknownStatus when unset.
func (q GetAssignmentsQuery) Status() assignment.Status {
	return q.status
}

// AssignTo returns the worker-name filter, empty when unset.
func (q GetAssignmentsQuery) AssignTo() string {
	return q.assignTo
}

// GetAssignmentsQueryResponse represents one assignment row in the read
// model.
type GetAssignmentsQueryResponse struct {
	ID              kernel.UUID
	JoNo            int
	ItemNo          int
	SerialNo        string
	MachineCategory string
	MachineSize     string
	MachineCode     string
	WorkerName      string
	QuantityNo      int
	AssigningDate   string
	Status          string
}
