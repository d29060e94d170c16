package commands

import (
	"errors"
	"fmt"

	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/core/domain/model/workorder"
	"jobshop/internal/pkg/errs"
	"jobshop/internal/pkg/guard"
)

var ErrCreateAssemblyCommandIsNotConstructed = errors.New(
	"CreateAssemblyCommand must be created via NewCreateAssemblyCommand constructor",
)

// CreateAssemblyCommand represents a request to register a batch of work
// orders sharing one header. The batch is all-or-nothing: if any sub-item
// fails validation, no record is written.
type CreateAssemblyCommand struct { //nolint:recvcheck //using for validation
	orderIDs    []kernel.UUID
	jobType     workorder.JobType
	jobNo       int
	jobCategory string
	header      workorder.Header
	items       []workorder.ItemDetails

	guard guard.ConstructorGuard
}

// NewCreateAssemblyCommand creates a command to register an assembly batch.
// orderIDs supplies one identifier per sub-item, in order.
func NewCreateAssemblyCommand(
	orderIDs []kernel.UUID,
	jobType workorder.JobType,
	jobNo int,
	jobCategory string,
	header workorder.Header,
	items []workorder.ItemDetails,
) (CreateAssemblyCommand, error) {
	cmd := CreateAssemblyCommand{
		jobNo:       jobNo,
		jobCategory: jobCategory,
		header:      header,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobType(jobType),
		cmd.setItems(orderIDs, items),
	); err != nil {
		return CreateAssemblyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateAssemblyCommandIsNotConstructed if validation fails.
func (c CreateAssemblyCommand) Validate() error {
	return c.guard.Validate(ErrCreateAssemblyCommandIsNotConstructed)
}

// OrderIDs returns the identifier for each sub-item, in order.
func (c CreateAssemblyCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// JobType returns the requested classification, shared by the whole batch.
func (c CreateAssemblyCommand) JobType() workorder.JobType {
	return c.jobType
}

// JobNo returns the customer job number.
func (c CreateAssemblyCommand) JobNo() int {
	return c.jobNo
}

// JobCategory returns the requested category.
func (c CreateAssemblyCommand) JobCategory() string {
	return c.jobCategory
}

// Header returns the header shared by every sub-item.
func (c CreateAssemblyCommand) Header() workorder.Header {
	return c.header
}

// Items returns the per-sub-item fields, in order.
func (c CreateAssemblyCommand) Items() []workorder.ItemDetails {
	return c.items
}

func (c *CreateAssemblyCommand) setJobType(jobType workorder.JobType) error {
	if err := jobType.Validate(); err != nil {
		return err
	}

	c.jobType = jobType
	return nil
}

func (c *CreateAssemblyCommand) setItems(orderIDs []kernel.UUID, items []workorder.ItemDetails) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	if len(orderIDs) != len(items) {
		return errs.NewValueIsInvalidErrorWithCause("items",
			fmt.Errorf("%d identifiers for %d items", len(orderIDs), len(items)))
	}
	for i, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i+1, err)
		}
	}

	c.orderIDs = orderIDs
	c.items = items
	return nil
}
