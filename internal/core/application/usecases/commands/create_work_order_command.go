package commands

import (
	"errors"

	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/core/domain/model/workorder"
	"jobshop/internal/pkg/guard"
)

var ErrCreateWorkOrderCommandIsNotConstructed = errors.New(
	"CreateWorkOrderCommand must be created via NewCreateWorkOrderCommand constructor",
)

// CreateWorkOrderCommand represents a request to register one work order.
// Field requirements depend on the job type: a job number for JOB_SERVICE,
// a category from the fixed vocabulary for TSO_SERVICE and KANBAN. The
// deep per-variant validation lives in the aggregate constructors; the
// command only guarantees a parseable classification.
//
// Example:
//
//	cmd, err := NewCreateWorkOrderCommand(
//	    kernel.NewUUID(), workorder.JobService, workorder.Partial,
//	    555, "machining", header, item)
//	if err != nil {
//	    return fmt.Errorf("invalid work order data: %w", err)
//	}
//
//	handler := NewCreateWorkOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create work order: %w", err)
//	}
type CreateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	jobType     workorder.JobType
	subType     workorder.SubType
	jobNo       int
	jobCategory string
	header      workorder.Header
	item        workorder.ItemDetails

	guard guard.ConstructorGuard
}

// NewCreateWorkOrderCommand creates a command to register a work order.
// Validates the identifier and classification; the remaining fields are
// validated per-variant when the aggregate is constructed.
func NewCreateWorkOrderCommand(
	orderID kernel.UUID,
	jobType workorder.JobType,
	subType workorder.SubType,
	jobNo int,
	jobCategory string,
	header workorder.Header,
	item workorder.ItemDetails,
) (CreateWorkOrderCommand, error) {
	cmd := CreateWorkOrderCommand{
		jobNo:       jobNo,
		jobCategory: jobCategory,
		header:      header,
		item:        item,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setJobType(jobType),
		cmd.setSubType(subType),
	); err != nil {
		return CreateWorkOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateWorkOrderCommandIsNotConstructed if validation fails.
func (c CreateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new work order.
func (c CreateWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// JobType returns the requested classification.
func (c CreateWorkOrderCommand) JobType() workorder.JobType {
	return c.jobType
}

// SubType returns the requested sub-classification.
func (c CreateWorkOrderCommand) SubType() workorder.SubType {
	return c.subType
}

// JobNo returns the customer job number.
func (c CreateWorkOrderCommand) JobNo() int {
	return c.jobNo
}

// JobCategory returns the requested category.
func (c CreateWorkOrderCommand) JobCategory() string {
	return c.jobCategory
}

// Header returns the shared header fields.
func (c CreateWorkOrderCommand) Header() workorder.Header {
	return c.header
}

// Item returns the per-item fields.
func (c CreateWorkOrderCommand) Item() workorder.ItemDetails {
	return c.item
}

func (c *CreateWorkOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateWorkOrderCommand) setJobType(jobType workorder.JobType) error {
	if err := jobType.Validate(); err != nil {
		return err
	}

	c.jobType = jobType
	return nil
}

func (c *CreateWorkOrderCommand) setSubType(subType workorder.SubType) error {
	if err := subType.Validate(); err != nil {
		return err
	}

	c.subType = subType
	return nil
}
