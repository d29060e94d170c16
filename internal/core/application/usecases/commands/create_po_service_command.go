package commands

import (
	"errors"

	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/core/domain/model/poservice"
	"jobshop/internal/pkg/guard"
)

var ErrCreatePOServiceCommandIsNotConstructed = errors.New(
	"CreatePOServiceCommand must be created via NewCreatePOServiceCommand constructor",
)

// CreatePOServiceCommand represents a request to register a purchase-order
// service record.
type CreatePOServiceCommand struct { //nolint:recvcheck //using for validation
	recordID    kernel.UUID
	poNo        string
	poDate      kernel.Date
	pnNo        string
	description string
	poQnty      int
	jobNo       int
	joCategory  poservice.Category

	guard guard.ConstructorGuard
}

// NewCreatePOServiceCommand creates a command to register a PO service
// record. Field-level rules are enforced by the aggregate; the command
// checks the identifier and category.
func NewCreatePOServiceCommand(
	recordID kernel.UUID,
	poNo string,
	poDate kernel.Date,
	pnNo string,
	description string,
	poQnty int,
	jobNo int,
	joCategory poservice.Category,
) (CreatePOServiceCommand, error) {
	cmd := CreatePOServiceCommand{
		poNo:        poNo,
		poDate:      poDate,
		pnNo:        pnNo,
		description: description,
		poQnty:      poQnty,
		jobNo:       jobNo,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRecordID(recordID),
		cmd.setJoCategory(joCategory),
	); err != nil {
		return CreatePOServiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePOServiceCommand) Validate() error {
	return c.guard.Validate(ErrCreatePOServiceCommandIsNotConstructed)
}

// RecordID returns the unique identifier for the new record.
func (c CreatePOServiceCommand) RecordID() kernel.UUID {
	return c.recordID
}

// PoNo returns the purchase-order number.
func (c CreatePOServiceCommand) PoNo() string {
	return c.poNo
}

// PoDate returns the purchase-order date.
func (c CreatePOServiceCommand) PoDate() kernel.Date {
	return c.poDate
}

// PnNo returns the part number.
func (c CreatePOServiceCommand) PnNo() string {
	return c.pnNo
}

// Description returns the order description.
func (c CreatePOServiceCommand) Description() string {
	return c.description
}

// PoQnty returns the ordered quantity.
func (c CreatePOServiceCommand) PoQnty() int {
	return c.poQnty
}

// JobNo returns the referenced job number.
func (c CreatePOServiceCommand) JobNo() int {
	return c.jobNo
}

// JoCategory returns the record's category.
func (c CreatePOServiceCommand) JoCategory() poservice.Category {
	return c.joCategory
}

func (c *CreatePOServiceCommand) setRecordID(recordID kernel.UUID) error {
	if err := recordID.Validate(); err != nil {
		return err
	}

	c.recordID = recordID
	return nil
}

func (c *CreatePOServiceCommand) setJoCategory(joCategory poservice.Category) error {
	if err := joCategory.Validate(); err != nil {
		return err
	}

	c.joCategory = joCategory
	return nil
}
