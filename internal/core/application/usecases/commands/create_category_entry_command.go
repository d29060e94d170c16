package commands

import (
	"errors"
	"fmt"

	"jobshop/internal/core/domain/model/categoryentry"
	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/pkg/errs"
	"jobshop/internal/pkg/guard"
)

var ErrCreateCategoryEntryCommandIsNotConstructed = errors.New(
	"CreateCategoryEntryCommand must be created via NewCreateCategoryEntryCommand constructor",
)

// CreateCategoryEntryCommand represents a request to register a
// specification/drawing entry for a job number.
type CreateCategoryEntryCommand struct { //nolint:recvcheck //using for validation
	entryID kernel.UUID
	jobNo   int
	details categoryentry.Details

	guard guard.ConstructorGuard
}

// NewCreateCategoryEntryCommand creates a command to register a category
// entry. The field-level rules are enforced again by the aggregate; the
// command checks the identifier and job number.
func NewCreateCategoryEntryCommand(
	entryID kernel.UUID,
	jobNo int,
	details categoryentry.Details,
) (CreateCategoryEntryCommand, error) {
	cmd := CreateCategoryEntryCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEntryID(entryID),
		cmd.setJobNo(jobNo),
	); err != nil {
		return CreateCategoryEntryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCategoryEntryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryEntryCommandIsNotConstructed)
}

// EntryID returns the unique identifier for the new entry.
func (c CreateCategoryEntryCommand) EntryID() kernel.UUID {
	return c.entryID
}

// JobNo returns the job number the entry belongs to.
func (c CreateCategoryEntryCommand) JobNo() int {
	return c.jobNo
}

// Details returns the specification fields.
func (c CreateCategoryEntryCommand) Details() categoryentry.Details {
	return c.details
}

func (c *CreateCategoryEntryCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}

	c.entryID = entryID
	return nil
}

func (c *CreateCategoryEntryCommand) setJobNo(jobNo int) error {
	if jobNo <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("job_no",
			fmt.Errorf("%d is not a positive integer", jobNo))
	}

	c.jobNo = jobNo
	return nil
}
