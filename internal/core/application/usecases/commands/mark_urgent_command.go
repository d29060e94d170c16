package commands

import (
	"errors"
	"fmt"

	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/pkg/errs"
	"jobshop/internal/pkg/guard"
)

var ErrMarkUrgentCommandIsNotConstructed = errors.New(
	"MarkUrgentCommand must be created via NewMarkUrgentCommand constructor",
)

// MarkUrgentCommand represents a request to escalate a job: every work
// order and category entry carrying the job number gets the urgent flag and
// the same due date, in one transaction.
type MarkUrgentCommand struct { //nolint:recvcheck //using for validation
	jobNo   int
	dueDate kernel.Date

	guard guard.ConstructorGuard
}

// NewMarkUrgentCommand creates a command to escalate a job. Whether the
// due date lies in the past is checked at handling time against the
// current day, not here.
func NewMarkUrgentCommand(jobNo int, dueDate kernel.Date) (MarkUrgentCommand, error) {
	cmd := MarkUrgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobNo(jobNo),
		cmd.setDueDate(dueDate),
	); err != nil {
		return MarkUrgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkUrgentCommand) Validate() error {
	return c.guard.Validate(ErrMarkUrgentCommandIsNotConstructed)
}

// JobNo returns the job number to escalate.
func (c MarkUrgentCommand) JobNo() int {
	return c.jobNo
}

// DueDate returns the escalation due date.
func (c MarkUrgentCommand) DueDate() kernel.Date {
	return c.dueDate
}

func (c *MarkUrgentCommand) setJobNo(jobNo int) error {
	if jobNo <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("job_no",
			fmt.Errorf("%d is not a positive integer", jobNo))
	}

	c.jobNo = jobNo
	return nil
}

func (c *MarkUrgentCommand) setDueDate(dueDate kernel.Date) error {
	if err := dueDate.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("urgent_due_date", err)
	}

	c.dueDate = dueDate
	return nil
}
