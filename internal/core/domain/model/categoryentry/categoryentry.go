package categoryentry

import (
	"errors"
	"fmt"

	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/pkg/errs"
)

var (
	// ErrCategoryEntryIsNotConstructed is returned when a CategoryEntry was
	// not created through NewCategoryEntry or RestoreCategoryEntry.
	ErrCategoryEntryIsNotConstructed = errors.New(
		"CategoryEntry must be created via NewCategoryEntry or RestoreCategoryEntry",
	)

	// ErrDueDateInPast is returned when an urgency due date lies before the
	// day the escalation is requested.
	ErrDueDateInPast = errors.New("urgent due date must not be in the past")
)

// Details carries the mutable specification fields of a category entry.
// Create and update take the same set, so the rules live in one place.
type Details struct {
	// Description is the human-readable specification text.
	Description string

	// MaterialType names the material the drawing calls for.
	MaterialType string

	// Bar is the bar/stock designation. Optional.
	Bar string

	// Tempp is the temperature specification. Optional.
	Tempp string

	// Qty is the quantity the specification covers. Must be positive.
	Qty int

	// ClientName identifies the customer the drawing belongs to.
	ClientName string

	// DrawingReceivedDate is the date the drawing arrived.
	DrawingReceivedDate kernel.Date

	// Remark is optional free text.
	Remark string
}

// CategoryEntry is a specification/drawing record correlated with work
// orders by job number. It is a distinct aggregate from WorkOrder but the
// two are escalated together: marking a job urgent updates both.
//
// CategoryEntry follows these invariants:
//   - Job number is positive and fixed at creation
//   - Quantity is positive
//   - Approval is one-way: once approved, an entry never becomes unapproved
//   - Urgency is one-way and carries a due date that is not in the past
type CategoryEntry struct {
	id    kernel.UUID
	jobNo int

	details Details

	approved      bool
	urgent        bool
	urgentDueDate *kernel.Date

	guard kernel.ConstructorGuard
}

// NewCategoryEntry creates a category entry pending approval.
func NewCategoryEntry(id kernel.UUID, jobNo int, details Details) (*CategoryEntry, error) {
	e := &CategoryEntry{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setJobNo(jobNo),
		e.setDetails(details),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreCategoryEntry reconstructs a CategoryEntry from persistence,
// preserving its approval and urgency state.
func RestoreCategoryEntry(
	id kernel.UUID,
	jobNo int,
	details Details,
	approved bool,
	urgent bool,
	urgentDueDate *kernel.Date,
) (*CategoryEntry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &CategoryEntry{
		id:            id,
		jobNo:         jobNo,
		details:       details,
		approved:      approved,
		urgent:        urgent,
		urgentDueDate: urgentDueDate,
		guard:         kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the CategoryEntry was created through a constructor.
func (e *CategoryEntry) Validate() error {
	if e == nil {
		return ErrCategoryEntryIsNotConstructed
	}
	return e.guard.Validate(ErrCategoryEntryIsNotConstructed)
}

// IsEqual compares two entries by their unique identifiers.
func (e *CategoryEntry) IsEqual(other *CategoryEntry) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the entry's unique identifier.
func (e *CategoryEntry) ID() kernel.UUID { return e.id }

// JobNo returns the customer job number linking the entry to its work orders.
func (e *CategoryEntry) JobNo() int { return e.jobNo }

// Description returns the specification text.
func (e *CategoryEntry) Description() string { return e.details.Description }

// MaterialType returns the specified material.
func (e *CategoryEntry) MaterialType() string { return e.details.MaterialType }

// Bar returns the bar/stock designation.
func (e *CategoryEntry) Bar() string { return e.details.Bar }

// Tempp returns the temperature specification.
func (e *CategoryEntry) Tempp() string { return e.details.Tempp }

// Qty returns the quantity the specification covers.
func (e *CategoryEntry) Qty() int { return e.details.Qty }

// ClientName returns the customer the drawing belongs to.
func (e *CategoryEntry) ClientName() string { return e.details.ClientName }

// DrawingReceivedDate returns the date the drawing arrived.
func (e *CategoryEntry) DrawingReceivedDate() kernel.Date { return e.details.DrawingReceivedDate }

// Remark returns the optional note.
func (e *CategoryEntry) Remark() string { return e.details.Remark }

// IsApproved reports whether the entry has passed the approval gate.
func (e *CategoryEntry) IsApproved() bool { return e.approved }

// Urgent reports whether the entry has been escalated.
func (e *CategoryEntry) Urgent() bool { return e.urgent }

// UrgentDueDate returns the escalation due date, nil when not urgent.
func (e *CategoryEntry) UrgentDueDate() *kernel.Date { return e.urgentDueDate }

// Approve flips the entry to approved. Approval is one-way and idempotent:
// approving an already-approved entry is a no-op, not an error.
func (e *CategoryEntry) Approve() {
	e.approved = true
}

// MarkUrgent escalates the entry with a due date. The due date must not lie
// before today. Escalation is one-way; calling it again updates the due date.
func (e *CategoryEntry) MarkUrgent(dueDate, today kernel.Date) error {
	if err := dueDate.Validate(); err != nil {
		return err
	}
	if dueDate.Before(today) {
		return ErrDueDateInPast
	}

	e.urgent = true
	e.urgentDueDate = &dueDate
	return nil
}

// Update replaces the entry's specification fields. Approval and urgency
// state are untouched: an edit never re-opens the approval gate.
func (e *CategoryEntry) Update(details Details) error {
	return e.setDetails(details)
}

func (e *CategoryEntry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *CategoryEntry) setJobNo(jobNo int) error {
	if jobNo <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("job_no",
			fmt.Errorf("%d is not a positive integer", jobNo))
	}
	e.jobNo = jobNo
	return nil
}

func (e *CategoryEntry) setDetails(details Details) error {
	var problems []error

	if details.Description == "" {
		problems = append(problems, errs.NewValueIsRequiredError("description"))
	}
	if details.MaterialType == "" {
		problems = append(problems, errs.NewValueIsRequiredError("material_type"))
	}
	if details.ClientName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("client_name"))
	}
	if details.Qty <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", details.Qty)))
	}
	if err := details.DrawingReceivedDate.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("drawing_recieved_date", err))
	}

	if err := errors.Join(problems...); err != nil {
		return err
	}

	e.details = details
	return nil
}
