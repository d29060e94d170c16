package workorder

import (
	"errors"
	"fmt"

	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/pkg/errs"
)

var (
	// ErrWorkOrderIsNotConstructed is returned when a WorkOrder instance was
	// not created through one of the variant constructors.
	ErrWorkOrderIsNotConstructed = errors.New(
		"WorkOrder must be created via NewJobServiceOrder, NewTsoServiceOrder, or NewKanbanOrder",
	)

	// ErrDueDateInPast is returned when an urgency due date lies before the
	// day the escalation is requested.
	ErrDueDateInPast = errors.New("urgent due date must not be in the past")
)

// ItemDetails carries the per-item fields of a work order. In partial mode
// the caller supplies one ItemDetails; in assembly mode each sub-item brings
// its own while the header is shared.
type ItemDetails struct {
	// ItemNo identifies the drawing/part. Required except for kanban orders,
	// which are tracked by category.
	ItemNo int

	// SerialNo disambiguates physical units sharing one item number.
	SerialNo string

	// Qty is the total number of units under this record. Must be positive.
	Qty int

	// ItemDescription is the human-readable item name.
	ItemDescription string

	// MOC is the material of construction.
	MOC string

	// BinLocation is where the raw material sits.
	BinLocation string

	// MaterialRemark is optional free text about the material.
	MaterialRemark string

	// Remark is optional free text about the order.
	Remark string
}

// Header carries the fields an assembly batch shares across its sub-items,
// and that a partial order carries alongside its single item.
type Header struct {
	// JoNumber groups every work order created from one order event.
	JoNumber int

	// JobOrderDate is the date the job order was placed.
	JobOrderDate kernel.Date

	// MtlRcdDate is the date material was received.
	MtlRcdDate kernel.Date

	// MtlChallanNo is the material challan number. Must be a positive integer.
	MtlChallanNo int
}

// WorkOrder represents one unit of shop work. It is the aggregate root for
// the intake → approval → assignment → quality-check lifecycle.
//
// WorkOrder follows these invariants:
//   - Classification is a tagged variant: each (job type, sub type) pair has
//     its own required-field set, enforced by the variant constructors
//   - Quantity is positive
//   - Approval is one-way: once approved, an order never becomes unapproved
//   - Urgency is one-way and carries a due date that is not in the past
//   - Mutation is limited to approval and urgency; everything else is fixed
//     at creation
type WorkOrder struct {
	id kernel.UUID

	jobNo    int
	joNumber int

	jobType     JobType
	subType     SubType
	jobCategory string

	header Header

	itemNo          int
	serialNo        string
	qty             int
	itemDescription string
	moc             string
	binLocation     string
	materialRemark  string
	remark          string

	approved      bool
	urgent        bool
	urgentDueDate *kernel.Date

	guard kernel.ConstructorGuard
}

// NewJobServiceOrder creates a piece-work service order. The customer job
// number is required for this variant and only this variant.
func NewJobServiceOrder(
	id kernel.UUID,
	subType SubType,
	jobNo int,
	jobCategory string,
	header Header,
	item ItemDetails,
) (*WorkOrder, error) {
	w := &WorkOrder{
		jobType:     JobService,
		jobCategory: jobCategory,
		guard:       kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setSubType(subType),
		w.setJobNo(jobNo),
		w.setHeader(header),
		w.setItem(item, true),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// NewTsoServiceOrder creates a third-party service order. A category from
// the TSO vocabulary is required; a job number is not.
func NewTsoServiceOrder(
	id kernel.UUID,
	subType SubType,
	jobCategory string,
	header Header,
	item ItemDetails,
) (*WorkOrder, error) {
	w := &WorkOrder{
		jobType: TsoService,
		guard:   kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setSubType(subType),
		w.setJobCategory(jobCategory),
		w.setHeader(header),
		w.setItem(item, true),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// NewKanbanOrder creates a replenishment order. Kanban units are tracked by
// category, so an item number is never required for this variant.
func NewKanbanOrder(
	id kernel.UUID,
	subType SubType,
	jobCategory string,
	header Header,
	item ItemDetails,
) (*WorkOrder, error) {
	w := &WorkOrder{
		jobType: Kanban,
		guard:   kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setSubType(subType),
		w.setJobCategory(jobCategory),
		w.setHeader(header),
		w.setItem(item, false),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWorkOrder reconstructs a WorkOrder from persistence, preserving its
// approval and urgency state. The restored aggregate behaves identically to
// one created through the variant constructors.
func RestoreWorkOrder(
	id kernel.UUID,
	jobType JobType,
	subType SubType,
	jobNo int,
	joNumber int,
	jobCategory string,
	header Header,
	item ItemDetails,
	approved bool,
	urgent bool,
	urgentDueDate *kernel.Date,
) (*WorkOrder, error) {
	if err := errors.Join(id.Validate(), jobType.Validate(), subType.Validate()); err != nil {
		return nil, err
	}

	w := &WorkOrder{
		id:              id,
		jobType:         jobType,
		subType:         subType,
		jobNo:           jobNo,
		joNumber:        joNumber,
		jobCategory:     jobCategory,
		header:          header,
		itemNo:          item.ItemNo,
		serialNo:        item.SerialNo,
		qty:             item.Qty,
		itemDescription: item.ItemDescription,
		moc:             item.MOC,
		binLocation:     item.BinLocation,
		materialRemark:  item.MaterialRemark,
		remark:          item.Remark,
		approved:        approved,
		urgent:          urgent,
		urgentDueDate:   urgentDueDate,
		guard:           kernel.NewConstructorGuard(),
	}

	return w, nil
}

// Validate ensures the WorkOrder was created through a constructor.
func (w *WorkOrder) Validate() error {
	if w == nil {
		return ErrWorkOrderIsNotConstructed
	}
	return w.guard.Validate(ErrWorkOrderIsNotConstructed)
}

// IsEqual compares two work orders by their unique identifiers.
func (w *WorkOrder) IsEqual(other *WorkOrder) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the work order's unique identifier.
func (w *WorkOrder) ID() kernel.UUID { return w.id }

// JobType returns the order's classification.
func (w *WorkOrder) JobType() JobType { return w.jobType }

// SubType reports whether the order is a single item or part of an assembly.
func (w *WorkOrder) SubType() SubType { return w.subType }

// JobNo returns the customer job number (zero for non-job-service orders
// unless one was supplied).
func (w *WorkOrder) JobNo() int { return w.jobNo }

// JoNumber returns the order-group number.
func (w *WorkOrder) JoNumber() int { return w.joNumber }

// JobCategory returns the order's category.
func (w *WorkOrder) JobCategory() string { return w.jobCategory }

// ItemNo returns the item number (zero for kanban orders without one).
func (w *WorkOrder) ItemNo() int { return w.itemNo }

// SerialNo returns the serial disambiguating physical units of one item.
func (w *WorkOrder) SerialNo() string { return w.serialNo }

// Qty returns the total unit count under this record.
func (w *WorkOrder) Qty() int { return w.qty }

// ItemDescription returns the item's description.
func (w *WorkOrder) ItemDescription() string { return w.itemDescription }

// MOC returns the material of construction.
func (w *WorkOrder) MOC() string { return w.moc }

// BinLocation returns the material's bin location.
func (w *WorkOrder) BinLocation() string { return w.binLocation }

// MaterialRemark returns the optional material note.
func (w *WorkOrder) MaterialRemark() string { return w.materialRemark }

// Remark returns the optional order note.
func (w *WorkOrder) Remark() string { return w.remark }

// JobOrderDate returns the date the job order was placed.
func (w *WorkOrder) JobOrderDate() kernel.Date { return w.header.JobOrderDate }

// MtlRcdDate returns the date material was received.
func (w *WorkOrder) MtlRcdDate() kernel.Date { return w.header.MtlRcdDate }

// MtlChallanNo returns the material challan number.
func (w *WorkOrder) MtlChallanNo() int { return w.header.MtlChallanNo }

// IsApproved reports whether the order has passed the approval gate.
func (w *WorkOrder) IsApproved() bool { return w.approved }

// Urgent reports whether the order has been escalated.
func (w *WorkOrder) Urgent() bool { return w.urgent }

// UrgentDueDate returns the escalation due date, nil when not urgent.
func (w *WorkOrder) UrgentDueDate() *kernel.Date { return w.urgentDueDate }

// Approve flips the order to approved. Approval is one-way and idempotent:
// approving an already-approved order is a no-op, not an error.
func (w *WorkOrder) Approve() {
	w.approved = true
}

// MarkUrgent escalates the order with a due date. The due date must not lie
// before today. Escalation is one-way; calling it again updates the due date.
func (w *WorkOrder) MarkUrgent(dueDate, today kernel.Date) error {
	if err := dueDate.Validate(); err != nil {
		return err
	}
	if dueDate.Before(today) {
		return ErrDueDateInPast
	}

	w.urgent = true
	w.urgentDueDate = &dueDate
	return nil
}

func (w *WorkOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *WorkOrder) setSubType(subType SubType) error {
	if err := subType.Validate(); err != nil {
		return err
	}
	w.subType = subType
	return nil
}

func (w *WorkOrder) setJobNo(jobNo int) error {
	if jobNo <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("job_no",
			fmt.Errorf("%d is not a positive integer", jobNo))
	}
	w.jobNo = jobNo
	return nil
}

func (w *WorkOrder) setJobCategory(category string) error {
	if err := validateJobCategory(w.jobType, category); err != nil {
		return err
	}
	w.jobCategory = category
	return nil
}

func (w *WorkOrder) setHeader(header Header) error {
	if err := header.JobOrderDate.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("job_order_date", err)
	}
	if err := header.MtlRcdDate.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("mtl_rcd_date", err)
	}
	if header.MtlChallanNo <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("mtl_challan_no",
			fmt.Errorf("%d is not a positive integer", header.MtlChallanNo))
	}
	if header.JoNumber < 0 {
		return errs.NewValueIsInvalidErrorWithCause("jo_number",
			fmt.Errorf("%d is negative", header.JoNumber))
	}

	w.header = header
	w.joNumber = header.JoNumber
	return nil
}

func (w *WorkOrder) setItem(item ItemDetails, itemNoRequired bool) error {
	var problems []error

	if itemNoRequired {
		if item.ItemNo <= 0 {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("item_no",
				fmt.Errorf("%d is not a positive integer", item.ItemNo)))
		}
	} else if item.ItemNo < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("item_no",
			fmt.Errorf("%d is negative", item.ItemNo)))
	}

	if item.Qty <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", item.Qty)))
	}
	if item.ItemDescription == "" {
		problems = append(problems, errs.NewValueIsRequiredError("item_description"))
	}
	if item.MOC == "" {
		problems = append(problems, errs.NewValueIsRequiredError("moc"))
	}
	if item.BinLocation == "" {
		problems = append(problems, errs.NewValueIsRequiredError("bin_location"))
	}

	if err := errors.Join(problems...); err != nil {
		return err
	}

	w.itemNo = item.ItemNo
	w.serialNo = item.SerialNo
	w.qty = item.Qty
	w.itemDescription = item.ItemDescription
	w.moc = item.MOC
	w.binLocation = item.BinLocation
	w.materialRemark = item.MaterialRemark
	w.remark = item.Remark
	return nil
}
