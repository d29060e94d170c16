package poservice

import (
	"errors"
	"fmt"

	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/pkg/errs"
)

// ErrPOServiceIsNotConstructed is returned when a POService was not created
// through NewPOService or RestorePOService.
var ErrPOServiceIsNotConstructed = errors.New(
	"POService must be created via NewPOService or RestorePOService",
)

// Category classifies a purchase-order service record.
type Category int

const (
	// UnknownCategory represents an invalid or undefined category.
	// This value (0) helps catch uninitialized Category values.
	UnknownCategory Category = iota

	// Fine is fine-finish purchase-order work.
	Fine

	// PressFlow is press-flow purchase-order work.
	PressFlow
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		UnknownCategory: "UNKNOWN",
		Fine:            "FINE",
		PressFlow:       "PRESS_FLOW",
	}
}

// Validate checks if the Category value is valid.
func (c Category) Validate() error {
	if c != Fine && c != PressFlow {
		return errs.NewValueIsInvalidErrorWithCause("jo_category",
			fmt.Errorf("%d is not a valid PO category", c))
	}
	return nil
}

// String returns the wire name of the category ("FINE", "PRESS_FLOW"),
// or "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (c Category) String() string {
	if s, ok := getCategoryStrings()[c]; ok {
		return s
	}
	return "UNKNOWN"
}

// CategoryFromString parses a wire name into a Category.
func CategoryFromString(s string) (Category, error) {
	switch s {
	case "FINE":
		return Fine, nil
	case "PRESS_FLOW":
		return PressFlow, nil
	default:
		return UnknownCategory, errs.NewValueIsInvalidErrorWithCause("jo_category",
			fmt.Errorf("%q is not a valid PO category", s))
	}
}

// POService is an independent order-fulfillment record tracked alongside
// work orders. It shares job numbers with them as plain references; there
// is no cross-aggregate invariant.
type POService struct {
	id kernel.UUID

	poNo        string
	poDate      kernel.Date
	pnNo        string
	description string
	poQnty      int
	jobNo       int
	joCategory  Category

	guard kernel.ConstructorGuard
}

// NewPOService creates a purchase-order service record.
func NewPOService(
	id kernel.UUID,
	poNo string,
	poDate kernel.Date,
	pnNo string,
	description string,
	poQnty int,
	jobNo int,
	joCategory Category,
) (*POService, error) {
	p := &POService{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setPoNo(poNo),
		p.setPoDate(poDate),
		p.setDescription(description),
		p.setPoQnty(poQnty),
		p.setJobNo(jobNo),
		p.setJoCategory(joCategory),
	); err != nil {
		return nil, err
	}

	p.pnNo = pnNo
	return p, nil
}

// RestorePOService reconstructs a POService from persistence.
func RestorePOService(
	id kernel.UUID,
	poNo string,
	poDate kernel.Date,
	pnNo string,
	description string,
	poQnty int,
	jobNo int,
	joCategory Category,
) (*POService, error) {
	if err := errors.Join(id.Validate(), joCategory.Validate()); err != nil {
		return nil, err
	}

	return &POService{
		id:          id,
		poNo:        poNo,
		poDate:      poDate,
		pnNo:        pnNo,
		description: description,
		poQnty:      poQnty,
		jobNo:       jobNo,
		joCategory:  joCategory,
		guard:       kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the POService was created through a constructor.
func (p *POService) Validate() error {
	if p == nil {
		return ErrPOServiceIsNotConstructed
	}
	return p.guard.Validate(ErrPOServiceIsNotConstructed)
}

// IsEqual compares two records by their unique identifiers.
func (p *POService) IsEqual(other *POService) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the record's unique identifier.
func (p *POService) ID() kernel.UUID { return p.id }

// PoNo returns the purchase-order number.
func (p *POService) PoNo() string { return p.poNo }

// PoDate returns the purchase-order date.
func (p *POService) PoDate() kernel.Date { return p.poDate }

// PnNo returns the part number. Optional.
func (p *POService) PnNo() string { return p.pnNo }

// Description returns the order description.
func (p *POService) Description() string { return p.description }

// PoQnty returns the ordered quantity.
func (p *POService) PoQnty() int { return p.poQnty }

// JobNo returns the referenced job number.
func (p *POService) JobNo() int { return p.jobNo }

// JoCategory returns the record's category.
func (p *POService) JoCategory() Category { return p.joCategory }

func (p *POService) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *POService) setPoNo(poNo string) error {
	if poNo == "" {
		return errs.NewValueIsRequiredError("po_no")
	}
	p.poNo = poNo
	return nil
}

func (p *POService) setPoDate(poDate kernel.Date) error {
	if err := poDate.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("po_date", err)
	}
	p.poDate = poDate
	return nil
}

func (p *POService) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	p.description = description
	return nil
}

func (p *POService) setPoQnty(poQnty int) error {
	if poQnty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("po_qnty",
			fmt.Errorf("%d is not greater than 0", poQnty))
	}
	p.poQnty = poQnty
	return nil
}

func (p *POService) setJobNo(jobNo int) error {
	if jobNo <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("job_no",
			fmt.Errorf("%d is not a positive integer", jobNo))
	}
	p.jobNo = jobNo
	return nil
}

func (p *POService) setJoCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.joCategory = category
	return nil
}
