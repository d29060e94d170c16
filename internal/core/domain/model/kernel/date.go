package kernel

import (
	"fmt"
	"time"

	"jobshop/internal/pkg/errs"
)

// DateLayout is the canonical wire and storage representation of a calendar
// date. All dates entering the domain are normalized to this form.
const DateLayout = "2006-01-02"

// ErrDateIsNotConstructed indicates that a Date was not properly initialized
// through one of the constructor functions. This error is returned when
// validating a zero-value Date.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError("Date must be created via NewDate or DateFromString")

// Date is a value object that represents a calendar date with day precision.
// Time-of-day and timezone are deliberately absent: the domain exchanges
// dates in canonical YYYY-MM-DD form and never reasons below a day.
//
// The zero value of Date is invalid and must be constructed using NewDate or
// DateFromString. Date is immutable and safe for concurrent use.
//
// Example usage:
//
//	orderDate, err := kernel.DateFromString("2025-08-01")
//	if err != nil {
//	    // handle malformed input
//	}
//	fmt.Println(orderDate.String()) // "2025-08-01"
type Date struct {
	t time.Time
}

// NewDate creates a Date from a time.Time, truncating to day precision in UTC.
// Use this when the date originates inside the process (e.g. "today").
func NewDate(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// DateFromString parses a canonical YYYY-MM-DD string into a Date.
// Returns a ValueIsInvalidError when the input does not match the layout,
// which makes the failing field nameable by callers.
func DateFromString(s string) (Date, error) {
	if s == "" {
		return Date{}, errs.NewValueIsRequiredError("date")
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date",
			fmt.Errorf("%q is not in YYYY-MM-DD form", s))
	}
	return Date{t: t}, nil
}

// String returns the canonical YYYY-MM-DD representation.
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// Time returns the underlying time.Time at midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

// IsZero reports whether the Date is the zero value.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// IsEqual compares two Dates for equality.
func (d Date) IsEqual(other Date) bool {
	return d.t.Equal(other.t)
}

// Validate checks that the Date was properly constructed.
// Returns ErrDateIsNotConstructed for the zero value.
func (d Date) Validate() error {
	if d.t.IsZero() {
		return ErrDateIsNotConstructed
	}
	return nil
}
