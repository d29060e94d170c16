package workorder

import (
	"fmt"

	"jobshop/internal/pkg/errs"
)

// JobType classifies a work order by the kind of shop work it represents.
//
// The three kinds carry different intake rules:
//   - JobService orders are keyed by a customer job number
//   - TsoService orders are keyed by a third-party service category
//   - Kanban orders replenish stock and are tracked by category, not item number
type JobType int

const (
	// UnknownJobType represents an invalid or undefined job type.
	// This value (0) helps catch uninitialized JobType values.
	UnknownJobType JobType = iota

	// JobService is piece-work performed against a customer job number.
	JobService

	// TsoService is work performed for a third-party service order.
	TsoService

	// Kanban is a stock-replenishment order tracked by category.
	Kanban
)

// SubType distinguishes single-item orders from assembly batches.
type SubType int

const (
	// UnknownSubType represents an invalid or undefined sub type.
	UnknownSubType SubType = iota

	// Partial is a single-item work order.
	Partial

	// Assembly marks a work order created as part of an atomic multi-item
	// batch sharing one header.
	Assembly
)

func getJobTypeStrings() map[JobType]string {
	return map[JobType]string{
		UnknownJobType: "UNKNOWN",
		JobService:     "JOB_SERVICE",
		TsoService:     "TSO_SERVICE",
		Kanban:         "KANBAN",
	}
}

func getValidJobTypeStrings() map[JobType]string {
	//nolint:exhaustive // UnknownJobType is intentionally excluded as it's invalid
	return map[JobType]string{
		JobService: "JOB_SERVICE",
		TsoService: "TSO_SERVICE",
		Kanban:     "KANBAN",
	}
}

// Validate checks if the JobType value is valid.
// Valid types are JobService, TsoService, and Kanban.
func (t JobType) Validate() error {
	if _, ok := getValidJobTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("job_type",
			fmt.Errorf("%d is not a valid job type", t))
	}
	return nil
}

// String returns the wire name of the job type ("JOB_SERVICE", "TSO_SERVICE",
// "KANBAN"), or "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (t JobType) String() string {
	if s, ok := getJobTypeStrings()[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// JobTypeFromString parses a wire name into a JobType.
// Returns an error for anything other than the three valid names.
func JobTypeFromString(s string) (JobType, error) {
	for t, name := range getValidJobTypeStrings() {
		if name == s {
			return t, nil
		}
	}
	return UnknownJobType, errs.NewValueIsInvalidErrorWithCause("job_type",
		fmt.Errorf("%q is not a valid job type", s))
}

func getSubTypeStrings() map[SubType]string {
	return map[SubType]string{
		UnknownSubType: "UNKNOWN",
		Partial:        "PARTIAL",
		Assembly:       "ASSEMBLY",
	}
}

// Validate checks if the SubType value is valid.
func (s SubType) Validate() error {
	if s != Partial && s != Assembly {
		return errs.NewValueIsInvalidErrorWithCause("sub_type",
			fmt.Errorf("%d is not a valid sub type", s))
	}
	return nil
}

// String returns the wire name of the sub type. Implements fmt.Stringer.
func (s SubType) String() string {
	if str, ok := getSubTypeStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// SubTypeFromString parses a wire name into a SubType.
func SubTypeFromString(s string) (SubType, error) {
	switch s {
	case "PARTIAL":
		return Partial, nil
	case "ASSEMBLY":
		return Assembly, nil
	default:
		return UnknownSubType, errs.NewValueIsInvalidErrorWithCause("sub_type",
			fmt.Errorf("%q is not a valid sub type", s))
	}
}

// tsoCategories is the fixed vocabulary for third-party service orders.
var tsoCategories = map[string]struct{}{
	"drawing": {},
	"sample":  {},
}

// kanbanCategories is the fixed vocabulary for replenishment orders.
var kanbanCategories = map[string]struct{}{
	"RAW_MATERIAL":          {},
	"IN_PROGRESS":           {},
	"FINISHED_GOODS":        {},
	"VESSEL":                {},
	"HEAD":                  {},
	"CLAMP":                 {},
	"PILLER_DRIVE_ASSEMBLY": {},
	"HEATER_PLATE":          {},
	"COMPRESSION_RING":      {},
	"HEATER_SHELL":          {},
	"OUTER_RING":            {},
	"COOLING_COIL":          {},
	"SPARGER":               {},
	"HOLLOW_SHAFT":          {},
	"STIRRER_SHAFT":         {},
}

// validateJobCategory enforces the category vocabulary for the types that
// require a category. JobService categories are free-form.
func validateJobCategory(t JobType, category string) error {
	switch t {
	case TsoService:
		if category == "" {
			return errs.NewValueIsRequiredError("job_category")
		}
		if _, ok := tsoCategories[category]; !ok {
			return errs.NewValueIsInvalidErrorWithCause("job_category",
				fmt.Errorf("%q is not a valid TSO service category", category))
		}
	case Kanban:
		if category == "" {
			return errs.NewValueIsRequiredError("job_category")
		}
		if _, ok := kanbanCategories[category]; !ok {
			return errs.NewValueIsInvalidErrorWithCause("job_category",
				fmt.Errorf("%q is not a valid kanban category", category))
		}
	default:
	}
	return nil
}
