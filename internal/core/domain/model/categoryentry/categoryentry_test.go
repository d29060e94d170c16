package categoryentry_test

import (
	"testing"
	"time"

	"jobshop/internal/core/domain/model/categoryentry"
	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() categoryentry.Details {
	received, _ := kernel.DateFromString("2026-03-05")
	return categoryentry.Details{
		Description:         "Shaft drawing rev B",
		MaterialType:        "EN8",
		Bar:                 "40mm",
		Tempp:               "250C",
		Qty:                 25,
		ClientName:          "Acme Process",
		DrawingReceivedDate: received,
	}
}

func TestNewCategoryEntry(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid entry with all valid parameters", func(t *testing.T) {
		e, err := categoryentry.NewCategoryEntry(validID, 123, validDetails())

		require.NoError(t, err)
		require.NotNil(t, e)
		require.NoError(t, e.Validate())
		assert.True(t, e.ID().IsEqual(validID))
		assert.Equal(t, 123, e.JobNo())
		assert.Equal(t, "Shaft drawing rev B", e.Description())
		assert.Equal(t, 25, e.Qty())
		assert.False(t, e.IsApproved())
		assert.False(t, e.Urgent())
		assert.Nil(t, e.UrgentDueDate())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		e, err := categoryentry.NewCategoryEntry(invalidID, 123, validDetails())

		require.Error(t, err)
		assert.Nil(t, e)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with non-positive job number", func(t *testing.T) {
		for _, jobNo := range []int{0, -7} {
			e, err := categoryentry.NewCategoryEntry(validID, jobNo, validDetails())

			require.Error(t, err)
			assert.Nil(t, e)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "job_no")
		}
	})

	t.Run("should fail with missing required fields", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*categoryentry.Details)
			field  string
		}{
			{"missing description", func(d *categoryentry.Details) { d.Description = "" }, "description"},
			{"missing material type", func(d *categoryentry.Details) { d.MaterialType = "" }, "material_type"},
			{"missing client name", func(d *categoryentry.Details) { d.ClientName = "" }, "client_name"},
			{"zero quantity", func(d *categoryentry.Details) { d.Qty = 0 }, "qty"},
			{"missing drawing date", func(d *categoryentry.Details) { d.DrawingReceivedDate = kernel.Date{} }, "drawing_recieved_date"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				details := validDetails()
				tt.mutate(&details)

				e, err := categoryentry.NewCategoryEntry(validID, 123, details)

				require.Error(t, err)
				assert.Nil(t, e)
				assert.Contains(t, err.Error(), tt.field)
			})
		}
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		details := validDetails()
		details.Description = ""
		details.Qty = -1

		e, err := categoryentry.NewCategoryEntry(validID, 123, details)

		require.Error(t, err)
		assert.Nil(t, e)
		assert.Contains(t, err.Error(), "description")
		assert.Contains(t, err.Error(), "qty")
	})
}

func TestRestoreCategoryEntry(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should restore entry preserving state", func(t *testing.T) {
		due, _ := kernel.DateFromString("2026-04-01")

		e, err := categoryentry.RestoreCategoryEntry(validID, 123, validDetails(), true, true, &due)

		require.NoError(t, err)
		require.NotNil(t, e)
		require.NoError(t, e.Validate())
		assert.True(t, e.IsApproved())
		assert.True(t, e.Urgent())
		require.NotNil(t, e.UrgentDueDate())
		assert.True(t, e.UrgentDueDate().IsEqual(due))
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		e, err := categoryentry.RestoreCategoryEntry(invalidID, 123, validDetails(), false, false, nil)

		require.Error(t, err)
		assert.Nil(t, e)
	})
}

func TestCategoryEntry_Validate(t *testing.T) {
	t.Run("should fail for nil entry", func(t *testing.T) {
		var e *categoryentry.CategoryEntry

		assert.ErrorIs(t, e.Validate(), categoryentry.ErrCategoryEntryIsNotConstructed)
	})

	t.Run("should fail for zero-value entry", func(t *testing.T) {
		var e categoryentry.CategoryEntry

		assert.ErrorIs(t, e.Validate(), categoryentry.ErrCategoryEntryIsNotConstructed)
	})
}

func TestCategoryEntry_Approve(t *testing.T) {
	e, err := categoryentry.NewCategoryEntry(kernel.NewUUID(), 123, validDetails())
	require.NoError(t, err)
	require.False(t, e.IsApproved())

	e.Approve()
	assert.True(t, e.IsApproved())

	// Idempotent: a second approval is a no-op.
	e.Approve()
	assert.True(t, e.IsApproved())
}

func TestCategoryEntry_MarkUrgent(t *testing.T) {
	today := kernel.NewDate(time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC))

	newEntry := func(t *testing.T) *categoryentry.CategoryEntry {
		e, err := categoryentry.NewCategoryEntry(kernel.NewUUID(), 123, validDetails())
		require.NoError(t, err)
		return e
	}

	t.Run("should mark urgent with a future due date", func(t *testing.T) {
		e := newEntry(t)
		due, _ := kernel.DateFromString("2026-03-20")

		require.NoError(t, e.MarkUrgent(due, today))
		assert.True(t, e.Urgent())
		require.NotNil(t, e.UrgentDueDate())
		assert.True(t, e.UrgentDueDate().IsEqual(due))
	})

	t.Run("should reject past due date", func(t *testing.T) {
		e := newEntry(t)
		due, _ := kernel.DateFromString("2026-03-14")

		require.ErrorIs(t, e.MarkUrgent(due, today), categoryentry.ErrDueDateInPast)
		assert.False(t, e.Urgent())
	})

	t.Run("should reject zero due date", func(t *testing.T) {
		e := newEntry(t)

		require.Error(t, e.MarkUrgent(kernel.Date{}, today))
		assert.False(t, e.Urgent())
	})
}

func TestCategoryEntry_Update(t *testing.T) {
	t.Run("should replace details without touching approval", func(t *testing.T) {
		e, err := categoryentry.NewCategoryEntry(kernel.NewUUID(), 123, validDetails())
		require.NoError(t, err)
		e.Approve()

		updated := validDetails()
		updated.Description = "Shaft drawing rev C"
		updated.Qty = 30

		require.NoError(t, e.Update(updated))
		assert.Equal(t, "Shaft drawing rev C", e.Description())
		assert.Equal(t, 30, e.Qty())
		assert.True(t, e.IsApproved())
	})

	t.Run("should reject invalid details and keep the old ones", func(t *testing.T) {
		e, err := categoryentry.NewCategoryEntry(kernel.NewUUID(), 123, validDetails())
		require.NoError(t, err)

		bad := validDetails()
		bad.Qty = 0

		require.Error(t, e.Update(bad))
		assert.Equal(t, 25, e.Qty())
	})
}
