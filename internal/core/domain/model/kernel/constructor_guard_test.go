package kernel_test

import (
	"errors"
	"testing"

	"jobshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		guard := kernel.NewConstructorGuard()

		// Then
		assert.NotNil(t, guard)

		// Test with custom error
		customError := errors.New("test object not constructed")
		assert.NoError(t, guard.Validate(customError))

		// Test with nil error (should use default)
		assert.NoError(t, guard.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		guard := kernel.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := guard.Validate(customError)

		// Then
		assert.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var guard kernel.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := guard.Validate(expectedError)

		// Then
		assert.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var guard kernel.ConstructorGuard // zero value

		// When
		err := guard.Validate(nil)

		// Then
		assert.Error(t, err)
		assert.Equal(t, kernel.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how aggregates in this module
// embed the guard so zero-value structs fail Validate.
func TestConstructorGuardUsageExample(t *testing.T) {
	// A sample value object in the style of the module's aggregates
	type SerialTag struct {
		joNo   int
		serial string
		guard  kernel.ConstructorGuard
	}

	var ErrSerialTagNotConstructed = errors.New("SerialTag must be created via NewSerialTag")

	NewSerialTag := func(joNo int, serial string) (SerialTag, error) {
		if joNo <= 0 {
			return SerialTag{}, errors.New("jo number must be positive")
		}
		if serial == "" {
			return SerialTag{}, errors.New("serial is required")
		}
		return SerialTag{
			joNo:   joNo,
			serial: serial,
			guard:  kernel.NewConstructorGuard(),
		}, nil
	}

	ValidateSerialTag := func(s SerialTag) error {
		return s.guard.Validate(ErrSerialTagNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		tag, err := NewSerialTag(700, "A")

		// Then
		require.NoError(t, err)
		assert.NoError(t, ValidateSerialTag(tag))
		assert.Equal(t, 700, tag.joNo)
		assert.Equal(t, "A", tag.serial)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var tag SerialTag // zero value

		// When
		err := ValidateSerialTag(tag)

		// Then
		// Zero value tag has zero value guard which returns the error we pass
		assert.Error(t, err)
		assert.Equal(t, ErrSerialTagNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		// Test non-positive jo number
		_, err := NewSerialTag(0, "A")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "jo number must be positive")

		// Test empty serial
		_, err = NewSerialTag(700, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "serial is required")
	})
}

// TestConstructorGuardWithMultipleErrors demonstrates using ConstructorGuard
// with the per-aggregate not-constructed sentinels.
func TestConstructorGuardWithMultipleErrors(t *testing.T) {
	testCases := []struct {
		name          string
		expectedError error
	}{
		{
			name:          "work_order_not_constructed_error",
			expectedError: errors.New("WorkOrder must be created via its variant constructors"),
		},
		{
			name:          "assignment_not_constructed_error",
			expectedError: errors.New("Assignment must be created via NewAssignment factory method"),
		},
		{
			name:          "po_service_not_constructed_error",
			expectedError: errors.New("POService requires proper initialization through constructor"),
		},
		{
			name:          "nil_error_uses_default",
			expectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			guard := kernel.NewConstructorGuard()

			// When
			err := guard.Validate(tc.expectedError)

			// Then
			assert.NoError(t, err, "Properly constructed guard should not return error")
		})
	}
}

// TestConstructorGuardDefaultError verifies the default error behavior
func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("nil_error_uses_default_for_zero_value", func(t *testing.T) {
		// Given
		var guard kernel.ConstructorGuard // zero value

		// When
		err := guard.Validate(nil)

		// Then
		assert.Error(t, err)
		assert.Equal(t, kernel.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		// Then
		assert.NotNil(t, kernel.ErrDefaultConstructorGuard)
		assert.Contains(t, kernel.ErrDefaultConstructorGuard.Error(), "constructor")
		assert.Equal(t, "object must be created via its constructor", kernel.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardConcurrency verifies that ConstructorGuard is safe for concurrent use
func TestConstructorGuardConcurrency(t *testing.T) {
	guard := kernel.NewConstructorGuard()
	validationError := errors.New("not constructed")

	// Run multiple goroutines that validate the guard concurrently
	done := make(chan bool)
	for i := 0; i < 100; i++ {
		go func() {
			for j := 0; j < 1000; j++ {
				err := guard.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	// Wait for all goroutines to complete
	for i := 0; i < 100; i++ {
		<-done
	}
}

// TestConstructorGuardImmutability verifies that ConstructorGuard is immutable
func TestConstructorGuardImmutability(t *testing.T) {
	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		// Given
		guard := kernel.NewConstructorGuard()
		testError := errors.New("test error")

		// When
		guardCopy := guard // Pass by value

		// Then
		assert.NoError(t, guard.Validate(testError))
		assert.NoError(t, guardCopy.Validate(testError))
	})
}
