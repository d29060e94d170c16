package guard_test

import (
	"errors"
	"testing"

	"jobshop/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		guard := guard.NewConstructorGuard()

		// Then
		assert.NotNil(t, guard)

		// Test with custom error
		customError := errors.New("test object not constructed")
		require.NoError(t, guard.Validate(customError))

		// Test with nil error (should use default)
		require.NoError(t, guard.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := guard.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var guard guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := guard.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard should be used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	// Define a sample domain object that uses ConstructorGuard
	type QuantityBlock struct {
		units       int
		machineCode string
		guard       guard.ConstructorGuard
	}

	var errBlockNotConstructed = errors.New("QuantityBlock must be created via NewQuantityBlock")

	newQuantityBlock := func(units int, machineCode string) (QuantityBlock, error) {
		if units < 0 {
			return QuantityBlock{}, errors.New("units cannot be negative")
		}
		if machineCode == "" {
			return QuantityBlock{}, errors.New("machine code is required")
		}
		return QuantityBlock{
			units:       units,
			machineCode: machineCode,
			guard:       guard.NewConstructorGuard(),
		}, nil
	}

	validateBlock := func(b QuantityBlock) error {
		return b.guard.Validate(errBlockNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		block, err := newQuantityBlock(5, "SFL1")

		// Then
		require.NoError(t, err)
		require.NoError(t, validateBlock(block))
		assert.Equal(t, 5, block.units)
		assert.Equal(t, "SFL1", block.machineCode)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var block QuantityBlock // zero value

		// When
		err := validateBlock(block)

		// Then
		// Zero value block has zero value guard which returns the error we pass
		require.Error(t, err)
		assert.Equal(t, errBlockNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		// Test negative units
		_, err := newQuantityBlock(-5, "SFL1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "units cannot be negative")

		// Test empty machine code
		_, err = newQuantityBlock(5, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "machine code is required")
	})
}

// TestConstructorGuardRealWorldExample shows a better pattern using embedded types.
func TestConstructorGuardRealWorldExample(t *testing.T) {
	// Define error once
	var errToolingNotConstructed = errors.New("ToolingRecord must be created via NewToolingRecord")

	// Define a guard-aware base type
	type guardedTooling struct {
		guard guard.ConstructorGuard
	}

	newGuardedTooling := func() guardedTooling {
		return guardedTooling{
			guard: guard.NewConstructorGuard(),
		}
	}

	validateGuardedTooling := func(g guardedTooling) error {
		return g.guard.Validate(errToolingNotConstructed)
	}

	// Define the actual domain object
	type ToolingRecord struct {
		guardedTooling
		id       string
		name     string
		lifespan int
	}

	newToolingRecord := func(id, name string, lifespan int) (ToolingRecord, error) {
		if id == "" {
			return ToolingRecord{}, errors.New("tooling ID is required")
		}
		if name == "" {
			return ToolingRecord{}, errors.New("tooling name is required")
		}
		if lifespan < 0 {
			return ToolingRecord{}, errors.New("tooling lifespan cannot be negative")
		}
		return ToolingRecord{
			guardedTooling: newGuardedTooling(),
			id:             id,
			name:           name,
			lifespan:       lifespan,
		}, nil
	}

	t.Run("valid_tooling_construction", func(t *testing.T) {
		// When
		record, err := newToolingRecord("123", "Boring bar", 999)

		// Then
		require.NoError(t, err)
		require.NoError(t, validateGuardedTooling(record.guardedTooling))
		assert.Equal(t, "123", record.id)
		assert.Equal(t, "Boring bar", record.name)
		assert.Equal(t, 999, record.lifespan)
	})

	t.Run("zero_value_tooling_fails_validation", func(t *testing.T) {
		// Given
		var record ToolingRecord // zero value

		// When
		err := validateGuardedTooling(record.guardedTooling)

		// Then
		// Zero value has zero value guard which returns the error we pass
		require.Error(t, err)
		assert.Equal(t, errToolingNotConstructed, err)
	})
}

// TestConstructorGuardWithMultipleErrors demonstrates using ConstructorGuard
// with different error types and messages.
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
			name:          "category_entry_not_constructed_error",
			expectedError: errors.New("CategoryEntry requires proper initialization through constructor"),
		},
		{
			name:          "nil_error_uses_default",
			expectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			guard := guard.NewConstructorGuard()

			// When
			err := guard.Validate(tc.expectedError)

			// Then
			require.NoError(t, err, "Properly constructed guard should not return error")
		})
	}
}

// TestConstructorGuardDefaultError verifies the default error behavior.
func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("nil_error_uses_default_for_zero_value", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		// Then
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Contains(t, guard.ErrDefaultConstructorGuard.Error(), "constructor")
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// BenchmarkConstructorGuard measures the performance overhead of using ConstructorGuard.
func BenchmarkConstructorGuard(b *testing.B) {
	b.Run("NewConstructorGuard", func(b *testing.B) {
		b.ResetTimer()
		for range b.N {
			_ = guard.NewConstructorGuard()
		}
	})

	b.Run("Validate_Success", func(b *testing.B) {
		guard := guard.NewConstructorGuard()
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = guard.Validate(err)
		}
	})

	b.Run("Validate_ZeroValue", func(b *testing.B) {
		var guard guard.ConstructorGuard
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = guard.Validate(err)
		}
	})
}

// TestConstructorGuardConcurrency verifies that ConstructorGuard is safe for concurrent use.
func TestConstructorGuardConcurrency(t *testing.T) {
	guard := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	// Run multiple goroutines that validate the guard concurrently
	done := make(chan bool)
	for range 100 {
		go func() {
			for range 1000 {
				err := guard.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	// Wait for all goroutines to complete
	for range 100 {
		<-done
	}
}

// TestConstructorGuardImmutability verifies that ConstructorGuard is immutable.
func TestConstructorGuardImmutability(t *testing.T) {
	t.Run("guard_fields_are_not_modifiable", func(t *testing.T) {
		// Given
		originalError := errors.New("original error")
		g := guard.NewConstructorGuard()

		// When
		// Try to create another guard
		anotherError := errors.New("another error")
		_ = guard.NewConstructorGuard()

		// Then
		// Original guard should still validate successfully
		require.NoError(t, g.Validate(originalError))
		require.NoError(t, g.Validate(anotherError))
	})

	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		testError := errors.New("test error")

		// When
		guardCopy := guard // Pass by value

		// Then
		require.NoError(t, guard.Validate(testError))
		require.NoError(t, guardCopy.Validate(testError))
	})
}
