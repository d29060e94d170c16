package assignment_test

import (
	"testing"

	"jobshop/internal/core/domain/model/assignment"
	"jobshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []assignment.Status{
		assignment.Pending,
		assignment.ReadyForQC,
		assignment.Accepted,
		assignment.Rejected,
	}
	for _, s := range valid {
		assert.NoError(t, s.Validate(), s.String())
	}

	assert.Error(t, assignment.UnknownStatus.Validate())
	assert.Error(t, assignment.Status(99).Validate())
}

func TestStatus_String(t *testing.T) {
	tests := map[assignment.Status]string{
		assignment.UnknownStatus: "UNKNOWN",
		assignment.Pending:       "PENDING",
		assignment.ReadyForQC:    "READY_FOR_QC",
		assignment.Accepted:      "ACCEPTED",
		assignment.Rejected:      "REJECTED",
		assignment.Status(99):    "UNKNOWN",
	}
	for s, expected := range tests {
		assert.Equal(t, expected, s.String())
	}
}

func TestStatusFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected assignment.Status
		wantErr  bool
	}{
		{"PENDING", assignment.Pending, false},
		{"READY_FOR_QC", assignment.ReadyForQC, false},
		{"ACCEPTED", assignment.Accepted, false},
		{"REJECTED", assignment.Rejected, false},
		{"pending", assignment.UnknownStatus, true},
		{"UNKNOWN", assignment.UnknownStatus, true},
		{"", assignment.UnknownStatus, true},
	}

	for _, tt := range tests {
		got, err := assignment.StatusFromString(tt.input)
		if tt.wantErr {
			require.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, got)
	}
}

func TestStatus_MarkReadyForQC(t *testing.T) {
	t.Run("should transition from pending", func(t *testing.T) {
		next, err := assignment.Pending.MarkReadyForQC()

		require.NoError(t, err)
		assert.Equal(t, assignment.ReadyForQC, next)
	})

	t.Run("should fail from any other state", func(t *testing.T) {
		for _, s := range []assignment.Status{
			assignment.ReadyForQC,
			assignment.Accepted,
			assignment.Rejected,
			assignment.UnknownStatus,
		} {
			_, err := s.MarkReadyForQC()
			require.ErrorIs(t, err, assignment.ErrInvalidTransition, s.String())
			require.NotErrorIs(t, err, errs.ErrValueIsInvalid, s.String())
		}
	})
}

func TestStatus_Accept(t *testing.T) {
	t.Run("should transition from ready for QC", func(t *testing.T) {
		next, err := assignment.ReadyForQC.Accept()

		require.NoError(t, err)
		assert.Equal(t, assignment.Accepted, next)
	})

	t.Run("should be idempotent when already accepted", func(t *testing.T) {
		next, err := assignment.Accepted.Accept()

		require.NoError(t, err)
		assert.Equal(t, assignment.Accepted, next)
	})

	t.Run("should fail from pending or rejected", func(t *testing.T) {
		for _, s := range []assignment.Status{assignment.Pending, assignment.Rejected} {
			_, err := s.Accept()
			require.ErrorIs(t, err, assignment.ErrInvalidTransition, s.String())
		}
	})
}

func TestStatus_Reject(t *testing.T) {
	t.Run("should transition from ready for QC", func(t *testing.T) {
		next, err := assignment.ReadyForQC.Reject()

		require.NoError(t, err)
		assert.Equal(t, assignment.Rejected, next)
	})

	t.Run("should fail from any other state", func(t *testing.T) {
		for _, s := range []assignment.Status{
			assignment.Pending,
			assignment.Accepted,
			assignment.Rejected,
		} {
			_, err := s.Reject()
			require.ErrorIs(t, err, assignment.ErrInvalidTransition, s.String())
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, assignment.Pending.IsTerminal())
	assert.False(t, assignment.ReadyForQC.IsTerminal())
	assert.True(t, assignment.Accepted.IsTerminal())
	assert.True(t, assignment.Rejected.IsTerminal())
}
