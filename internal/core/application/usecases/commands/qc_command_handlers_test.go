package commands_test

import (
	"context"
	"testing"

	"jobshop/internal/core/application/usecases/commands"
	"jobshop/internal/core/domain/model/assignment"
	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAssignmentWithStatus(t *testing.T, status assignment.Status) *assignment.Assignment {
	t.Helper()

	assigningDate, err := kernel.DateFromString("2026-03-15")
	require.NoError(t, err)

	entry, err := assignment.RestoreAssignment(
		kernel.NewUUID(), 42, 1, "A", latheSelection(), 3, assigningDate, status)
	require.NoError(t, err)

	return entry
}

type qcFixture struct {
	assignmentRepo *MockAssignmentRepository
	uow            *MockAssignmentUoW
	factory        *MockAssignmentUoWFactory
}

func newQCFixture(ctx context.Context) *qcFixture {
	assignmentRepo := &MockAssignmentRepository{}
	uow := &MockAssignmentUoW{}
	factory := &MockAssignmentUoWFactory{}
	factory.On("Create").Return(uow)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("AssignmentRepository").Return(assignmentRepo)

	return &qcFixture{
		assignmentRepo: assignmentRepo,
		uow:            uow,
		factory:        factory,
	}
}

func TestMarkReadyForQCCommandHandler_Handle(t *testing.T) {
	t.Run("should move pending assignment to ready for QC", func(t *testing.T) {
		ctx := t.Context()
		f := newQCFixture(ctx)

		entry := newAssignmentWithStatus(t, assignment.Pending)
		f.assignmentRepo.On("Get", ctx, entry.ID()).Return(entry, nil)
		f.assignmentRepo.On("Update", ctx, entry).Return(nil)

		cmd, err := commands.NewMarkReadyForQCCommand(entry.ID())
		require.NoError(t, err)

		handler := commands.NewMarkReadyForQCCommandHandler(f.factory)
		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, assignment.ReadyForQC, entry.Status())
		f.uow.AssertCalled(t, "Commit", ctx)
	})

	t.Run("should reject accepted assignment", func(t *testing.T) {
		ctx := t.Context()
		f := newQCFixture(ctx)

		entry := newAssignmentWithStatus(t, assignment.Accepted)
		f.assignmentRepo.On("Get", ctx, entry.ID()).Return(entry, nil)

		cmd, err := commands.NewMarkReadyForQCCommand(entry.ID())
		require.NoError(t, err)

		handler := commands.NewMarkReadyForQCCommandHandler(f.factory)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, assignment.ErrInvalidTransition)
		assert.Equal(t, assignment.Accepted, entry.Status())
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

func TestAcceptAssignmentCommandHandler_Handle(t *testing.T) {
	t.Run("should accept assignment awaiting inspection", func(t *testing.T) {
		ctx := t.Context()
		f := newQCFixture(ctx)

		entry := newAssignmentWithStatus(t, assignment.ReadyForQC)
		f.assignmentRepo.On("Get", ctx, entry.ID()).Return(entry, nil)
		f.assignmentRepo.On("Update", ctx, entry).Return(nil)

		cmd, err := commands.NewAcceptAssignmentCommand(entry.ID())
		require.NoError(t, err)

		handler := commands.NewAcceptAssignmentCommandHandler(f.factory)
		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, assignment.Accepted, entry.Status())
	})

	t.Run("accepting twice is a no-op", func(t *testing.T) {
		ctx := t.Context()
		f := newQCFixture(ctx)

		entry := newAssignmentWithStatus(t, assignment.Accepted)
		f.assignmentRepo.On("Get", ctx, entry.ID()).Return(entry, nil)
		f.assignmentRepo.On("Update", ctx, entry).Return(nil)

		cmd, err := commands.NewAcceptAssignmentCommand(entry.ID())
		require.NoError(t, err)

		handler := commands.NewAcceptAssignmentCommandHandler(f.factory)
		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, assignment.Accepted, entry.Status())
	})

	t.Run("should not accept pending assignment", func(t *testing.T) {
		ctx := t.Context()
		f := newQCFixture(ctx)

		entry := newAssignmentWithStatus(t, assignment.Pending)
		f.assignmentRepo.On("Get", ctx, entry.ID()).Return(entry, nil)

		cmd, err := commands.NewAcceptAssignmentCommand(entry.ID())
		require.NoError(t, err)

		handler := commands.NewAcceptAssignmentCommandHandler(f.factory)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, assignment.ErrInvalidTransition)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

func TestRejectAssignmentCommandHandler_Handle(t *testing.T) {
	t.Run("should reject assignment awaiting inspection", func(t *testing.T) {
		ctx := t.Context()
		f := newQCFixture(ctx)

		entry := newAssignmentWithStatus(t, assignment.ReadyForQC)
		f.assignmentRepo.On("Get", ctx, entry.ID()).Return(entry, nil)
		f.assignmentRepo.On("Update", ctx, entry).Return(nil)

		cmd, err := commands.NewRejectAssignmentCommand(entry.ID())
		require.NoError(t, err)

		handler := commands.NewRejectAssignmentCommandHandler(f.factory)
		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, assignment.Rejected, entry.Status())
		assert.False(t, entry.CountsAgainstQuantity())
	})

	t.Run("should not reject terminal assignment", func(t *testing.T) {
		ctx := t.Context()
		f := newQCFixture(ctx)

		entry := newAssignmentWithStatus(t, assignment.Rejected)
		f.assignmentRepo.On("Get", ctx, entry.ID()).Return(entry, nil)

		cmd, err := commands.NewRejectAssignmentCommand(entry.ID())
		require.NoError(t, err)

		handler := commands.NewRejectAssignmentCommandHandler(f.factory)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, assignment.ErrInvalidTransition)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("missing assignment propagates not found", func(t *testing.T) {
		ctx := t.Context()
		f := newQCFixture(ctx)

		id := kernel.NewUUID()
		f.assignmentRepo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("assignment_id", id))

		cmd, err := commands.NewRejectAssignmentCommand(id)
		require.NoError(t, err)

		handler := commands.NewRejectAssignmentCommandHandler(f.factory)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
