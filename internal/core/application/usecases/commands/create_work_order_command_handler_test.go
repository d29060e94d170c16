package commands_test

import (
	"context"
	"testing"

	"jobshop/internal/core/application/usecases/commands"
	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/core/domain/model/workorder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validHeader(t *testing.T) workorder.Header {
	t.Helper()

	orderDate, err := kernel.DateFromString("2026-03-10")
	require.NoError(t, err)
	rcdDate, err := kernel.DateFromString("2026-03-12")
	require.NoError(t, err)

	return workorder.Header{
		JoNumber:     42,
		JobOrderDate: orderDate,
		MtlRcdDate:   rcdDate,
		MtlChallanNo: 7001,
	}
}

func validItem() workorder.ItemDetails {
	return workorder.ItemDetails{
		ItemNo:          1,
		SerialNo:        "A",
		Qty:             5,
		ItemDescription: "Impeller hub",
		MOC:             "SS316",
		BinLocation:     "B-14",
	}
}

type intakeFixture struct {
	repo    *MockWorkOrderRepository
	uow     *MockWorkOrderUoW
	factory *MockWorkOrderUoWFactory
}

func newIntakeFixture(ctx context.Context) *intakeFixture {
	repo := &MockWorkOrderRepository{}
	uow := &MockWorkOrderUoW{}
	factory := &MockWorkOrderUoWFactory{}
	factory.On("Create").Return(uow)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("WorkOrderRepository").Return(repo)

	return &intakeFixture{repo: repo, uow: uow, factory: factory}
}

func TestCreateWorkOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should create job service order", func(t *testing.T) {
		ctx := t.Context()
		f := newIntakeFixture(ctx)

		f.repo.On("Add", ctx, mock.MatchedBy(func(wo *workorder.WorkOrder) bool {
			return wo.JobType() == workorder.JobService && wo.JobNo() == 500 && !wo.IsApproved()
		})).Return(nil)

		cmd, err := commands.NewCreateWorkOrderCommand(
			kernel.NewUUID(), workorder.JobService, workorder.Partial,
			500, "machining", validHeader(t), validItem())
		require.NoError(t, err)

		handler := commands.NewCreateWorkOrderCommandHandler(f.factory)
		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		f.uow.AssertCalled(t, "Commit", ctx)
	})

	t.Run("should reject tso order with category off the vocabulary", func(t *testing.T) {
		ctx := t.Context()
		f := newIntakeFixture(ctx)

		cmd, err := commands.NewCreateWorkOrderCommand(
			kernel.NewUUID(), workorder.TsoService, workorder.Partial,
			0, "machining", validHeader(t), validItem())
		require.NoError(t, err)

		handler := commands.NewCreateWorkOrderCommandHandler(f.factory)
		err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "job_category")
		f.repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("should create kanban order without item number", func(t *testing.T) {
		ctx := t.Context()
		f := newIntakeFixture(ctx)

		f.repo.On("Add", ctx, mock.MatchedBy(func(wo *workorder.WorkOrder) bool {
			return wo.JobType() == workorder.Kanban && wo.ItemNo() == 0
		})).Return(nil)

		item := validItem()
		item.ItemNo = 0

		cmd, err := commands.NewCreateWorkOrderCommand(
			kernel.NewUUID(), workorder.Kanban, workorder.Partial,
			0, "RAW_MATERIAL", validHeader(t), item)
		require.NoError(t, err)

		handler := commands.NewCreateWorkOrderCommandHandler(f.factory)
		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
	})
}

func TestDeleteWorkOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should refuse unconfirmed delete before touching storage", func(t *testing.T) {
		ctx := t.Context()
		f := newIntakeFixture(ctx)

		cmd, err := commands.NewDeleteWorkOrderCommand(kernel.NewUUID(), false)
		require.NoError(t, err)

		handler := commands.NewDeleteWorkOrderCommandHandler(f.factory)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrDeleteNotConfirmed)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
		f.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("should delete confirmed work order", func(t *testing.T) {
		ctx := t.Context()
		f := newIntakeFixture(ctx)

		wo := newApprovedWorkOrder(t, 5)
		f.repo.On("Get", ctx, wo.ID()).Return(wo, nil)
		f.repo.On("Delete", ctx, wo.ID()).Return(nil)

		cmd, err := commands.NewDeleteWorkOrderCommand(wo.ID(), true)
		require.NoError(t, err)

		handler := commands.NewDeleteWorkOrderCommandHandler(f.factory)
		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		f.uow.AssertCalled(t, "Commit", ctx)
	})
}
