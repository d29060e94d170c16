package commands_test

import (
	"context"
	"testing"

	"jobshop/internal/core/application/usecases/commands"
	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/core/domain/model/workorder"
	"jobshop/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWorkOrderUoW struct{ mock.Mock }

func (m *MockWorkOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkOrderUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}

type MockWorkOrderUoWFactory struct{ mock.Mock }

func (m *MockWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkOrderUoW)
}

func assemblyHeader() workorder.Header {
	orderDate, _ := kernel.DateFromString("2026-03-10")
	rcdDate, _ := kernel.DateFromString("2026-03-12")
	return workorder.Header{
		JoNumber:     700,
		JobOrderDate: orderDate,
		MtlRcdDate:   rcdDate,
		MtlChallanNo: 9001,
	}
}

func assemblyItem(itemNo, qty int) workorder.ItemDetails {
	return workorder.ItemDetails{
		ItemNo:          itemNo,
		SerialNo:        "A",
		Qty:             qty,
		ItemDescription: "Sub item",
		MOC:             "MS",
		BinLocation:     "C-2",
	}
}

func ids(n int) []kernel.UUID {
	out := make([]kernel.UUID, n)
	for i := range out {
		out[i] = kernel.NewUUID()
	}
	return out
}

func TestCreateAssemblyCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	repo := &MockWorkOrderRepository{}
	uow := &MockWorkOrderUoW{}
	factory := &MockWorkOrderUoWFactory{}
	factory.On("Create").Return(uow)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("WorkOrderRepository").Return(repo)

	repo.On("Add", ctx, mock.MatchedBy(func(wo *workorder.WorkOrder) bool {
		return wo.SubType() == workorder.Assembly && wo.JoNumber() == 700
	})).Return(nil).Times(3)

	cmd, err := commands.NewCreateAssemblyCommand(
		ids(3), workorder.JobService, 700, "machining", assemblyHeader(),
		[]workorder.ItemDetails{
			assemblyItem(1, 2),
			assemblyItem(2, 4),
			assemblyItem(3, 1),
		})
	require.NoError(t, err)

	handler := commands.NewCreateAssemblyCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "Add", 3)
	uow.AssertCalled(t, "Commit", ctx)
}

func TestCreateAssemblyCommandHandler_Handle_InvalidItemLeavesNothing(t *testing.T) {
	ctx := t.Context()

	repo := &MockWorkOrderRepository{}
	uow := &MockWorkOrderUoW{}
	factory := &MockWorkOrderUoWFactory{}
	factory.On("Create").Return(uow)

	cmd, err := commands.NewCreateAssemblyCommand(
		ids(2), workorder.JobService, 700, "machining", assemblyHeader(),
		[]workorder.ItemDetails{
			assemblyItem(1, 2),
			assemblyItem(2, -1), // invalid quantity
		})
	require.NoError(t, err)

	handler := commands.NewCreateAssemblyCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 2")
	assert.Contains(t, err.Error(), "qty")
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestCreateAssemblyCommandHandler_Handle_StorageFailureRollsBack(t *testing.T) {
	ctx := t.Context()

	repo := &MockWorkOrderRepository{}
	uow := &MockWorkOrderUoW{}
	factory := &MockWorkOrderUoWFactory{}
	factory.On("Create").Return(uow)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("WorkOrderRepository").Return(repo)

	repo.On("Add", ctx, mock.Anything).Return(nil).Once()
	repo.On("Add", ctx, mock.Anything).Return(assert.AnError).Once()

	cmd, err := commands.NewCreateAssemblyCommand(
		ids(2), workorder.JobService, 700, "machining", assemblyHeader(),
		[]workorder.ItemDetails{
			assemblyItem(1, 2),
			assemblyItem(2, 4),
		})
	require.NoError(t, err)

	handler := commands.NewCreateAssemblyCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 2")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertCalled(t, "Rollback", ctx)
}

func TestCreateAssemblyCommand_Validation(t *testing.T) {
	t.Run("should reject empty batch", func(t *testing.T) {
		_, err := commands.NewCreateAssemblyCommand(
			nil, workorder.JobService, 700, "machining", assemblyHeader(), nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("should reject mismatched identifiers", func(t *testing.T) {
		_, err := commands.NewCreateAssemblyCommand(
			ids(1), workorder.JobService, 700, "machining", assemblyHeader(),
			[]workorder.ItemDetails{assemblyItem(1, 2), assemblyItem(2, 1)})

		require.Error(t, err)
	})

	t.Run("zero-value command fails validation", func(t *testing.T) {
		var cmd commands.CreateAssemblyCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateAssemblyCommandIsNotConstructed)
	})
}
