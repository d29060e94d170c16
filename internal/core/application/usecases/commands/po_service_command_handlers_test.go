package commands_test

import (
	"context"
	"testing"

	"jobshop/internal/core/application/usecases/commands"
	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/core/domain/model/poservice"
	"jobshop/internal/core/ports"
	"jobshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPOServiceRepository struct{ mock.Mock }

func (m *MockPOServiceRepository) Add(ctx context.Context, aggregate *poservice.POService) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPOServiceRepository) Get(ctx context.Context, id kernel.UUID) (*poservice.POService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*poservice.POService), args.Error(1)
}

func (m *MockPOServiceRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPOServiceUoW struct{ mock.Mock }

func (m *MockPOServiceUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPOServiceUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPOServiceUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPOServiceUoW) POServiceRepository() ports.POServiceRepository {
	args := m.Called()
	return args.Get(0).(ports.POServiceRepository)
}

type MockPOServiceUoWFactory struct{ mock.Mock }

func (m *MockPOServiceUoWFactory) Create() commands.POServiceUoW {
	args := m.Called()
	return args.Get(0).(commands.POServiceUoW)
}

type poServiceFixture struct {
	repo    *MockPOServiceRepository
	uow     *MockPOServiceUoW
	factory *MockPOServiceUoWFactory
}

func newPOServiceFixture(ctx context.Context) *poServiceFixture {
	repo := &MockPOServiceRepository{}
	uow := &MockPOServiceUoW{}
	factory := &MockPOServiceUoWFactory{}
	factory.On("Create").Return(uow)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("POServiceRepository").Return(repo)

	return &poServiceFixture{
		repo:    repo,
		uow:     uow,
		factory: factory,
	}
}

func newPOService(t *testing.T) *poservice.POService {
	t.Helper()

	poDate, err := kernel.DateFromString("2026-04-01")
	require.NoError(t, err)

	record, err := poservice.NewPOService(
		kernel.NewUUID(), "PO-2026-117", poDate, "PN-88",
		"Shaft machining service", 40, 500, poservice.Fine)
	require.NoError(t, err)

	return record
}

func TestCreatePOServiceCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("registers the record", func(t *testing.T) {
		f := newPOServiceFixture(ctx)
		f.repo.On("Add", ctx, mock.MatchedBy(func(p *poservice.POService) bool {
			return p.PoNo() == "PO-2026-117" && p.JoCategory() == poservice.Fine
		})).Return(nil)

		poDate, err := kernel.DateFromString("2026-04-01")
		require.NoError(t, err)

		cmd, err := commands.NewCreatePOServiceCommand(
			kernel.NewUUID(), "PO-2026-117", poDate, "PN-88",
			"Shaft machining service", 40, 500, poservice.Fine)
		require.NoError(t, err)

		handler := commands.NewCreatePOServiceCommandHandler(f.factory)
		require.NoError(t, handler.Handle(ctx, cmd))

		f.repo.AssertExpectations(t)
		f.uow.AssertCalled(t, "Commit", ctx)
	})

	t.Run("unknown category is refused", func(t *testing.T) {
		poDate, err := kernel.DateFromString("2026-04-01")
		require.NoError(t, err)

		_, err = commands.NewCreatePOServiceCommand(
			kernel.NewUUID(), "PO-2026-117", poDate, "PN-88",
			"Shaft machining service", 40, 500, poservice.UnknownCategory)
		require.Error(t, err)
	})

	t.Run("zero-value command", func(t *testing.T) {
		f := newPOServiceFixture(ctx)
		handler := commands.NewCreatePOServiceCommandHandler(f.factory)
		err := handler.Handle(ctx, commands.CreatePOServiceCommand{})
		assert.ErrorIs(t, err, commands.ErrCreatePOServiceCommandIsNotConstructed)
	})
}

func TestDeletePOServiceCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("unconfirmed delete is refused before touching storage", func(t *testing.T) {
		f := newPOServiceFixture(ctx)

		cmd, err := commands.NewDeletePOServiceCommand(kernel.NewUUID(), false)
		require.NoError(t, err)

		handler := commands.NewDeletePOServiceCommandHandler(f.factory)
		err = handler.Handle(ctx, cmd)
		assert.ErrorIs(t, err, commands.ErrDeleteNotConfirmed)

		f.uow.AssertNotCalled(t, "Begin", ctx)
		f.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("confirmed delete removes the record", func(t *testing.T) {
		f := newPOServiceFixture(ctx)
		record := newPOService(t)
		f.repo.On("Get", ctx, record.ID()).Return(record, nil)
		f.repo.On("Delete", ctx, record.ID()).Return(nil)

		cmd, err := commands.NewDeletePOServiceCommand(record.ID(), true)
		require.NoError(t, err)

		handler := commands.NewDeletePOServiceCommandHandler(f.factory)
		require.NoError(t, handler.Handle(ctx, cmd))

		f.repo.AssertExpectations(t)
		f.uow.AssertCalled(t, "Commit", ctx)
	})

	t.Run("missing record", func(t *testing.T) {
		f := newPOServiceFixture(ctx)
		missingID := kernel.NewUUID()
		f.repo.On("Get", ctx, missingID).Return(nil,
			errs.NewObjectNotFoundError("record_id", missingID))

		cmd, err := commands.NewDeletePOServiceCommand(missingID, true)
		require.NoError(t, err)

		handler := commands.NewDeletePOServiceCommandHandler(f.factory)
		err = handler.Handle(ctx, cmd)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		f.uow.AssertNotCalled(t, "Commit", ctx)
	})
}
