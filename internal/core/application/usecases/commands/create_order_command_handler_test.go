package commands_test

import (
	"context"
	"errors"
	"testing"

	"servicetrack/internal/core/application/usecases/commands"
	"servicetrack/internal/core/domain/model/audit"
	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/core/domain/model/order"
	"servicetrack/internal/core/domain/model/principal"
	"servicetrack/internal/core/ports"
	"servicetrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetByTrackNumber(_ context.Context, _ kernel.TrackNumber) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCounterRepository struct{ mock.Mock }

func (m *MockCounterRepository) NextTrackNumber(ctx context.Context) (kernel.TrackNumber, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.TrackNumber), args.Error(1)
}

type MockPrincipalDirectory struct{ mock.Mock }

func (m *MockPrincipalDirectory) Get(ctx context.Context, id kernel.UUID) (*principal.Principal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*principal.Principal), args.Error(1)
}
func (m *MockPrincipalDirectory) GetAllApprovedByRoles(
	_ context.Context, _ ...principal.Role,
) ([]*principal.Principal, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockPrincipalDirectory) GetAllInDivision(_ context.Context, _ string) ([]*principal.Principal, error) {
	return nil, errors.New("not implemented in mock")
}

// MockRecorder captures audit entries without any persistence behind it.
type MockRecorder struct {
	entries []audit.Entry
}

func (m *MockRecorder) Record(_ context.Context, entry audit.Entry) {
	m.entries = append(m.entries, entry)
}

type MockCreateOrderUoW struct{ mock.Mock }

func (m *MockCreateOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreateOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreateOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreateOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockCreateOrderUoW) CounterRepository() ports.CounterRepository {
	args := m.Called()
	return args.Get(0).(ports.CounterRepository)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

func staffActor(t *testing.T) *principal.Principal {
	t.Helper()
	actor, err := principal.NewPrincipal(
		kernel.NewUUID(), "budi@servicepoint.example", "Budi",
		principal.RoleStaff, "service", true, true,
	)
	require.NoError(t, err)
	return actor
}

func technicianActor(t *testing.T) *principal.Principal {
	t.Helper()
	actor, err := principal.NewPrincipal(
		kernel.NewUUID(), "tono@servicepoint.example", "Tono",
		principal.RoleTechnician, "service", true, true,
	)
	require.NoError(t, err)
	return actor
}

func mustTrackNumber(t *testing.T, value int64) kernel.TrackNumber {
	t.Helper()
	tn, err := kernel.NewTrackNumber(value)
	require.NoError(t, err)
	return tn
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := staffActor(t)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Siti", "Asus laptop", "no power", actor)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	counter := new(MockCounterRepository)
	uow := new(MockCreateOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CounterRepository").Return(counter).Once(),
		counter.On("NextTrackNumber", ctx).Return(mustTrackNumber(t, 34), nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	recorder := new(MockRecorder)

	h := commands.NewCreateOrderCommandHandler(factory, recorder)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "TNS-00034", created.TrackNumber().String())
	require.Equal(t, order.Pending, created.Status())
	require.Len(t, created.StatusLog(), 1)

	require.Len(t, recorder.entries, 1)
	require.Equal(t, audit.ActionCreateOrder, recorder.entries[0].Action())
	require.True(t, recorder.entries[0].TargetID().IsEqual(created.ID()))

	repo.AssertExpectations(t)
	counter.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockCreateOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, new(MockRecorder))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_NoSession(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Siti", "Asus laptop", "no power", nil)
	require.NoError(t, err)

	factory := new(MockCreateOrderUoWFactory)
	recorder := new(MockRecorder)
	h := commands.NewCreateOrderCommandHandler(factory, recorder)
	_, err = h.Handle(ctx, cmd)

	var denied *errs.AccessDeniedError
	require.ErrorAs(t, err, &denied)
	require.Equal(t, "no_session", denied.Reason)
	require.Empty(t, recorder.entries)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_ReadOnlyRoleDenied(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "Siti", "Asus laptop", "no power", technicianActor(t),
	)
	require.NoError(t, err)

	factory := new(MockCreateOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, new(MockRecorder))
	_, err = h.Handle(ctx, cmd)

	var denied *errs.AccessDeniedError
	require.ErrorAs(t, err, &denied)
	require.Equal(t, "role_mismatch", denied.Reason)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Siti", "Asus laptop", "no power", staffActor(t))
	require.NoError(t, err)

	uow := new(MockCreateOrderUoW)
	factory := new(MockCreateOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, new(MockRecorder))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_MissingCounterRow(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Siti", "Asus laptop", "no power", staffActor(t))
	require.NoError(t, err)

	counter := new(MockCounterRepository)
	uow := new(MockCreateOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CounterRepository").Return(counter).Once(),
		counter.On("NextTrackNumber", ctx).
			Return(kernel.TrackNumber{}, errs.NewConfigurationError("counter row service_request_counter is missing")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	recorder := new(MockRecorder)

	h := commands.NewCreateOrderCommandHandler(factory, recorder)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConfiguration)
	require.Empty(t, recorder.entries)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Siti", "Asus laptop", "no power", staffActor(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	counter := new(MockCounterRepository)
	uow := new(MockCreateOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CounterRepository").Return(counter).Once(),
		counter.On("NextTrackNumber", ctx).Return(mustTrackNumber(t, 34), nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	recorder := new(MockRecorder)

	h := commands.NewCreateOrderCommandHandler(factory, recorder)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Empty(t, recorder.entries)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Siti", "Asus laptop", "no power", staffActor(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	counter := new(MockCounterRepository)
	uow := new(MockCreateOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CounterRepository").Return(counter).Once(),
		counter.On("NextTrackNumber", ctx).Return(mustTrackNumber(t, 34), nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	recorder := new(MockRecorder)

	h := commands.NewCreateOrderCommandHandler(factory, recorder)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	// No audit record without a committed mutation.
	require.Empty(t, recorder.entries)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
