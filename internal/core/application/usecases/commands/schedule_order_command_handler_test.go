package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// Mock implementations for testing.
type MockDriverRepository struct {
	mock.Mock
}

func (m *MockDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDriverRepository) Upsert(ctx context.Context, aggregate *driver.Driver) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id int) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetForUpdate(ctx context.Context, id int) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAll(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int) (*order.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByDriverInWindow(
	ctx context.Context,
	driverID int,
	window kernel.TimeWindow,
) ([]*order.Order, error) {
	args := m.Called(ctx, driverID, window)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct {
	mock.Mock
}

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockDriverUoWFactory struct {
	mock.Mock
}

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}

type MockOrderUoWFactory struct {
	mock.Mock
}

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockLocationProvider struct {
	mock.Mock
}

func (m *MockLocationProvider) Positions(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

const orderDuration = time.Hour

func scheduleCmd(t *testing.T) commands.ScheduleOrderCommand {
	t.Helper()
	cmd, err := commands.NewScheduleOrderCommand(
		7,
		pickupAt,
		kernel.NewLocation(10, 20),
		kernel.NewLocation(30, 40),
	)
	require.NoError(t, err)
	return cmd
}

func lockedDriver(t *testing.T) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(7, kernel.NewLocation(0, 0), pickupAt.Add(-time.Hour))
	require.NoError(t, err)
	return d
}

func TestScheduleOrderCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := scheduleCmd(t)
	window := kernel.NewOrderWindow(pickupAt, orderDuration)

	mockDrivers := new(MockDriverRepository)
	mockOrders := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DriverRepository").Return(mockDrivers).Once(),
		mockDrivers.On("GetForUpdate", ctx, 7).Return(lockedDriver(t), nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrders).Once(),
		mockOrders.On("GetByDriverInWindow", ctx, 7, window).Return([]*order.Order{}, nil).Once(),
		mockOrders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				// The store assigns the id on insert.
				require.NoError(t, args.Get(1).(*order.Order).AssignID(42))
			}).
			Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewScheduleOrderCommandHandler(mockFactory, orderDuration)

	// Act
	orderID, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 42, orderID)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockDrivers.AssertExpectations(t)
	mockOrders.AssertExpectations(t)
}

func TestScheduleOrderCommandHandler_Handle_InvalidCommand(t *testing.T) {
	ctx := t.Context()
	var invalidCmd commands.ScheduleOrderCommand

	mockFactory := new(MockUoWFactory)
	handler := commands.NewScheduleOrderCommandHandler(mockFactory, orderDuration)

	_, err := handler.Handle(ctx, invalidCmd)

	require.ErrorIs(t, err, commands.ErrScheduleOrderCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}

func TestScheduleOrderCommandHandler_Handle_PastPickupTime(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewScheduleOrderCommand(
		7,
		time.Now().Add(-time.Minute),
		kernel.NewLocation(10, 20),
		kernel.NewLocation(30, 40),
	)
	require.NoError(t, err)

	mockFactory := new(MockUoWFactory)
	handler := commands.NewScheduleOrderCommandHandler(mockFactory, orderDuration)

	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrPastPickupTime)
	mockFactory.AssertExpectations(t)
}

func TestScheduleOrderCommandHandler_Handle_UnknownDriver(t *testing.T) {
	ctx := t.Context()
	cmd := scheduleCmd(t)

	mockDrivers := new(MockDriverRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DriverRepository").Return(mockDrivers).Once(),
		mockDrivers.On("GetForUpdate", ctx, 7).
			Return((*driver.Driver)(nil), errs.NewObjectNotFoundError("driver_id", 7)).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewScheduleOrderCommandHandler(mockFactory, orderDuration)

	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrDriverDoesNotExist)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockDrivers.AssertExpectations(t)
}

func TestScheduleOrderCommandHandler_Handle_DriverIsBusy(t *testing.T) {
	ctx := t.Context()
	cmd := scheduleCmd(t)
	window := kernel.NewOrderWindow(pickupAt, orderDuration)

	conflict, err := order.RestoreOrder(
		9,
		7,
		pickupAt.Add(30*time.Minute),
		kernel.NewLocation(1, 1),
		kernel.NewLocation(2, 2),
	)
	require.NoError(t, err)

	mockDrivers := new(MockDriverRepository)
	mockOrders := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DriverRepository").Return(mockDrivers).Once(),
		mockDrivers.On("GetForUpdate", ctx, 7).Return(lockedDriver(t), nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrders).Once(),
		mockOrders.On("GetByDriverInWindow", ctx, 7, window).Return([]*order.Order{conflict}, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewScheduleOrderCommandHandler(mockFactory, orderDuration)

	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrDriverIsBusy)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockDrivers.AssertExpectations(t)
	mockOrders.AssertExpectations(t)
}

func TestScheduleOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := scheduleCmd(t)
	window := kernel.NewOrderWindow(pickupAt, orderDuration)
	expectedError := errors.New("insert failed")

	mockDrivers := new(MockDriverRepository)
	mockOrders := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DriverRepository").Return(mockDrivers).Once(),
		mockDrivers.On("GetForUpdate", ctx, 7).Return(lockedDriver(t), nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrders).Once(),
		mockOrders.On("GetByDriverInWindow", ctx, 7, window).Return([]*order.Order{}, nil).Once(),
		mockOrders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewScheduleOrderCommandHandler(mockFactory, orderDuration)

	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockDrivers.AssertExpectations(t)
	mockOrders.AssertExpectations(t)
}
