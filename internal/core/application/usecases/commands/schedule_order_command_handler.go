package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrDriverIsBusy signals that the driver already has an order whose
	// pickup time falls within one order duration of the requested slot.
	ErrDriverIsBusy = errors.New("driver is busy")

	// ErrDriverDoesNotExist signals that the requested driver id is unknown.
	ErrDriverDoesNotExist = errors.New("driver does not exist")

	// ErrPastPickupTime signals an attempt to book a slot that already passed.
	ErrPastPickupTime = errors.New("it is not possible to schedule an order for a past time")
)

// ScheduleOrderCommandHandler handles the business logic for booking a
// delivery slot. A driver can hold at most one order per order-duration
// window, so the handler checks the driver's existing bookings around the
// requested pickup time before inserting.
//
// The check and the insert run in one transaction that first locks the
// driver's row. Concurrent requests for the same driver serialize on that
// lock; without it both could pass the conflict check and double-book.
type ScheduleOrderCommandHandler struct {
	uowFactory    UoWFactory
	orderDuration time.Duration
}

// NewScheduleOrderCommandHandler creates a handler for slot booking.
// orderDuration is how long one delivery occupies a driver; two orders of the
// same driver conflict when their pickup times are less than or exactly one
// duration apart.
func NewScheduleOrderCommandHandler(uowFactory UoWFactory, orderDuration time.Duration) ScheduleOrderCommandHandler {
	return ScheduleOrderCommandHandler{
		uowFactory:    uowFactory,
		orderDuration: orderDuration,
	}
}

// Handle processes the slot booking command and returns the id of the newly
// stored order.
//
// Returns ErrPastPickupTime for a pickup in the past, ErrDriverDoesNotExist
// for an unknown driver and ErrDriverIsBusy when the requested slot conflicts
// with an existing booking.
func (h ScheduleOrderCommandHandler) Handle(ctx context.Context, cmd ScheduleOrderCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	if cmd.PickupTime().Before(time.Now()) {
		return 0, ErrPastPickupTime
	}

	newOrder, err := order.NewOrder(cmd.DriverID(), cmd.PickupTime(), cmd.PickupLocation(), cmd.DeliveryLocation())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// Row lock on the driver, held until commit.
	if _, err = uow.DriverRepository().GetForUpdate(ctx, cmd.DriverID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return 0, ErrDriverDoesNotExist
		}
		return 0, err
	}

	ordersRepo := uow.OrderRepository()

	window := kernel.NewOrderWindow(cmd.PickupTime(), h.orderDuration)
	conflicting, err := ordersRepo.GetByDriverInWindow(ctx, cmd.DriverID(), window)
	if err != nil {
		return 0, err
	}
	if len(conflicting) > 0 {
		return 0, ErrDriverIsBusy
	}

	if err = ordersRepo.Add(ctx, newOrder); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newOrder.ID(), nil
}
