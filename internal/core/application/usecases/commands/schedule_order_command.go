package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrScheduleOrderCommandIsNotConstructed = errors.New(
	"ScheduleOrderCommand must be created via NewScheduleOrderCommand constructor",
)

// ScheduleOrderCommand represents a request to book a delivery slot for a
// driver. Encapsulates the pickup appointment and the two endpoints of the
// trip.
//
// Example:
//
//	cmd, err := NewScheduleOrderCommand(driverID, pickupAt, pickup, delivery)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewScheduleOrderCommandHandler(uowFactory, orderDuration)
//	orderID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrDriverIsBusy) {
//	    // driver already booked around that time
//	}
type ScheduleOrderCommand struct { //nolint:recvcheck //using for validation
	driverID         int
	pickupTime       time.Time
	pickupLocation   kernel.Location
	deliveryLocation kernel.Location

	guard guard.ConstructorGuard
}

// NewScheduleOrderCommand creates a command to book a delivery slot.
// Validates that the driver id is positive and the pickup time is set.
func NewScheduleOrderCommand(
	driverID int,
	pickupTime time.Time,
	pickupLocation kernel.Location,
	deliveryLocation kernel.Location,
) (ScheduleOrderCommand, error) {
	command := ScheduleOrderCommand{
		pickupLocation:   pickupLocation,
		deliveryLocation: deliveryLocation,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setPickupTime(pickupTime),
	); err != nil {
		return ScheduleOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrScheduleOrderCommandIsNotConstructed if validation fails.
func (c ScheduleOrderCommand) Validate() error {
	return c.guard.Validate(ErrScheduleOrderCommandIsNotConstructed)
}

// DriverID returns the id of the driver the slot is requested for.
func (c ScheduleOrderCommand) DriverID() int {
	return c.driverID
}

// PickupTime returns the pickup appointment time.
func (c ScheduleOrderCommand) PickupTime() time.Time {
	return c.pickupTime
}

// PickupLocation returns the pickup point of the trip.
func (c ScheduleOrderCommand) PickupLocation() kernel.Location {
	return c.pickupLocation
}

// DeliveryLocation returns the drop-off point of the trip.
func (c ScheduleOrderCommand) DeliveryLocation() kernel.Location {
	return c.deliveryLocation
}

func (c *ScheduleOrderCommand) setDriverID(driverID int) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidError("driver_id")
	}

	c.driverID = driverID
	return nil
}

func (c *ScheduleOrderCommand) setPickupTime(pickupTime time.Time) error {
	if pickupTime.IsZero() {
		return errs.NewValueIsRequiredError("pickup_datetime")
	}

	c.pickupTime = pickupTime
	return nil
}
