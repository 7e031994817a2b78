package order

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// ErrOrderIDAlreadyAssigned is returned when AssignID is called on an order
// that already carries a persistent id.
var ErrOrderIDAlreadyAssigned = errors.New("order id is already assigned")

// Order represents a scheduled pickup/delivery assignment for a driver.
//
// Invariants:
//   - The assigned driver id is positive and must reference an existing driver
//     (referential integrity is enforced by the store's foreign key).
//   - The pickup time is a real timestamp.
//   - Orders are immutable once created; there is no reschedule or reassign.
//
// The id is zero until the store assigns one on insert; repositories call
// AssignID exactly once after a successful insert.
type Order struct {
	// id is the database-assigned identifier (0 until persisted)
	id int

	// driverID references the committed driver
	driverID int

	// pickupTime is the scheduled pickup moment
	pickupTime time.Time

	// pickupLocation and deliveryLocation are the endpoints of the trip
	pickupLocation   kernel.Location
	deliveryLocation kernel.Location

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new, not-yet-persisted Order with validation.
func NewOrder(driverID int, pickupTime time.Time, pickup, delivery kernel.Location) (*Order, error) {
	o := &Order{
		pickupLocation:   pickup,
		deliveryLocation: delivery,
		isConstructed:    true,
	}

	if err := errors.Join(
		o.setDriverID(driverID),
		o.setPickupTime(pickupTime),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs a persisted Order from storage. Unlike NewOrder it
// requires a positive id.
func RestoreOrder(id, driverID int, pickupTime time.Time, pickup, delivery kernel.Location) (*Order, error) {
	o, err := NewOrder(driverID, pickupTime, pickup, delivery)
	if err != nil {
		return nil, err
	}

	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("id")
	}
	o.id = id

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their persistent identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the database-assigned identifier, or 0 for an unpersisted order.
func (o *Order) ID() int {
	return o.id
}

// DriverID returns the id of the committed driver.
func (o *Order) DriverID() int {
	return o.driverID
}

// PickupTime returns the scheduled pickup moment.
func (o *Order) PickupTime() time.Time {
	return o.pickupTime
}

// PickupLocation returns the pickup coordinates.
func (o *Order) PickupLocation() kernel.Location {
	return o.pickupLocation
}

// DeliveryLocation returns the delivery coordinates.
func (o *Order) DeliveryLocation() kernel.Location {
	return o.deliveryLocation
}

// Window derives the commitment window [pickup-duration, pickup+duration].
// Two orders for the same driver conflict when their windows overlap,
// bounds included.
func (o *Order) Window(duration time.Duration) kernel.TimeWindow {
	return kernel.NewOrderWindow(o.pickupTime, duration)
}

// AssignID records the id the store assigned on insert. It may be called only
// once, on an order whose id is still zero.
func (o *Order) AssignID(id int) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("id")
	}
	if o.id != 0 {
		return ErrOrderIDAlreadyAssigned
	}

	o.id = id
	return nil
}

// String returns a human-readable representation for logs.
func (o *Order) String() string {
	return fmt.Sprintf("Order(%d, driver=%d, pickup=%s)", o.id, o.driverID, o.pickupTime.Format(time.RFC3339))
}

func (o *Order) setDriverID(driverID int) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidError("driver")
	}

	o.driverID = driverID
	return nil
}

func (o *Order) setPickupTime(pickupTime time.Time) error {
	if pickupTime.IsZero() {
		return errs.NewValueIsRequiredError("pickup_datetime")
	}

	o.pickupTime = pickupTime
	return nil
}
