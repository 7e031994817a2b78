package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrFilterOrdersQueryIsNotConstructed = errors.New(
	"FilterOrdersQuery must be created via NewFilterOrdersQuery constructor",
)

// FilterOrdersQuery retrieves the scheduled orders of one calendar day,
// optionally narrowed to one driver.
type FilterOrdersQuery struct { //nolint:recvcheck //using for validation
	driverID int
	day      time.Time

	guard guard.ConstructorGuard
}

// NewFilterOrdersQuery creates a query for order listings. The day is
// required; driverID zero matches all drivers, a negative driverID is
// rejected.
func NewFilterOrdersQuery(driverID int, day time.Time) (FilterOrdersQuery, error) {
	query := FilterOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		query.setDriverID(driverID),
		query.setDay(day),
	)
	if err != nil {
		return FilterOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrFilterOrdersQueryIsNotConstructed if validation fails.
func (q FilterOrdersQuery) Validate() error {
	return q.guard.Validate(ErrFilterOrdersQueryIsNotConstructed)
}

// DriverID returns the driver filter; zero means unfiltered.
func (q FilterOrdersQuery) DriverID() int {
	return q.driverID
}

// Day returns the calendar-day filter.
func (q FilterOrdersQuery) Day() time.Time {
	return q.day
}

func (q *FilterOrdersQuery) setDriverID(driverID int) error {
	if driverID < 0 {
		return errs.NewValueIsInvalidError("driver_id")
	}

	q.driverID = driverID
	return nil
}

func (q *FilterOrdersQuery) setDay(day time.Time) error {
	if day.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}

	q.day = day
	return nil
}

// OrderResponse represents one scheduled order in the read model.
type OrderResponse struct {
	ID               int
	DriverID         int
	PickupTime       time.Time
	PickupLocation   kernel.Location
	DeliveryLocation kernel.Location
}
