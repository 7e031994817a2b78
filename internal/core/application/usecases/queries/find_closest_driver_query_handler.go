package queries

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// ErrPastTargetTime signals a search for a pickup moment that already passed.
var ErrPastTargetTime = errors.New("it is not possible to search a driver for a past time")

// FindClosestDriverQueryHandler runs the two-phase nearest-driver search.
//
// Phase one looks at scheduled orders: a driver whose delivery ends near the
// requested pickup point, and not too long before the requested time, is the
// cheapest choice because they are already in the neighborhood. Only orders
// with a pickup between now and one order duration before the target qualify;
// anything later would still be in progress at the target time.
//
// Phase two falls back to last reported positions. Drivers that are
// mid-delivery around the target time are excluded, then the driver with the
// nearest position wins.
//
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type FindClosestDriverQueryHandler struct {
	db            *gorm.DB
	locator       services.DriverLocator
	orderDuration time.Duration
	maxGap        time.Duration
}

// NewFindClosestDriverQueryHandler creates a handler for the nearest-driver
// search. orderDuration is how long one delivery occupies a driver; maxGap
// caps how far before the target time a phase-one delivery may be scheduled
// and still count as "in the neighborhood".
func NewFindClosestDriverQueryHandler(
	db *gorm.DB,
	orderDuration time.Duration,
	maxGap time.Duration,
) FindClosestDriverQueryHandler {
	return FindClosestDriverQueryHandler{
		db:            db,
		locator:       services.NewDriverLocator(),
		orderDuration: orderDuration,
		maxGap:        maxGap,
	}
}

// Handle executes both search phases in order and returns the first match.
// Returns services.ErrDriverNotFound when neither phase finds a driver.
func (h FindClosestDriverQueryHandler) Handle(
	ctx context.Context,
	query FindClosestDriverQuery,
) (FindClosestDriverQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return FindClosestDriverQueryResponse{}, err
	}

	if query.TargetTime().Before(time.Now()) {
		return FindClosestDriverQueryResponse{}, ErrPastTargetTime
	}

	driverID, err := h.byRecentDelivery(ctx, query)
	if err == nil {
		return FindClosestDriverQueryResponse{DriverID: driverID, Phase: PhaseRecentDelivery}, nil
	}
	if !errors.Is(err, services.ErrDriverNotFound) {
		return FindClosestDriverQueryResponse{}, err
	}

	driverID, err = h.byCurrentPosition(ctx, query)
	if err != nil {
		return FindClosestDriverQueryResponse{}, err
	}

	return FindClosestDriverQueryResponse{DriverID: driverID, Phase: PhaseCurrentPosition}, nil
}

func (h FindClosestDriverQueryHandler) byRecentDelivery(
	ctx context.Context,
	query FindClosestDriverQuery,
) (int, error) {
	candidates, err := h.candidateOrders(ctx, time.Now(), query.TargetTime())
	if err != nil {
		return 0, err
	}

	return h.locator.ClosestByRecentDelivery(
		query.TargetTime(),
		query.TargetLocation(),
		candidates,
		h.maxGap,
	)
}

func (h FindClosestDriverQueryHandler) byCurrentPosition(
	ctx context.Context,
	query FindClosestDriverQuery,
) (int, error) {
	busy, err := h.busyDrivers(ctx, query.TargetTime())
	if err != nil {
		return 0, err
	}

	drivers, err := h.allDrivers(ctx)
	if err != nil {
		return 0, err
	}

	return h.locator.ClosestByPosition(query.TargetLocation(), drivers, busy)
}

// candidateOrders returns orders whose delivery finishes before the target
// time yet recently enough to matter, ordered ascending by pickup time.
func (h FindClosestDriverQueryHandler) candidateOrders(
	ctx context.Context,
	now time.Time,
	targetTime time.Time,
) ([]*order.Order, error) {
	candidates := make([]*order.Order, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			driver_id,
			pickup_time,
			pickup_lat,
			pickup_lng,
			delivery_lat,
			delivery_lng
		FROM orders
		WHERE pickup_time >= ? AND pickup_time <= ?
		ORDER BY pickup_time
	`, now, targetTime.Add(-h.orderDuration)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, driverID                                   int
			pickupTime                                     time.Time
			pickupLat, pickupLng, deliveryLat, deliveryLng int
		)

		if err = rows.Scan(
			&id,
			&driverID,
			&pickupTime,
			&pickupLat,
			&pickupLng,
			&deliveryLat,
			&deliveryLng,
		); err != nil {
			return nil, err
		}

		candidate, restoreErr := order.RestoreOrder(
			id,
			driverID,
			pickupTime,
			kernel.NewLocation(pickupLat, pickupLng),
			kernel.NewLocation(deliveryLat, deliveryLng),
		)
		if restoreErr != nil {
			return nil, restoreErr
		}

		candidates = append(candidates, candidate)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return candidates, nil
}

// busyDrivers returns the ids of drivers that are mid-delivery at the target
// time: their order's pickup falls within one order duration before the
// target. An order picked up exactly at the target does not count; the
// scheduler rejects that slot anyway.
func (h FindClosestDriverQueryHandler) busyDrivers(
	ctx context.Context,
	targetTime time.Time,
) (map[int]struct{}, error) {
	busy := make(map[int]struct{})

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT driver_id
		FROM orders
		WHERE pickup_time >= ? AND pickup_time < ?
	`, targetTime.Add(-h.orderDuration), targetTime).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var driverID int
		if err = rows.Scan(&driverID); err != nil {
			return nil, err
		}
		busy[driverID] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return busy, nil
}

func (h FindClosestDriverQueryHandler) allDrivers(ctx context.Context) ([]*driver.Driver, error) {
	drivers := make([]*driver.Driver, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, lat, lng, last_update
		FROM drivers
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, lat, lng int
			lastUpdate   time.Time
		)

		if err = rows.Scan(&id, &lat, &lng, &lastUpdate); err != nil {
			return nil, err
		}

		aggregate, newErr := driver.NewDriver(id, kernel.NewLocation(lat, lng), lastUpdate)
		if newErr != nil {
			return nil, newErr
		}

		drivers = append(drivers, aggregate)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
