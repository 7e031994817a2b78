package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves a single order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query.
// Returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var (
		resp                                           OrderResponse
		pickupLat, pickupLng, deliveryLat, deliveryLng int
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			driver_id,
			pickup_time,
			pickup_lat,
			pickup_lng,
			delivery_lat,
			delivery_lng
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	err := row.Scan(
		&resp.ID,
		&resp.DriverID,
		&resp.PickupTime,
		&pickupLat,
		&pickupLng,
		&deliveryLat,
		&deliveryLng,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("order_id", query.OrderID())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	resp.PickupLocation = kernel.NewLocation(pickupLat, pickupLng)
	resp.DeliveryLocation = kernel.NewLocation(deliveryLat, deliveryLng)

	return resp, nil
}
