package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/kernel"
)

// FilterOrdersQueryHandler retrieves order listings from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type FilterOrdersQueryHandler struct {
	db *gorm.DB
}

// NewFilterOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewFilterOrdersQueryHandler(db *gorm.DB) FilterOrdersQueryHandler {
	return FilterOrdersQueryHandler{db: db}
}

// Handle executes the listing query. The day filter covers pickups from the
// day's midnight up to, but excluding, the next midnight in the day's own
// time zone. Results are sorted most recent pickup first.
func (h FilterOrdersQueryHandler) Handle(
	ctx context.Context,
	query FilterOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	day := query.Day()
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	sql := `
		SELECT
			id,
			driver_id,
			pickup_time,
			pickup_lat,
			pickup_lng,
			delivery_lat,
			delivery_lng
		FROM orders
		WHERE pickup_time >= ? AND pickup_time < ?
	`
	args := []any{dayStart, dayStart.AddDate(0, 0, 1)}

	if query.DriverID() > 0 {
		sql += " AND driver_id = ?"
		args = append(args, query.DriverID())
	}

	sql += " ORDER BY pickup_time DESC"

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp                                           OrderResponse
			pickupLat, pickupLng, deliveryLat, deliveryLng int
		)

		if err = rows.Scan(
			&resp.ID,
			&resp.DriverID,
			&resp.PickupTime,
			&pickupLat,
			&pickupLng,
			&deliveryLat,
			&deliveryLng,
		); err != nil {
			return nil, err
		}

		resp.PickupLocation = kernel.NewLocation(pickupLat, pickupLng)
		resp.DeliveryLocation = kernel.NewLocation(deliveryLat, deliveryLng)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
