package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and assigns the store-generated id to the
	// aggregate. The order must be valid and its driver must exist (enforced
	// by the store's foreign key).
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id int) (*order.Order, error)

	// GetByDriverInWindow retrieves the driver's orders whose pickup time
	// falls inside the window, bounds inclusive, ordered ascending by pickup
	// time. A non-empty result for a proposed order's window means the driver
	// already has a conflicting delivery.
	GetByDriverInWindow(ctx context.Context, driverID int, window kernel.TimeWindow) ([]*order.Order, error)

	// Delete removes an order by id.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Delete(ctx context.Context, id int) error
}
