// Package ports defines repository interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/driver"
)

// ErrDriverHasOrders is returned by DriverRepository.Delete when orders still
// reference the driver. The store enforces it with a RESTRICT foreign key, so
// the check and the delete cannot race.
var ErrDriverHasOrders = errors.New("driver has scheduled orders")

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver. The driver must be valid and its id unused.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Upsert inserts the driver or, when a row with the same id exists,
	// replaces its position fields. This is the write contract of the
	// location-ingestion feed: one record per driver id.
	Upsert(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by id.
	// Returns errs.ObjectNotFoundError when no such driver exists.
	Get(ctx context.Context, id int) (*driver.Driver, error)

	// GetForUpdate retrieves a driver by id while taking a row-level lock
	// that is held until the surrounding transaction ends. Scheduling uses it
	// to serialize the conflict check-then-insert per driver.
	GetForUpdate(ctx context.Context, id int) (*driver.Driver, error)

	// GetAll retrieves all drivers ordered ascending by id.
	GetAll(ctx context.Context) ([]*driver.Driver, error)

	// Delete removes a driver by id. Deletion is rejected with
	// ErrDriverHasOrders while any order still references the driver;
	// a missing driver yields errs.ObjectNotFoundError.
	Delete(ctx context.Context, id int) error
}
