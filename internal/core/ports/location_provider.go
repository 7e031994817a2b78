package ports

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
)

// LocationProvider supplies current driver positions from an external feed.
// The ingestion job polls it and mirrors the result into local storage.
type LocationProvider interface {
	// Positions returns one snapshot per driver reported by the feed.
	Positions(ctx context.Context) ([]*driver.Driver, error)
}
