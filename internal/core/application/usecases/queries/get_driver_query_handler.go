package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// GetDriverQueryHandler retrieves a single driver from the database.
type GetDriverQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverQueryHandler creates a handler for single-driver queries.
// Requires a GORM database connection for query execution.
func NewGetDriverQueryHandler(db *gorm.DB) GetDriverQueryHandler {
	return GetDriverQueryHandler{db: db}
}

// Handle executes the query.
// Returns errs.ObjectNotFoundError when the driver does not exist.
func (h GetDriverQueryHandler) Handle(ctx context.Context, query GetDriverQuery) (DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return DriverResponse{}, err
	}

	var (
		resp       DriverResponse
		lat, lng   int
		lastUpdate time.Time
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, lat, lng, last_update
		FROM drivers
		WHERE id = ?
	`, query.DriverID()).Row()

	err := row.Scan(&resp.ID, &lat, &lng, &lastUpdate)
	if errors.Is(err, sql.ErrNoRows) {
		return DriverResponse{}, errs.NewObjectNotFoundError("driver_id", query.DriverID())
	}
	if err != nil {
		return DriverResponse{}, err
	}

	resp.Location = kernel.NewLocation(lat, lng)
	resp.LastUpdate = lastUpdate

	return resp, nil
}
