package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/kernel"
)

// GetAllDriversQueryHandler retrieves the fleet list from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDriversQueryHandler creates a handler for fleet listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllDriversQueryHandler(db *gorm.DB) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{db: db}
}

// Handle executes the query to retrieve all drivers.
// Returns a slice of driver read models sorted by id.
func (h GetAllDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAllDriversQuery,
) ([]DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]DriverResponse, 0)

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
			resp       DriverResponse
			lat, lng   int
			lastUpdate time.Time
		)

		if err = rows.Scan(&resp.ID, &lat, &lng, &lastUpdate); err != nil {
			return nil, err
		}

		resp.Location = kernel.NewLocation(lat, lng)
		resp.LastUpdate = lastUpdate
		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
