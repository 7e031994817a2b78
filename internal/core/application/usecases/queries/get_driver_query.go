package queries

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetDriverQueryIsNotConstructed = errors.New(
	"GetDriverQuery must be created via NewGetDriverQuery constructor",
)

// GetDriverQuery retrieves one driver by id.
type GetDriverQuery struct { //nolint:recvcheck //using for validation
	driverID int

	guard guard.ConstructorGuard
}

// NewGetDriverQuery creates a query for a single driver.
func NewGetDriverQuery(driverID int) (GetDriverQuery, error) {
	query := GetDriverQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDriverID(driverID); err != nil {
		return GetDriverQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDriverQueryIsNotConstructed if validation fails.
func (q GetDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverQueryIsNotConstructed)
}

// DriverID returns the requested driver id.
func (q GetDriverQuery) DriverID() int {
	return q.driverID
}

func (q *GetDriverQuery) setDriverID(driverID int) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidError("driver_id")
	}

	q.driverID = driverID
	return nil
}
