package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateDriverLocationCommandIsNotConstructed = errors.New(
	"UpdateDriverLocationCommand must be created via NewUpdateDriverLocationCommand constructor",
)

// UpdateDriverLocationCommand represents a single position report for one
// driver, as submitted through the API rather than the polling feed.
type UpdateDriverLocationCommand struct { //nolint:recvcheck //using for validation
	driverID   int
	location   kernel.Location
	reportedAt time.Time

	guard guard.ConstructorGuard
}

// NewUpdateDriverLocationCommand creates a command carrying one position report.
func NewUpdateDriverLocationCommand(
	driverID int,
	location kernel.Location,
	reportedAt time.Time,
) (UpdateDriverLocationCommand, error) {
	command := UpdateDriverLocationCommand{
		location: location,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setReportedAt(reportedAt),
	); err != nil {
		return UpdateDriverLocationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDriverLocationCommandIsNotConstructed if validation fails.
func (c UpdateDriverLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverLocationCommandIsNotConstructed)
}

// DriverID returns the driver id from the command.
func (c UpdateDriverLocationCommand) DriverID() int {
	return c.driverID
}

// Location returns the reported position.
func (c UpdateDriverLocationCommand) Location() kernel.Location {
	return c.location
}

// ReportedAt returns when the position was observed.
func (c UpdateDriverLocationCommand) ReportedAt() time.Time {
	return c.reportedAt
}

func (c *UpdateDriverLocationCommand) setDriverID(driverID int) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidError("driver_id")
	}

	c.driverID = driverID
	return nil
}

func (c *UpdateDriverLocationCommand) setReportedAt(reportedAt time.Time) error {
	if reportedAt.IsZero() {
		return errs.NewValueIsRequiredError("reportedAt")
	}

	c.reportedAt = reportedAt
	return nil
}
