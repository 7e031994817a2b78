package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand represents a request to register a new driver with a
// known starting position. Driver ids come from the fleet roster, not from
// the store, so the caller supplies the id.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID   int
	location   kernel.Location
	reportedAt time.Time

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a new driver.
// reportedAt is when the starting position was observed.
func NewCreateDriverCommand(driverID int, location kernel.Location, reportedAt time.Time) (CreateDriverCommand, error) {
	command := CreateDriverCommand{
		location: location,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setReportedAt(reportedAt),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDriverCommandIsNotConstructed if validation fails.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the driver id from the command.
func (c CreateDriverCommand) DriverID() int {
	return c.driverID
}

// Location returns the starting position from the command.
func (c CreateDriverCommand) Location() kernel.Location {
	return c.location
}

// ReportedAt returns when the starting position was observed.
func (c CreateDriverCommand) ReportedAt() time.Time {
	return c.reportedAt
}

func (c *CreateDriverCommand) setDriverID(driverID int) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidError("driver_id")
	}

	c.driverID = driverID
	return nil
}

func (c *CreateDriverCommand) setReportedAt(reportedAt time.Time) error {
	if reportedAt.IsZero() {
		return errs.NewValueIsRequiredError("reportedAt")
	}

	c.reportedAt = reportedAt
	return nil
}
