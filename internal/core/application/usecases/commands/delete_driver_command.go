package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrDeleteDriverCommandIsNotConstructed = errors.New(
	"DeleteDriverCommand must be created via NewDeleteDriverCommand constructor",
)

// DeleteDriverCommand represents a request to remove a driver from the fleet.
type DeleteDriverCommand struct { //nolint:recvcheck //using for validation
	driverID int

	guard guard.ConstructorGuard
}

// NewDeleteDriverCommand creates a command to remove a driver.
func NewDeleteDriverCommand(driverID int) (DeleteDriverCommand, error) {
	command := DeleteDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDriverID(driverID); err != nil {
		return DeleteDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteDriverCommandIsNotConstructed if validation fails.
func (c DeleteDriverCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDriverCommandIsNotConstructed)
}

// DriverID returns the driver id from the command.
func (c DeleteDriverCommand) DriverID() int {
	return c.driverID
}

func (c *DeleteDriverCommand) setDriverID(driverID int) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidError("driver_id")
	}

	c.driverID = driverID
	return nil
}
