package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

// SyncDriverLocationsCommand triggers one pull from the external location
// feed. The batch operation mirrors every reported driver position into local
// storage, creating rows for drivers seen for the first time.
//
// Example:
//
//	cmd := NewSyncDriverLocationsCommand()
//	handler := NewSyncDriverLocationsCommandHandler(provider, uowFactory)
//
//	// Run periodically to keep positions fresh
//	if _, err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Location sync failed: %v", err)
//	}
type SyncDriverLocationsCommand struct {
	guard guard.ConstructorGuard
}

var ErrSyncDriverLocationsCommandIsNotConstructed = errors.New(
	"SyncDriverLocationsCommand must be created via NewSyncDriverLocationsCommand constructor",
)

// NewSyncDriverLocationsCommand creates a command to trigger a feed pull.
// This is a parameterless command that processes the whole feed snapshot.
func NewSyncDriverLocationsCommand() SyncDriverLocationsCommand {
	command := SyncDriverLocationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrSyncDriverLocationsCommandIsNotConstructed if validation fails.
func (c *SyncDriverLocationsCommand) Validate() error {
	return c.guard.Validate(ErrSyncDriverLocationsCommandIsNotConstructed)
}
