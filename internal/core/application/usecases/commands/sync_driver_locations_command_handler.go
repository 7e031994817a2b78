package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// SyncDriverLocationsCommandHandler mirrors the external location feed into
// local storage. Each reported driver is upserted: unknown ids get a new row,
// known ids get their position replaced. All writes of one pull share a
// transaction, so a failed pull leaves the previous snapshot intact.
type SyncDriverLocationsCommandHandler struct {
	provider   ports.LocationProvider
	uowFactory DriverUoWFactory
}

// NewSyncDriverLocationsCommandHandler creates a handler for feed pulls.
func NewSyncDriverLocationsCommandHandler(
	provider ports.LocationProvider,
	uowFactory DriverUoWFactory,
) SyncDriverLocationsCommandHandler {
	return SyncDriverLocationsCommandHandler{
		provider:   provider,
		uowFactory: uowFactory,
	}
}

// Handle pulls the feed once and upserts every reported driver.
// Returns the number of drivers the feed reported.
func (h SyncDriverLocationsCommandHandler) Handle(ctx context.Context, cmd SyncDriverLocationsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	drivers, err := h.provider.Positions(ctx)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	for _, aggregate := range drivers {
		if err = driverRepo.Upsert(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(drivers), nil
}
