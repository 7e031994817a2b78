package commands

import (
	"context"
)

// UpdateDriverLocationCommandHandler applies a single position report to a
// stored driver. Reports older than the driver's last known update are
// accepted but change nothing, so retried or reordered submissions are
// harmless.
type UpdateDriverLocationCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverLocationCommandHandler creates a handler for position reports.
func NewUpdateDriverLocationCommandHandler(uowFactory DriverUoWFactory) UpdateDriverLocationCommandHandler {
	return UpdateDriverLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the driver, moves it to the reported position and persists the
// result within a transaction.
// Returns errs.ObjectNotFoundError for an unknown driver.
func (h UpdateDriverLocationCommandHandler) Handle(ctx context.Context, cmd UpdateDriverLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	aggregate, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = aggregate.MoveTo(cmd.Location(), cmd.ReportedAt()); err != nil {
		return err
	}

	if err = driverRepo.Upsert(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
