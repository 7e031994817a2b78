package driver

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrDriverIsNotConstructed is returned when a Driver instance was not created
// through the NewDriver factory method.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Driver represents a delivery driver known to the system.
//
// Invariants:
//   - The id is positive and unique; there is exactly one record per driver id.
//   - The position is the last one reported by the location feed, together
//     with the report timestamp.
//
// A driver's schedule is not part of this aggregate: commitments live in
// orders, and the "no overlapping commitment windows" invariant is enforced by
// the order scheduler, not here.
type Driver struct {
	// id is the external identifier assigned by the location feed
	id int

	// location is the last-known position
	location kernel.Location

	// lastUpdate is when location was reported
	lastUpdate time.Time

	// isConstructed ensures the driver was created via NewDriver
	isConstructed bool
}

// NewDriver creates a Driver with validation. The id must be positive and
// lastUpdate must be a real timestamp.
func NewDriver(id int, location kernel.Location, lastUpdate time.Time) (*Driver, error) {
	d := &Driver{
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setLocation(location, lastUpdate),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Driver instance was properly constructed through NewDriver.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}

	return nil
}

// IsEqual compares two drivers by id.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id == other.id
}

// ID returns the driver's identifier.
func (d *Driver) ID() int {
	return d.id
}

// Location returns the driver's last-known position.
func (d *Driver) Location() kernel.Location {
	return d.location
}

// LastUpdate returns the moment the last-known position was reported.
func (d *Driver) LastUpdate() time.Time {
	return d.lastUpdate
}

// MoveTo records a newly reported position. Reports older than the current
// lastUpdate are ignored so a delayed feed fetch cannot roll the position back.
func (d *Driver) MoveTo(location kernel.Location, reportedAt time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if reportedAt.IsZero() {
		return errs.NewValueIsRequiredError("reportedAt")
	}
	if reportedAt.Before(d.lastUpdate) {
		return nil
	}

	d.location = location
	d.lastUpdate = reportedAt
	return nil
}

// String returns a human-readable representation for logs.
func (d *Driver) String() string {
	return fmt.Sprintf("Driver(%d, %s)", d.id, d.location)
}

func (d *Driver) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("id")
	}

	d.id = id
	return nil
}

func (d *Driver) setLocation(location kernel.Location, lastUpdate time.Time) error {
	if lastUpdate.IsZero() {
		return errs.NewValueIsRequiredError("lastUpdate")
	}

	d.location = location
	d.lastUpdate = lastUpdate
	return nil
}
