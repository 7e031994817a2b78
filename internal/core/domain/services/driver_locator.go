package services

import (
	"errors"
	"math"
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// ErrDriverNotFound is returned when a locator phase yields no qualifying
// driver. Callers fall through to the next phase, or report the request as
// unservable once both phases are exhausted.
var ErrDriverNotFound = errors.New("driver not found")

// DriverLocator is a domain service that ranks drivers for an unassigned
// pickup request. It implements the two sequential strategies of the
// nearest-driver search:
//
//  1. ClosestByRecentDelivery ranks by proximity of a driver's recent
//     delivery point to the requested pickup point.
//  2. ClosestByPosition ranks by proximity of a driver's last-known
//     position, skipping drivers that are mid-delivery.
//
// The locator is stateless and pure; candidate orders and drivers are
// selected and ordered by the caller.
type DriverLocator struct{}

// NewDriverLocator creates a new DriverLocator instance.
func NewDriverLocator() DriverLocator {
	return DriverLocator{}
}

// ClosestByRecentDelivery selects a driver whose recent delivery ended near
// the requested pickup point.
//
// candidates must be ordered ascending by pickup time. For each candidate the
// locator computes the Manhattan distance from the candidate's delivery
// location to targetLocation, and the time gap between targetTime and the
// candidate's pickup time. Candidates whose gap reaches maxGap are skipped
// entirely.
//
// The tracked best is replaced only when a later candidate is BOTH strictly
// closer AND has a smaller time gap than the current best. The conjunction is
// intentional and must not be relaxed to a pure distance minimum: with
// ascending pickup times the gap shrinks monotonically, so the rule keeps the
// most recently scheduled order among equally close ones while never trading
// a smaller gap for a worse distance.
//
// Returns the driver id of the best candidate, or ErrDriverNotFound when no
// candidate qualifies.
func (l DriverLocator) ClosestByRecentDelivery(
	targetTime time.Time,
	targetLocation kernel.Location,
	candidates []*order.Order,
	maxGap time.Duration,
) (int, error) {
	var (
		best     *order.Order
		bestDist int
		bestGap  time.Duration
	)

	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return 0, err
		}

		gap := targetTime.Sub(candidate.PickupTime())
		if gap >= maxGap {
			continue
		}

		dist := candidate.DeliveryLocation().Distance(targetLocation)
		if best == nil {
			best, bestDist, bestGap = candidate, dist, gap
			continue
		}

		if dist < bestDist && gap < bestGap {
			best, bestDist, bestGap = candidate, dist, gap
		}
	}

	if best == nil {
		return 0, ErrDriverNotFound
	}

	return best.DriverID(), nil
}

// ClosestByPosition selects the driver whose last-known position is nearest
// to targetLocation by Manhattan distance. Drivers present in the busy set
// are never returned, regardless of proximity.
//
// drivers must be ordered ascending by id; on distance ties the first
// encountered minimum wins, which makes the result deterministic.
//
// Returns ErrDriverNotFound when the driver set is empty or every driver
// is busy.
func (l DriverLocator) ClosestByPosition(
	targetLocation kernel.Location,
	drivers []*driver.Driver,
	busy map[int]struct{},
) (int, error) {
	var (
		best     *driver.Driver
		bestDist = math.MaxInt
	)

	for _, d := range drivers {
		if err := d.Validate(); err != nil {
			return 0, err
		}

		if _, isBusy := busy[d.ID()]; isBusy {
			continue
		}

		if dist := d.Location().Distance(targetLocation); dist < bestDist {
			best, bestDist = d, dist
		}
	}

	if best == nil {
		return 0, ErrDriverNotFound
	}

	return best.ID(), nil
}
