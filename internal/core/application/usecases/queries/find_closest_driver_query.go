// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrFindClosestDriverQueryIsNotConstructed = errors.New(
	"FindClosestDriverQuery must be created via NewFindClosestDriverQuery constructor",
)

// MatchPhase identifies which search strategy produced the recommended driver.
type MatchPhase string

const (
	// PhaseRecentDelivery means the driver was picked because a recent
	// delivery of theirs ends near the requested pickup point.
	PhaseRecentDelivery MatchPhase = "recent_delivery"

	// PhaseCurrentPosition means the driver was picked by the proximity of
	// their last reported position.
	PhaseCurrentPosition MatchPhase = "current_position"
)

// FindClosestDriverQuery asks for the best driver to serve a pickup request
// at a given time and place.
//
// Example:
//
//	query, err := NewFindClosestDriverQuery(pickupAt, kernel.NewLocation(47, 47))
//	if err != nil {
//	    return err
//	}
//
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, services.ErrDriverNotFound) {
//	    // nobody can serve the request
//	}
type FindClosestDriverQuery struct { //nolint:recvcheck //using for validation
	targetTime     time.Time
	targetLocation kernel.Location

	guard guard.ConstructorGuard
}

// NewFindClosestDriverQuery creates a query for the nearest-driver search.
// Validates that the requested pickup time is set.
func NewFindClosestDriverQuery(targetTime time.Time, targetLocation kernel.Location) (FindClosestDriverQuery, error) {
	query := FindClosestDriverQuery{
		targetLocation: targetLocation,
		guard:          guard.NewConstructorGuard(),
	}

	if err := query.setTargetTime(targetTime); err != nil {
		return FindClosestDriverQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrFindClosestDriverQueryIsNotConstructed if validation fails.
func (q FindClosestDriverQuery) Validate() error {
	return q.guard.Validate(ErrFindClosestDriverQueryIsNotConstructed)
}

// TargetTime returns the requested pickup time.
func (q FindClosestDriverQuery) TargetTime() time.Time {
	return q.targetTime
}

// TargetLocation returns the requested pickup point.
func (q FindClosestDriverQuery) TargetLocation() kernel.Location {
	return q.targetLocation
}

func (q *FindClosestDriverQuery) setTargetTime(targetTime time.Time) error {
	if targetTime.IsZero() {
		return errs.NewValueIsRequiredError("datetime")
	}

	q.targetTime = targetTime
	return nil
}

// FindClosestDriverQueryResponse is the read model of the nearest-driver
// search: the recommended driver and the strategy that selected them.
type FindClosestDriverQueryResponse struct {
	DriverID int
	Phase    MatchPhase
}
