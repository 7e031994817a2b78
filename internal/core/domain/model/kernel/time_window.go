package kernel

import (
	"fmt"
	"time"

	"dispatch/internal/pkg/errs"
)

// TimeWindow represents a closed time interval [from, to]. Both bounds are
// inclusive, matching the overlap rule for order commitment windows: two
// windows that merely touch at a bound already conflict.
type TimeWindow struct {
	from time.Time
	to   time.Time
}

// NewTimeWindow creates a TimeWindow from explicit bounds.
// Returns an error when from is after to or either bound is the zero time.
func NewTimeWindow(from, to time.Time) (TimeWindow, error) {
	if from.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("from")
	}
	if to.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("to")
	}
	if from.After(to) {
		return TimeWindow{}, errs.NewValueIsInvalidError("from")
	}

	return TimeWindow{from: from, to: to}, nil
}

// NewOrderWindow derives the commitment window of an order with the given
// pickup time: [pickup-duration, pickup+duration]. A driver holding an order
// is considered committed for the whole window.
func NewOrderWindow(pickup time.Time, duration time.Duration) TimeWindow {
	return TimeWindow{
		from: pickup.Add(-duration),
		to:   pickup.Add(duration),
	}
}

// From returns the inclusive lower bound of the window.
func (w TimeWindow) From() time.Time {
	return w.from
}

// To returns the inclusive upper bound of the window.
func (w TimeWindow) To() time.Time {
	return w.to
}

// Contains reports whether t lies within the window, bounds included.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.from) && !t.After(w.to)
}

// Overlaps reports whether two windows share at least one instant,
// bounds included.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return !w.from.After(other.to) && !other.from.After(w.to)
}

// String returns a human-readable representation of the window.
func (w TimeWindow) String() string {
	return fmt.Sprintf("TimeWindow[%s, %s]", w.from.Format(time.RFC3339), w.to.Format(time.RFC3339))
}
