package guard_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/pkg/guard"
)

func TestConstructorGuard_Validate(t *testing.T) {
	notConstructed := errors.New("not constructed")

	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(notConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_supplied_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(notConstructed)

		require.Error(t, err)
		assert.Equal(t, notConstructed, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

func TestErrDefaultConstructorGuard_Message(t *testing.T) {
	assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
}

// pickupSlot mirrors how the commands and queries of this application embed
// the guard: the constructor validates fields and arms it, Validate rejects
// zero values that bypassed the constructor.
type pickupSlot struct {
	driverID int
	pickupAt time.Time

	guard guard.ConstructorGuard
}

var errPickupSlotNotConstructed = errors.New("pickupSlot must be created via newPickupSlot")

func newPickupSlot(driverID int, pickupAt time.Time) (pickupSlot, error) {
	if driverID <= 0 {
		return pickupSlot{}, errors.New("driver id must be positive")
	}
	if pickupAt.IsZero() {
		return pickupSlot{}, errors.New("pickup time is required")
	}

	return pickupSlot{
		driverID: driverID,
		pickupAt: pickupAt,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (s pickupSlot) Validate() error {
	return s.guard.Validate(errPickupSlotNotConstructed)
}

func TestConstructorGuard_EmbeddedInGuardedType(t *testing.T) {
	pickupAt := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)

	t.Run("constructed_value_validates", func(t *testing.T) {
		slot, err := newPickupSlot(7, pickupAt)

		require.NoError(t, err)
		require.NoError(t, slot.Validate())
		assert.Equal(t, 7, slot.driverID)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var slot pickupSlot

		err := slot.Validate()

		require.Error(t, err)
		assert.Equal(t, errPickupSlotNotConstructed, err)
	})

	t.Run("rejected_construction_leaves_guard_unarmed", func(t *testing.T) {
		slot, err := newPickupSlot(0, pickupAt)

		require.Error(t, err)
		require.ErrorIs(t, slot.Validate(), errPickupSlotNotConstructed)
	})

	t.Run("copies_stay_valid", func(t *testing.T) {
		// Commands travel by value from transport to handler; the guard has
		// to survive those copies.
		slot, err := newPickupSlot(7, pickupAt)
		require.NoError(t, err)

		copied := slot

		require.NoError(t, slot.Validate())
		require.NoError(t, copied.Validate())
	})
}
