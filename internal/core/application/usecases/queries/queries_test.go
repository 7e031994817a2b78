package queries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var targetAt = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func TestNewFindClosestDriverQuery(t *testing.T) {
	loc := kernel.NewLocation(47, 47)

	_, err := queries.NewFindClosestDriverQuery(time.Time{}, loc)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	query, err := queries.NewFindClosestDriverQuery(targetAt, loc)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, targetAt, query.TargetTime())
	assert.Equal(t, loc, query.TargetLocation())
}

func TestFindClosestDriverQuery_NotConstructedViaConstructor(t *testing.T) {
	var query queries.FindClosestDriverQuery
	require.ErrorIs(t, query.Validate(), queries.ErrFindClosestDriverQueryIsNotConstructed)
}

func TestNewFilterOrdersQuery(t *testing.T) {
	_, err := queries.NewFilterOrdersQuery(-1, targetAt)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = queries.NewFilterOrdersQuery(0, time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	query, err := queries.NewFilterOrdersQuery(0, targetAt)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Zero(t, query.DriverID())
	assert.Equal(t, targetAt, query.Day())

	query, err = queries.NewFilterOrdersQuery(2, targetAt)
	require.NoError(t, err)
	assert.Equal(t, 2, query.DriverID())
	assert.Equal(t, targetAt, query.Day())
}

func TestFilterOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	var query queries.FilterOrdersQuery
	require.ErrorIs(t, query.Validate(), queries.ErrFilterOrdersQueryIsNotConstructed)
}

func TestNewGetDriverQuery(t *testing.T) {
	_, err := queries.NewGetDriverQuery(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	query, err := queries.NewGetDriverQuery(3)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 3, query.DriverID())
}

func TestNewGetOrderQuery(t *testing.T) {
	_, err := queries.NewGetOrderQuery(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	query, err := queries.NewGetOrderQuery(8)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 8, query.OrderID())
}

func TestNewGetAllDriversQuery(t *testing.T) {
	query := queries.NewGetAllDriversQuery()
	require.NoError(t, query.Validate())

	var notConstructed queries.GetAllDriversQuery
	require.ErrorIs(t, notConstructed.Validate(), queries.ErrGetAllDriversQueryIsNotConstructed)
}
