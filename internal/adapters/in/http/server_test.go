package http_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpserver "dispatch/internal/adapters/in/http"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/pkg/metrics"
)

const (
	testDatetimeFormat = "2006-01-02 15:04:05"
	testDateFormat     = "2006-01-02"
)

// newEcho builds a router whose handlers fail the moment they touch a store.
// The tests below only exercise request validation and error mapping, which
// resolve before any store access.
func newEcho() *echo.Echo {
	handlers := httpserver.Handlers{
		ScheduleOrder:     commands.NewScheduleOrderCommandHandler(nil, time.Hour),
		FindClosestDriver: queries.NewFindClosestDriverQueryHandler(nil, time.Hour, 4*time.Hour),
	}
	server := httpserver.NewServer(handlers, metrics.Noop{}, testDatetimeFormat, testDateFormat)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpserver.Error {
	t.Helper()
	var body httpserver.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestScheduleOrder_InvalidBody(t *testing.T) {
	rec := doJSON(newEcho(), http.MethodPost, "/api/v1/orders/schedule", "not json")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
}

func TestScheduleOrder_WrongDatetimeFormat(t *testing.T) {
	body := `{"driver":1,"pickup_datetime":"wrong_date_format","pickup_lat":33,"pickup_lng":1,"delivery_lat":98,"delivery_lng":98}`

	rec := doJSON(newEcho(), http.MethodPost, "/api/v1/orders/schedule", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "Datetime has wrong format")
}

func TestScheduleOrder_PastTime(t *testing.T) {
	past := time.Now().Add(-2 * time.Hour).Format(testDatetimeFormat)
	body := fmt.Sprintf(
		`{"driver":1,"pickup_datetime":"%s","pickup_lat":33,"pickup_lng":1,"delivery_lat":98,"delivery_lng":98}`,
		past,
	)

	rec := doJSON(newEcho(), http.MethodPost, "/api/v1/orders/schedule", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "past time")
}

func TestScheduleOrder_InvalidDriverID(t *testing.T) {
	future := time.Now().Add(2 * time.Hour).Format(testDatetimeFormat)
	body := fmt.Sprintf(
		`{"driver":0,"pickup_datetime":"%s","pickup_lat":33,"pickup_lng":1,"delivery_lat":98,"delivery_lng":98}`,
		future,
	)

	rec := doJSON(newEcho(), http.MethodPost, "/api/v1/orders/schedule", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFilterOrders_MissingDate(t *testing.T) {
	rec := doJSON(newEcho(), http.MethodGet, "/api/v1/orders", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "date")
}

func TestFilterOrders_WrongDateFormat(t *testing.T) {
	rec := doJSON(newEcho(), http.MethodGet, "/api/v1/orders?date=14-09-2026", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "Date has wrong format")
}

func TestFilterOrders_BadDriverID(t *testing.T) {
	rec := doJSON(newEcho(), http.MethodGet, "/api/v1/orders?date=2026-09-14&driver_id=abc", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrder_BadID(t *testing.T) {
	rec := doJSON(newEcho(), http.MethodGet, "/api/v1/orders/abc", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteDriver_BadID(t *testing.T) {
	rec := doJSON(newEcho(), http.MethodDelete, "/api/v1/drivers/abc", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFindClosestDriver_MissingParams(t *testing.T) {
	target := strings.ReplaceAll(time.Now().Add(2*time.Hour).Format(testDatetimeFormat), " ", "+")

	testCases := []struct {
		name    string
		target  string
		message string
	}{
		{
			name:    "missing_datetime",
			target:  "/api/v1/drivers/closest?lat=47&lng=47",
			message: "value is required: datetime",
		},
		{
			name:    "missing_lat",
			target:  "/api/v1/drivers/closest?datetime=" + target + "&lng=47",
			message: "value is required: lat",
		},
		{
			name:    "missing_lng",
			target:  "/api/v1/drivers/closest?datetime=" + target + "&lat=47",
			message: "value is required: lng",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(newEcho(), http.MethodGet, tc.target, "")

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.message, decodeError(t, rec).Message)
		})
	}
}

func TestFindClosestDriver_WrongDatetimeFormat(t *testing.T) {
	rec := doJSON(newEcho(), http.MethodGet, "/api/v1/drivers/closest?datetime=wrong&lat=47&lng=47", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "Datetime has wrong format")
}

func TestFindClosestDriver_BadCoordinates(t *testing.T) {
	target := strings.ReplaceAll(time.Now().Add(2*time.Hour).Format(testDatetimeFormat), " ", "+")

	rec := doJSON(newEcho(), http.MethodGet, "/api/v1/drivers/closest?datetime="+target+"&lat=abc&lng=47", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "lat must be an integer")
}

func TestFindClosestDriver_PastTarget(t *testing.T) {
	target := time.Now().Add(-2 * time.Hour).Format(testDatetimeFormat)

	rec := doJSON(
		newEcho(),
		http.MethodGet,
		"/api/v1/drivers/closest?datetime="+strings.ReplaceAll(target, " ", "+")+"&lat=47&lng=47",
		"",
	)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "past time")
}
