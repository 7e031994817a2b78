// Package locationfeed implements the driver position feed client.
// The feed is an external HTTP endpoint that returns the latest known
// position of every driver in the fleet.
package locationfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// Client fetches driver positions from the feed endpoint.
// Implements ports.LocationProvider.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a feed client for the given endpoint URL.
func NewClient(url string) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// feedResponse is the wire format of the feed endpoint.
type feedResponse struct {
	Drivers []feedDriver `json:"drivers"`
}

type feedDriver struct {
	ID         int       `json:"id"`
	Lat        int       `json:"lat"`
	Lng        int       `json:"lng"`
	LastUpdate time.Time `json:"lastUpdate"`
}

// Positions fetches one snapshot of the fleet.
// A malformed driver record fails the whole pull rather than being dropped,
// so a broken feed never silently thins out the fleet.
func (c *Client) Positions(ctx context.Context) ([]*driver.Driver, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch feed: unexpected status %d", resp.StatusCode)
	}

	var payload feedResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}

	drivers := make([]*driver.Driver, 0, len(payload.Drivers))
	for _, record := range payload.Drivers {
		aggregate, newErr := driver.NewDriver(
			record.ID,
			kernel.NewLocation(record.Lat, record.Lng),
			record.LastUpdate,
		)
		if newErr != nil {
			return nil, fmt.Errorf("feed driver %d: %w", record.ID, newErr)
		}
		drivers = append(drivers, aggregate)
	}

	return drivers, nil
}

var _ ports.LocationProvider = (*Client)(nil)
