// Package routing implements the route client against an OSRM-compatible
// HTTP routing provider.
package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
)

const defaultTimeout = 5 * time.Second

// Client calls the /route/v1/driving endpoint of an OSRM-compatible server
// and converts its meters and seconds into the kilometers and minutes the
// domain works with.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a routing client for the given base URL, for example
// "http://router.project-osrm.org". A non-positive timeout falls back to the
// default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		DistanceMeters  float64 `json:"distance"`
		DurationSeconds float64 `json:"duration"`
	} `json:"routes"`
}

// GetRoute returns road distance and travel time between two points.
// OSRM takes coordinates as lon,lat pairs.
func (c *Client) GetRoute(ctx context.Context, from, to kernel.GeoPoint) (ports.Route, error) {
	if err := from.Validate(); err != nil {
		return ports.Route{}, err
	}
	if err := to.Validate(); err != nil {
		return ports.Route{}, err
	}

	url := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		c.baseURL,
		from.Longitude(), from.Latitude(),
		to.Longitude(), to.Latitude(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.Route{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.Route{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.Route{}, fmt.Errorf("routing provider returned status %d", resp.StatusCode)
	}

	var body routeResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.Route{}, fmt.Errorf("routing provider response is malformed: %w", err)
	}

	if body.Code != "Ok" || len(body.Routes) == 0 {
		return ports.Route{}, fmt.Errorf("routing provider found no route: code %q", body.Code)
	}

	return ports.Route{
		DistanceKm:      body.Routes[0].DistanceMeters / 1000.0,
		DurationMinutes: int(math.Round(body.Routes[0].DurationSeconds / 60.0)),
	}, nil
}
