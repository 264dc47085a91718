// Package geo wraps the Nominatim geocoder for address verification and
// autocomplete, bounded to the company's service area.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// serviceViewbox bounds results to the greater Seattle service area
// (west,south,east,north).
const serviceViewbox = "-122.44,47.50,-122.15,47.73"

const userAgent = "ClearViewWipers/1.0"

// minSuggestLen is the shortest query that triggers autocomplete.
const minSuggestLen = 3

// Place is one geocoder result.
type Place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"displayName"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Search geocodes a full address within the service area. It returns nil
// when the address cannot be found; errors mean the geocoder itself was
// unreachable.
func (c *Client) Search(ctx context.Context, query string) (*Place, error) {
	places, err := c.search(ctx, query, 1)
	if err != nil {
		return nil, fmt.Errorf("could not verify address: %w", err)
	}
	if len(places) == 0 {
		return nil, nil
	}
	return &places[0], nil
}

// Suggest returns up to 5 address completions. Queries shorter than three
// characters return nothing, matching the intake form's behavior.
func (c *Client) Suggest(ctx context.Context, query string) ([]Place, error) {
	if len(query) < minSuggestLen {
		return nil, nil
	}
	places, err := c.search(ctx, query, 5)
	if err != nil {
		return nil, fmt.Errorf("could not load address suggestions: %w", err)
	}
	return places, nil
}

func (c *Client) search(ctx context.Context, query string, limit int) ([]Place, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("viewbox", serviceViewbox)
	params.Set("bounded", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocoder request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoder request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []struct {
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode geocoder response: %w", err)
	}

	places := make([]Place, 0, len(results))
	for _, r := range results {
		places = append(places, Place{Lat: r.Lat, Lon: r.Lon, DisplayName: r.DisplayName})
	}
	return places, nil
}
