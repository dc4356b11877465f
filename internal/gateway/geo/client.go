package geo

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"moving-estimate-service/internal/domain"
)

const geocodePath = "/geocode/V1/geoCoder"

// Client resolves free-text addresses to coordinates via the YOLP
// geocoder. Any error it returns is treated as recoverable by the
// estimate service, which falls back to the distance table.
type Client struct {
	httpClient *http.Client
	baseURL    string
	appID      string
}

// NewClient creates a geocoder client. Returns nil when no app id is
// configured, which disables the geocode path entirely.
func NewClient(baseURL, appID string, timeout time.Duration) *Client {
	if strings.TrimSpace(appID) == "" {
		return nil
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		appID:      appID,
	}
}

// YOLP geocode response: YDF/Feature/Geometry with Coordinates as "lon,lat".
type ydfResponse struct {
	XMLName  xml.Name `xml:"YDF"`
	Features []struct {
		Geometry struct {
			Type        string `xml:"Type"`
			Coordinates string `xml:"Coordinates"`
		} `xml:"Geometry"`
	} `xml:"Feature"`
}

// Resolve geocodes a single address string.
func (c *Client) Resolve(ctx context.Context, address string) (domain.Coordinate, error) {
	q := url.Values{}
	q.Set("appid", c.appID)
	q.Set("query", address)
	q.Set("results", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+geocodePath+"?"+q.Encode(), nil)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: %w", address, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: unexpected status %d", address, resp.StatusCode)
	}

	var decoded ydfResponse
	if err := xml.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: decode response: %w", address, err)
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: no results", address)
	}

	geom := decoded.Features[0].Geometry
	if geom.Type != "point" {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: unexpected geometry type %q", address, geom.Type)
	}

	return parseCoordinates(geom.Coordinates)
}

// parseCoordinates splits the YOLP "lon,lat" pair.
func parseCoordinates(raw string) (domain.Coordinate, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return domain.Coordinate{}, fmt.Errorf("malformed coordinates %q", raw)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("malformed longitude %q: %w", parts[0], err)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("malformed latitude %q: %w", parts[1], err)
	}
	return domain.Coordinate{Lat: lat, Lon: lon}, nil
}
