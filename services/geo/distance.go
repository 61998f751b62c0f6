package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"goldenfish/config"
)

const metersPerMile = 1609.34

// distanceMatrixResponse is the slice of the Google Distance Matrix response
// we care about.
type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int `json:"value"` // meters
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

// GoogleDistanceProvider resolves road distances from the restaurant to a
// customer postcode via the Google Distance Matrix API. It satisfies the
// rules engine's DistanceProvider; callers fall back to manual estimates when
// it errors.
type GoogleDistanceProvider struct {
	// Origin is the restaurant's own postcode.
	Origin string
	Client *http.Client
}

// NewGoogleDistanceProvider builds a provider with a short request timeout,
// so a slow Maps call cannot stall fee resolution.
func NewGoogleDistanceProvider(origin string) *GoogleDistanceProvider {
	return &GoogleDistanceProvider{
		Origin: origin,
		Client: &http.Client{Timeout: 5 * time.Second},
	}
}

func (p *GoogleDistanceProvider) DistanceMiles(ctx context.Context, postcode string) (float64, error) {
	apiKey := config.AppConfig.GoogleAPIKey
	if apiKey == "" {
		return 0, fmt.Errorf("no Google API key configured")
	}

	endpoint := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/distancematrix/json?origins=%s&destinations=%s&units=imperial&key=%s",
		url.QueryEscape(p.Origin+", UK"),
		url.QueryEscape(postcode+", UK"),
		apiKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build distance request: %w", err)
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("distance request failed: %w", err)
	}
	defer resp.Body.Close()

	var data distanceMatrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return 0, fmt.Errorf("failed to decode distance response: %w", err)
	}
	if data.Status != "OK" {
		return 0, fmt.Errorf("distance lookup returned status %s", data.Status)
	}
	if len(data.Rows) == 0 || len(data.Rows[0].Elements) == 0 {
		return 0, fmt.Errorf("distance lookup returned no results")
	}
	element := data.Rows[0].Elements[0]
	if element.Status != "OK" {
		return 0, fmt.Errorf("no route to %s: %s", postcode, element.Status)
	}

	return float64(element.Distance.Value) / metersPerMile, nil
}
