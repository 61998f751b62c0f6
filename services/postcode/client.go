package postcode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"goldenfish/services/ordering"
)

const defaultBaseURL = "https://api.postcodes.io"

// Lookup is what the storefront learns about a customer postcode before fee
// resolution: whether it exists at all, and its canonical form.
type Lookup struct {
	Postcode string `json:"postcode"`
	Valid    bool   `json:"valid"`
}

// Validator checks postcodes against an external register.
type Validator interface {
	Validate(ctx context.Context, raw string) (*Lookup, error)
}

// Client validates UK postcodes against postcodes.io.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient builds a postcodes.io client with a short request timeout.
func NewClient() *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}
}

// Validate checks the postcode against the register. Network failures return
// an error so the caller can decide to trust the zone table alone.
func (c *Client) Validate(ctx context.Context, raw string) (*Lookup, error) {
	norm := ordering.NormalizePostcode(raw)
	if norm == "" {
		return &Lookup{Postcode: norm, Valid: false}, nil
	}

	endpoint := fmt.Sprintf("%s/postcodes/%s/validate", c.BaseURL, url.PathEscape(norm))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build postcode request: %w", err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("postcode validation request failed: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		Status int  `json:"status"`
		Result bool `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode postcode response: %w", err)
	}
	if body.Status != http.StatusOK {
		return nil, fmt.Errorf("postcode validation returned status %d", body.Status)
	}

	return &Lookup{Postcode: norm, Valid: body.Result}, nil
}
