package ordering

import (
	"context"
	"errors"
	"testing"

	"goldenfish/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePostcode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"yo103bp", "YO10 3BP"},
		{"  YO10  3BP ", "YO10 3BP"},
		{"YO10 3BP", "YO10 3BP"},
		{"yo1", "YO1"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePostcode(tt.in), "input %q", tt.in)
	}
}

func TestResolveDeliveryFeeZones(t *testing.T) {
	e := NewEngine(testConfig())
	ctx := context.Background()

	// Exact match wins over every prefix.
	res := e.ResolveDeliveryFee(ctx, "YO10 3BP")
	require.True(t, res.Valid)
	require.NotNil(t, res.Fee)
	assert.Equal(t, 0.00, *res.Fee)
	assert.Equal(t, "Campus", res.Zone)
	assert.Equal(t, "Free delivery", res.Display)

	// Longest configured prefix wins among prefixes.
	res = e.ResolveDeliveryFee(ctx, "YO10 3XY")
	require.True(t, res.Valid)
	require.NotNil(t, res.Fee)
	assert.Equal(t, 2.00, *res.Fee)
	assert.Equal(t, "Heslington", res.Zone)

	res = e.ResolveDeliveryFee(ctx, "YO10 5AB")
	require.True(t, res.Valid)
	require.NotNil(t, res.Fee)
	assert.Equal(t, 2.50, *res.Fee)

	// No match is a result, not an error.
	res = e.ResolveDeliveryFee(ctx, "YO1 1AA")
	assert.False(t, res.Valid)
	assert.Nil(t, res.Fee)
	assert.Equal(t, "Out of delivery area", res.Display)
	assert.Equal(t, "Not served", res.Zone)
}

func TestResolveDeliveryFeeMalformedInput(t *testing.T) {
	e := NewEngine(testConfig())
	ctx := context.Background()

	for _, in := range []string{"", "   ", "!!", "completely wrong"} {
		res := e.ResolveDeliveryFee(ctx, in)
		assert.False(t, res.Valid, "input %q", in)
		assert.Nil(t, res.Fee, "input %q", in)
	}
}

func TestResolveDeliveryFeeDeterministic(t *testing.T) {
	e := NewEngine(testConfig())
	ctx := context.Background()

	first := e.ResolveDeliveryFee(ctx, "yo10 3xy")
	second := e.ResolveDeliveryFee(ctx, "yo10 3xy")
	assert.Equal(t, first, second)
}

type stubDistanceProvider struct {
	miles float64
	err   error
}

func (s *stubDistanceProvider) DistanceMiles(ctx context.Context, postcode string) (float64, error) {
	return s.miles, s.err
}

func distanceConfig() models.RestaurantConfig {
	cfg := testConfig()
	cfg.PricingMode = models.PricingByDistance
	cfg.DistancePricing = models.DistancePricingConfig{
		BaseDeliveryFee:      1.50,
		PricePerMile:         0.50,
		MaxDeliveryDistance:  6.0,
		FreeDeliveryDistance: 1.0,
		AreaDistances: map[string]float64{
			"YO10": 2.0,
			"YO8":  8.0,
		},
	}
	return cfg
}

func TestDistanceFeeFromProvider(t *testing.T) {
	e := NewEngine(distanceConfig())
	e.Distance = &stubDistanceProvider{miles: 3.0}

	res := e.ResolveDeliveryFee(context.Background(), "YO23 1AB")
	require.True(t, res.Valid)
	require.NotNil(t, res.Fee)
	assert.Equal(t, 3.00, *res.Fee) // 1.50 + 3.0 * 0.50
}

func TestDistanceFeeProviderFailureFallsBack(t *testing.T) {
	e := NewEngine(distanceConfig())
	e.Distance = &stubDistanceProvider{err: errors.New("timeout")}

	res := e.ResolveDeliveryFee(context.Background(), "YO10 3BP")
	require.True(t, res.Valid)
	require.NotNil(t, res.Fee)
	assert.Equal(t, 2.50, *res.Fee) // manual estimate: 1.50 + 2.0 * 0.50
}

func TestDistanceFeeFreeWithinRadius(t *testing.T) {
	e := NewEngine(distanceConfig())
	e.Distance = &stubDistanceProvider{miles: 0.8}

	res := e.ResolveDeliveryFee(context.Background(), "YO1 7HU")
	require.True(t, res.Valid)
	require.NotNil(t, res.Fee)
	assert.Equal(t, 0.00, *res.Fee)
	assert.Equal(t, "Free delivery", res.Display)
}

func TestDistanceFeeTooFar(t *testing.T) {
	e := NewEngine(distanceConfig())

	// Manual table puts YO8 at 8 miles, past the 6-mile limit.
	res := e.ResolveDeliveryFee(context.Background(), "YO8 9QT")
	assert.False(t, res.Valid)
	assert.Nil(t, res.Fee)
	assert.Equal(t, "Too far", res.Zone)
}

func TestDistanceFeeUnknownArea(t *testing.T) {
	e := NewEngine(distanceConfig())

	res := e.ResolveDeliveryFee(context.Background(), "LS1 4AP")
	assert.False(t, res.Valid)
	assert.Nil(t, res.Fee)
}
