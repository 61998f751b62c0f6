package postcode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, func()) {
	srv := httptest.NewServer(handler)
	client := NewClient()
	client.BaseURL = srv.URL
	return client, srv.Close
}

func TestValidateKnownPostcode(t *testing.T) {
	var gotPath string
	client, cleanup := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":200,"result":true}`))
	})
	defer cleanup()

	lookup, err := client.Validate(context.Background(), "yo10 3bp")
	require.NoError(t, err)
	assert.True(t, lookup.Valid)
	assert.Equal(t, "YO10 3BP", lookup.Postcode)
	// The request carries the normalized form.
	assert.Equal(t, "/postcodes/YO10 3BP/validate", gotPath)
}

func TestValidateUnknownPostcode(t *testing.T) {
	client, cleanup := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":200,"result":false}`))
	})
	defer cleanup()

	lookup, err := client.Validate(context.Background(), "ZZ99 9ZZ")
	require.NoError(t, err)
	assert.False(t, lookup.Valid)
}

func TestValidateEmptyInputShortCircuits(t *testing.T) {
	called := false
	client, cleanup := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	defer cleanup()

	lookup, err := client.Validate(context.Background(), "   ")
	require.NoError(t, err)
	assert.False(t, lookup.Valid)
	assert.False(t, called)
}

func TestValidateUpstreamErrorSurfaces(t *testing.T) {
	client, cleanup := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"status":500,"error":"server error"}`))
	})
	defer cleanup()

	_, err := client.Validate(context.Background(), "YO10 3BP")
	assert.Error(t, err)
}
