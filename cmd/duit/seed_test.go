package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duit/internal/api"
)

// seedBackend fakes the three create endpoints and records every
// transaction payload in arrival order.
type seedBackend struct {
	nextID       int64
	transactions []string
}

func (b *seedBackend) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))

		if r.URL.Path == "/transactions/" {
			b.transactions = append(b.transactions, string(body))
		}

		b.nextID++
		payload["id"] = b.nextID
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(payload))
	}
}

func runSeedOnce(t *testing.T, count int, seedValue int64) []string {
	t.Helper()
	backend := &seedBackend{}
	srv := httptest.NewServer(backend.handler(t))
	defer srv.Close()

	client := api.NewClient(srv.URL, api.WithHTTPClient(srv.Client()))
	require.NoError(t, runSeed(context.Background(), client, count, seedValue))
	return backend.transactions
}

func TestSeedIsReproducible(t *testing.T) {
	first := runSeedOnce(t, 40, 42)
	require.GreaterOrEqual(t, len(first), 40)

	second := runSeedOnce(t, 40, 42)
	assert.Equal(t, first, second, "the same seed yields the same transactions")

	other := runSeedOnce(t, 40, 7)
	assert.NotEqual(t, first, other, "a different seed yields different data")
}
