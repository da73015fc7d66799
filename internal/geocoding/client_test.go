package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diegoclair/voice-reminder-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_LookupTimezone(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/search", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("count"))

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("name") {
		case "Berlin":
			w.Write([]byte(`{"results":[{"name":"Berlin","country":"Germany","timezone":"Europe/Berlin"}]}`))
		case "Atlantis":
			w.Write([]byte(`{}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	client := New(server.URL)
	ctx := context.Background()

	t.Run("Should return the timezone of the first match", func(t *testing.T) {
		tz, err := client.LookupTimezone(ctx, "Berlin")
		require.NoError(t, err)
		assert.Equal(t, "Europe/Berlin", tz)
	})

	t.Run("Should return ErrLocationNotFound for empty results", func(t *testing.T) {
		_, err := client.LookupTimezone(ctx, "Atlantis")
		require.ErrorIs(t, err, domain.ErrLocationNotFound)
	})

	t.Run("Should fail on server errors", func(t *testing.T) {
		_, err := client.LookupTimezone(ctx, "anything-else")
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrLocationNotFound)
	})
}
