package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/l3montree-dev/qualitygate/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatWebhookClient(t *testing.T) {
	notification := dtos.ScanNotification{ProjectName: "api", Branch: "main", CommitHash: "0123456789", Passed: false, NewViolations: 2, Message: "Quality gate failed: 2 new violation(s)"}

	t.Run("should post a slack message", func(t *testing.T) {
		var received dtos.SlackMessage
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		err := NewSlackNotifier(server.Client()).Notify(context.Background(), server.URL, notification)
		require.NoError(t, err)
		assert.Contains(t, received.Text, "api")
		assert.Contains(t, received.Text, "failed")
		assert.Contains(t, received.Text, "0123456")
	})

	t.Run("should post a discord embed", func(t *testing.T) {
		var received dtos.DiscordMessage
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		err := NewDiscordNotifier(server.Client()).Notify(context.Background(), server.URL, notification)
		require.NoError(t, err)
		require.Len(t, received.Embeds, 1)
		assert.Equal(t, discordColorFailed, received.Embeds[0].Color)
	})

	t.Run("should try exactly once and return non 2xx statuses as error", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		err := NewSlackNotifier(server.Client()).Notify(context.Background(), server.URL, notification)
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}
