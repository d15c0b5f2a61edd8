package scripts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lisapod/lisapod-api/pkg/errors"
)

// fakeCompletionServer returns an httptest server that answers every chat
// completion request with the given content, recording the last request body.
func fakeCompletionServer(t *testing.T, content string, lastBody *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if lastBody != nil {
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			*lastBody = body
		}
		w.Header().Set("Content-Type", "application/json")
		resp := map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message":       map[string]any{"role": "assistant", "content": content},
				},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	return NewClient(Config{
		APIKey:        "test-key",
		BaseURL:       serverURL + "/",
		Model:         "gpt-4o-mini",
		EpisodeCount:  5,
		ScriptCharCap: 4000,
	})
}

func TestClient_GenerateLineup(t *testing.T) {
	var body map[string]any
	server := fakeCompletionServer(t, validLineup, &body)
	defer server.Close()

	client := newTestClient(t, server.URL)
	lineup, err := client.GenerateLineup(context.Background(), "Ocean Life", "en")
	require.NoError(t, err)
	assert.Equal(t, validLineup, lineup)

	// System prompt carries the episode count and language instruction.
	messages := body["messages"].([]any)
	system := messages[0].(map[string]any)["content"].(string)
	assert.Contains(t, system, "exactly 5 episodes")
	assert.Contains(t, system, "English")
	user := messages[1].(map[string]any)["content"].(string)
	assert.Contains(t, user, "Ocean Life")
}

func TestClient_GenerateLineup_RejectsMalformed(t *testing.T) {
	server := fakeCompletionServer(t, "Sure! Here are some ideas for you.", nil)
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.GenerateLineup(context.Background(), "Ocean Life", "en")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeGenerationFailed))
}

func TestClient_GenerateIntro(t *testing.T) {
	var body map[string]any
	server := fakeCompletionServer(t, "Welcome to Ocean Life!", &body)
	defer server.Close()

	client := newTestClient(t, server.URL)
	script, err := client.GenerateIntro(context.Background(), "Ocean Life", validLineup, "es")
	require.NoError(t, err)
	assert.Equal(t, "Welcome to Ocean Life!", script)

	messages := body["messages"].([]any)
	system := messages[0].(map[string]any)["content"].(string)
	assert.Contains(t, system, "Spanish")
	user := messages[1].(map[string]any)["content"].(string)
	assert.Contains(t, user, validLineup)
}

func TestClient_GenerateEpisode_ChainsPriorSegments(t *testing.T) {
	var body map[string]any
	server := fakeCompletionServer(t, "Episode two script.", &body)
	defer server.Close()

	client := newTestClient(t, server.URL)
	script, err := client.GenerateEpisode(context.Background(), EpisodeRequest{
		Topic:         "Ocean Life",
		EpisodeIndex:  2,
		Lineup:        validLineup,
		PriorSegments: []string{"intro script", "episode one script"},
		Language:      "en",
	})
	require.NoError(t, err)
	assert.Equal(t, "Episode two script.", script)

	messages := body["messages"].([]any)
	system := messages[0].(map[string]any)["content"].(string)
	assert.Contains(t, system, "intro script")
	assert.Contains(t, system, "episode one script")
	assert.Contains(t, system, "episode 2")
}

func TestClient_GenerateEpisode_RemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"overloaded"}}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.GenerateEpisode(context.Background(), EpisodeRequest{
		Topic:        "Ocean Life",
		EpisodeIndex: 3,
		Lineup:       validLineup,
		Language:     "en",
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeGenerationFailed))
}
