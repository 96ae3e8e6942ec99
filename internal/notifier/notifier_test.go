package notifier

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spaceshooter/backend/internal/access"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNotifyNewRequestPostsPayload(t *testing.T) {
	var gotToken string
	var gotPayload map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/internal/new-request", r.URL.Path)
		gotToken = r.Header.Get("X-Internal-Token")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := New(server.URL, "internal-secret", testLogger())
	n.NotifyNewRequest(context.Background(), access.NewRequestNotification{
		RequestID:  7,
		TelegramID: 99001122,
		Username:   "adal",
		FirstName:  "Ada",
		Comment:    "let me in",
	})

	assert.Equal(t, "internal-secret", gotToken)
	assert.EqualValues(t, 7, gotPayload["request_id"])
	assert.EqualValues(t, 99001122, gotPayload["telegram_id"])
	assert.Equal(t, "adal", gotPayload["username"])
	assert.Equal(t, "let me in", gotPayload["comment"])
}

func TestNotifyNewRequestDisabledWithoutToken(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	n := New(server.URL, "", testLogger())
	n.NotifyNewRequest(context.Background(), access.NewRequestNotification{RequestID: 7})

	assert.False(t, called)
}

func TestNotifyNewRequestSwallowsFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	server.Close() // connection refused from here on

	n := New(server.URL, "internal-secret", testLogger())

	// Must not panic or surface anything to the caller.
	n.NotifyNewRequest(context.Background(), access.NewRequestNotification{RequestID: 7})
}
