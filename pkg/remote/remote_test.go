package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/bookline/pkg/booking"
)

func TestCreateSession(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-BB-API-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "sess-123", "connectUrl": "wss://connect.example/sess-123"}`))
	}))
	defer server.Close()

	client := NewClient("bb-key", WithAPIBase(server.URL))
	info, err := client.CreateSession(context.Background(), "proj-1")
	require.NoError(t, err)

	assert.Equal(t, "/v1/sessions", gotPath)
	assert.Equal(t, "bb-key", gotKey)
	assert.Equal(t, "proj-1", gotBody["projectId"])
	assert.Equal(t, "sess-123", info.ID)
	assert.Equal(t, "wss://connect.example/sess-123", info.ConnectURL)
}

func TestCreateSessionErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "invalid api key"}`))
	}))
	defer server.Close()

	client := NewClient("bad", WithAPIBase(server.URL))
	_, err := client.CreateSession(context.Background(), "proj-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=401")
}

func TestCreateSessionIncompleteResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "sess-123"}`))
	}))
	defer server.Close()

	client := NewClient("bb-key", WithAPIBase(server.URL))
	_, err := client.CreateSession(context.Background(), "proj-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing id or connect URL")
}

func TestAcquireRequiresCredentials(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing api key", Config{ProjectID: "proj-1"}},
		{"missing project id", Config{APIKey: "bb-key"}},
		{"missing both", Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := NewManager(tt.cfg, nil)
			_, err := manager.Acquire(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, booking.ErrMissingCredentials)
		})
	}
}

func TestShutdownWithoutInitialize(t *testing.T) {
	manager := NewManager(Config{}, nil)
	assert.NoError(t, manager.Shutdown())
}
