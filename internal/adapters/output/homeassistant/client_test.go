package homeassistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"remi-card/internal/domain/model"
)

func TestClient_NotConfigured(t *testing.T) {
	c := NewClient()
	assert.False(t, c.IsConfigured())

	_, err := c.GetLanguage(context.Background())
	assert.Error(t, err)
	assert.Error(t, c.FireEvent(context.Background(), "x", nil))
}

func TestClient_GetLanguage(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/api/config", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Write([]byte(`{"language":"fr","location_name":"Home"}`))
	}))
	defer srv.Close()

	c := NewClient()
	c.Configure(srv.URL+"/", "secret")
	require.True(t, c.IsConfigured())

	lang, err := c.GetLanguage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fr", lang)

	// Cached
	lang, err = c.GetLanguage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fr", lang)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_GetLanguageError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient()
	c.Configure(srv.URL, "bad")
	_, err := c.GetLanguage(context.Background())
	assert.Error(t, err)
}

func TestClient_PublishConfigChanged(t *testing.T) {
	var got map[string]interface{}
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"message":"Event remi_card_config_changed fired."}`))
	}))
	defer srv.Close()

	c := NewClient()
	c.Configure(srv.URL, "secret")

	off := false
	err := c.PublishConfigChanged(context.Background(), model.ConfigChanged{
		Config: model.CardConfig{Type: model.CardType, DeviceID: "abc", ShowControls: &off},
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/events/"+model.ConfigChangedEventType, path)

	cfg, ok := got["config"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "abc", cfg["device_id"])
	assert.Equal(t, false, cfg["show_controls"])
}

func TestClient_FireEventError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient()
	c.Configure(srv.URL, "secret")
	assert.Error(t, c.FireEvent(context.Background(), "remi_test", map[string]string{"a": "b"}))
	assert.Error(t, c.FireEvent(context.Background(), "", nil))
}
