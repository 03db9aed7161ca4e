package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calmskies/deskboard/internal/core/domain"
)

func TestClient_Current(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"latitude":        q.Get("latitude"),
			"longitude":       q.Get("longitude"),
			"current_weather": q.Get("current_weather"),
			"timezone":        q.Get("timezone"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"current_weather":{"temperature":21.4,"weathercode":3}}`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))

	obs, err := client.Current(context.Background(), 38.7169, -9.1399)

	require.NoError(t, err)
	require.NotNil(t, obs)
	assert.Equal(t, 21.4, obs.TemperatureC)
	assert.Equal(t, domain.WeatherCode(3), obs.Code)
	assert.Equal(t, map[string]string{
		"latitude":        "38.7169",
		"longitude":       "-9.1399",
		"current_weather": "true",
		"timezone":        "auto",
	}, gotQuery)
}

func TestClient_Current_MissingPayloadField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"latitude":38.7,"longitude":-9.1}`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))

	obs, err := client.Current(context.Background(), 38.7, -9.1)

	require.NoError(t, err)
	assert.Nil(t, obs, "missing current_weather is no data, not an error")
}

func TestClient_Current_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))

	_, err := client.Current(context.Background(), 0, 0)
	assert.Error(t, err)
}

func TestClient_Current_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))

	_, err := client.Current(context.Background(), 0, 0)
	assert.Error(t, err)
}

func TestClient_Current_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse connections

	client := NewClient(WithBaseURL(srv.URL))

	_, err := client.Current(context.Background(), 0, 0)
	assert.Error(t, err)
}
