// Package openmeteo fetches current conditions from the Open-Meteo
// public forecast API. Requests need no authentication; a token-bucket
// rate limiter keeps the client well inside the free-tier limits.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/calmskies/deskboard/internal/core/domain"
	"github.com/calmskies/deskboard/internal/core/ports/driven"
)

// DefaultBaseURL is the public Open-Meteo forecast endpoint.
const DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// requestTimezone is the fixed timezone query parameter.
const requestTimezone = "auto"

// Ensure Client implements the driven port.
var _ driven.WeatherProvider = (*Client)(nil)

// Client is an HTTP client for the Open-Meteo current-weather endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL overrides the endpoint, used in tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates an Open-Meteo client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(2), 4),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// response mirrors the JSON payload. CurrentWeather is a pointer so an
// answer without the field decodes to nil rather than a zero value.
type response struct {
	CurrentWeather *currentWeather `json:"current_weather"`
}

type currentWeather struct {
	Temperature float64 `json:"temperature"`
	WeatherCode int     `json:"weathercode"`
}

// Current fetches the current observation for the coordinates.
// A nil observation with nil error means the payload carried no
// current_weather object.
func (c *Client) Current(ctx context.Context, latitude, longitude float64) (*domain.Observation, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("current_weather", "true")
	q.Set("timezone", requestTimezone)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather request failed with status %d", resp.StatusCode)
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode weather response: %w", err)
	}

	if payload.CurrentWeather == nil {
		return nil, nil
	}

	return &domain.Observation{
		TemperatureC: payload.CurrentWeather.Temperature,
		Code:         domain.WeatherCode(payload.CurrentWeather.WeatherCode),
	}, nil
}
