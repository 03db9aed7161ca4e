package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calmskies/deskboard/internal/core/domain"
)

// MockWeatherProvider implements driven.WeatherProvider for testing.
type MockWeatherProvider struct {
	CurrentFunc func(ctx context.Context, lat, lon float64) (*domain.Observation, error)
}

func (m *MockWeatherProvider) Current(ctx context.Context, lat, lon float64) (*domain.Observation, error) {
	if m.CurrentFunc != nil {
		return m.CurrentFunc(ctx, lat, lon)
	}
	return nil, nil
}

var testLocation = domain.Location{Name: "Lisbon", Latitude: 38.7169, Longitude: -9.1399}

func TestWeather_Current(t *testing.T) {
	provider := &MockWeatherProvider{
		CurrentFunc: func(_ context.Context, lat, lon float64) (*domain.Observation, error) {
			assert.Equal(t, testLocation.Latitude, lat)
			assert.Equal(t, testLocation.Longitude, lon)
			return &domain.Observation{TemperatureC: 21.4, Code: 3}, nil
		},
	}
	svc := NewWeather(provider, []domain.Location{testLocation})

	reading := svc.Current(context.Background(), testLocation)

	assert.Equal(t, "Lisbon", reading.Location)
	assert.Equal(t, "21.4°C", reading.Temperature)
	assert.Equal(t, "Overcast", reading.Description)
}

func TestWeather_Current_WholeDegrees(t *testing.T) {
	provider := &MockWeatherProvider{
		CurrentFunc: func(context.Context, float64, float64) (*domain.Observation, error) {
			return &domain.Observation{TemperatureC: -3, Code: 71}, nil
		},
	}
	svc := NewWeather(provider, nil)

	reading := svc.Current(context.Background(), testLocation)

	assert.Equal(t, "-3°C", reading.Temperature)
	assert.Equal(t, "Slight snowfall", reading.Description)
}

func TestWeather_Current_NoData(t *testing.T) {
	provider := &MockWeatherProvider{
		CurrentFunc: func(context.Context, float64, float64) (*domain.Observation, error) {
			return nil, nil
		},
	}
	svc := NewWeather(provider, nil)

	reading := svc.Current(context.Background(), testLocation)

	assert.Equal(t, "No data available", reading.Temperature)
	assert.Empty(t, reading.Description)
}

func TestWeather_Current_FetchError(t *testing.T) {
	provider := &MockWeatherProvider{
		CurrentFunc: func(context.Context, float64, float64) (*domain.Observation, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := NewWeather(provider, nil)

	reading := svc.Current(context.Background(), testLocation)

	assert.Equal(t, "Error fetching weather", reading.Temperature)
	assert.Empty(t, reading.Description)
}

func TestWeather_Locations(t *testing.T) {
	locs := []domain.Location{testLocation, {Name: "Munich", Latitude: 48.1374, Longitude: 11.5755}}
	svc := NewWeather(&MockWeatherProvider{}, locs)

	assert.Equal(t, locs, svc.Locations())
}
