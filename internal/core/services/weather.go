package services

import (
	"context"
	"strconv"

	"github.com/calmskies/deskboard/internal/core/domain"
	"github.com/calmskies/deskboard/internal/core/ports/driven"
	"github.com/calmskies/deskboard/internal/core/ports/driving"
	"github.com/calmskies/deskboard/internal/logger"
)

// Fallback texts for the temperature slot.
const (
	msgNoWeatherData  = "No data available"
	msgWeatherFailure = "Error fetching weather"
)

// Ensure Weather implements the driving port.
var _ driving.WeatherService = (*Weather)(nil)

// Weather renders current conditions for a fixed set of locations.
type Weather struct {
	provider  driven.WeatherProvider
	locations []domain.Location
}

// NewWeather creates the weather service.
func NewWeather(provider driven.WeatherProvider, locations []domain.Location) *Weather {
	return &Weather{
		provider:  provider,
		locations: locations,
	}
}

// Locations returns the configured locations.
func (s *Weather) Locations() []domain.Location {
	return s.locations
}

// Current fetches and renders the current conditions for a location.
// Any provider failure is caught and logged here; the reading carries
// the fallback text instead.
func (s *Weather) Current(ctx context.Context, loc domain.Location) driving.Reading {
	reading := driving.Reading{Location: loc.Name}

	obs, err := s.provider.Current(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		logger.Warn("weather fetch for %s failed: %v", loc.Name, err)
		reading.Temperature = msgWeatherFailure
		return reading
	}
	if obs == nil {
		reading.Temperature = msgNoWeatherData
		return reading
	}

	reading.Temperature = formatTemperature(obs.TemperatureC)
	reading.Description = obs.Code.Description()
	return reading
}

// formatTemperature renders a temperature as e.g. "21.4°C".
// The shortest decimal representation is used, so 21.0 renders "21°C".
func formatTemperature(t float64) string {
	return strconv.FormatFloat(t, 'f', -1, 64) + "°C"
}
