package driving

import (
	"context"

	"github.com/calmskies/deskboard/internal/core/domain"
)

// Reading is the rendered content of one location's two display slots.
// Failures never propagate out of the weather service; they surface as
// fallback text in the temperature slot.
type Reading struct {
	// Location is the display name of the location.
	Location string

	// Temperature is the temperature slot text, e.g. "21.4°C",
	// "No data available" or "Error fetching weather".
	Temperature string

	// Description is the description slot text. Empty on failure.
	Description string
}

// WeatherService renders current conditions for the configured locations.
type WeatherService interface {
	// Locations returns the fixed set of configured locations.
	Locations() []domain.Location

	// Current fetches and renders the current conditions for a
	// location. It never returns an error; failures are logged and
	// rendered as fallback text.
	Current(ctx context.Context, loc domain.Location) Reading
}
