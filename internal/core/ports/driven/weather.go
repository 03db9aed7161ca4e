package driven

import (
	"context"

	"github.com/calmskies/deskboard/internal/core/domain"
)

// WeatherProvider fetches current conditions from a weather endpoint.
type WeatherProvider interface {
	// Current returns the current observation for the coordinates.
	// A nil observation with a nil error means the endpoint answered
	// but carried no current-conditions payload.
	Current(ctx context.Context, latitude, longitude float64) (*domain.Observation, error)
}
