package weather

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calmskies/deskboard/internal/adapters/driving/tui/messages"
	"github.com/calmskies/deskboard/internal/adapters/driving/tui/styles"
	"github.com/calmskies/deskboard/internal/core/domain"
	"github.com/calmskies/deskboard/internal/core/ports/driving"
)

// MockWeatherService implements driving.WeatherService for testing.
type MockWeatherService struct {
	LocationsFunc func() []domain.Location
	CurrentFunc   func(ctx context.Context, loc domain.Location) driving.Reading
}

func (m *MockWeatherService) Locations() []domain.Location {
	if m.LocationsFunc != nil {
		return m.LocationsFunc()
	}
	return nil
}

func (m *MockWeatherService) Current(ctx context.Context, loc domain.Location) driving.Reading {
	if m.CurrentFunc != nil {
		return m.CurrentFunc(ctx, loc)
	}
	return driving.Reading{Location: loc.Name}
}

func TestView_LoadsAllLocations(t *testing.T) {
	svc := &MockWeatherService{
		LocationsFunc: func() []domain.Location {
			return []domain.Location{
				{Name: "Lisbon", Latitude: 38.7169, Longitude: -9.1399},
				{Name: "Munich", Latitude: 48.1374, Longitude: 11.5755},
			}
		},
		CurrentFunc: func(ctx context.Context, loc domain.Location) driving.Reading {
			if loc.Name == "Lisbon" {
				return driving.Reading{Location: "Lisbon", Temperature: "21.4°C", Description: "Overcast"}
			}
			return driving.Reading{Location: "Munich", Temperature: "Error fetching weather"}
		},
	}

	v := NewView(styles.DefaultStyles(), nil, svc)
	assert.Contains(t, v.View(), "Fetching weather...")

	cmd := v.Init()
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, messages.WeatherLoaded{}, msg)

	v, _ = v.Update(msg)
	require.Len(t, v.Readings(), 2)

	rendered := v.View()
	assert.Contains(t, rendered, "Lisbon")
	assert.Contains(t, rendered, "21.4°C")
	assert.Contains(t, rendered, "Overcast")
	assert.Contains(t, rendered, "Munich")
	assert.Contains(t, rendered, "Error fetching weather")
}

func TestView_OneReadingPerLocationOnFailure(t *testing.T) {
	svc := &MockWeatherService{
		LocationsFunc: func() []domain.Location {
			return []domain.Location{
				{Name: "Lisbon"},
				{Name: "Munich"},
			}
		},
		CurrentFunc: func(ctx context.Context, loc domain.Location) driving.Reading {
			return driving.Reading{Location: loc.Name, Temperature: "No data available"}
		},
	}

	v := NewView(styles.DefaultStyles(), nil, svc)
	msg := v.Init()()

	v, _ = v.Update(msg)
	require.Len(t, v.Readings(), 2)
	for _, r := range v.Readings() {
		assert.Equal(t, "No data available", r.Temperature)
		assert.Empty(t, r.Description)
	}
}
