package mcp

import (
	"github.com/calmskies/deskboard/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Weather renders current conditions for the configured locations.
	Weather driving.WeatherService

	// Notes manages the note collection.
	Notes driving.NotesService

	// Calendar exposes sign-in state and upcoming events. Optional:
	// without it the events tool reports the feature as unavailable.
	Calendar driving.CalendarService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Weather == nil {
		return ErrMissingWeatherService
	}
	if p.Notes == nil {
		return ErrMissingNotesService
	}
	return nil
}
