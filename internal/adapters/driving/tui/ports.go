// Package tui provides the interactive dashboard for deskboard.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/calmskies/deskboard/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Weather renders current conditions for the configured locations.
	Weather driving.WeatherService

	// Notes manages the note collection.
	Notes driving.NotesService

	// Calendar exposes sign-in state and upcoming events.
	Calendar driving.CalendarService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	weather driving.WeatherService,
	notes driving.NotesService,
	calendar driving.CalendarService,
) *Ports {
	return &Ports{
		Weather:  weather,
		Notes:    notes,
		Calendar: calendar,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Weather == nil {
		return ErrMissingWeatherService
	}
	if p.Notes == nil {
		return ErrMissingNotesService
	}
	if p.Calendar == nil {
		return ErrMissingCalendarService
	}
	return nil
}
