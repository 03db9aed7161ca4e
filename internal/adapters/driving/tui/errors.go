package tui

import "errors"

// ErrMissingWeatherService is returned when the weather service is not provided.
var ErrMissingWeatherService = errors.New("tui: weather service is required")

// ErrMissingNotesService is returned when the notes service is not provided.
var ErrMissingNotesService = errors.New("tui: notes service is required")

// ErrMissingCalendarService is returned when the calendar service is not provided.
var ErrMissingCalendarService = errors.New("tui: calendar service is required")
