// Package mcp provides an MCP (Model Context Protocol) server adapter for deskboard.
// It enables AI assistants like Claude to read the dashboard and manage notes.
package mcp

import "errors"

// ErrMissingWeatherService is returned when the weather service is not provided.
var ErrMissingWeatherService = errors.New("mcp: weather service is required")

// ErrMissingNotesService is returned when the notes service is not provided.
var ErrMissingNotesService = errors.New("mcp: notes service is required")
