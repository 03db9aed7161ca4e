package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/calmskies/deskboard/internal/core/domain"
)

// NoteOutput represents a single note.
type NoteOutput struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

// ListNotesInput is the input schema for the list_notes tool.
type ListNotesInput struct{}

// ListNotesOutput is the output schema for the list_notes tool.
type ListNotesOutput struct {
	Notes []NoteOutput `json:"notes"`
	Count int          `json:"count"`
}

// AddNoteInput is the input schema for the add_note tool.
type AddNoteInput struct {
	Text string `json:"text" jsonschema:"the note text to store"`
}

// AddNoteOutput is the output schema for the add_note tool.
type AddNoteOutput struct {
	Note NoteOutput `json:"note"`
}

// DeleteNoteInput is the input schema for the delete_note tool.
type DeleteNoteInput struct {
	ID string `json:"id" jsonschema:"the identifier of the note to delete"`
}

// DeleteNoteOutput is the output schema for the delete_note tool.
type DeleteNoteOutput struct {
	Deleted bool `json:"deleted"`
}

// CurrentWeatherInput is the input schema for the current_weather tool.
type CurrentWeatherInput struct{}

// ReadingOutput represents one location's rendered conditions.
type ReadingOutput struct {
	Location    string `json:"location"`
	Temperature string `json:"temperature"`
	Description string `json:"description,omitempty"`
}

// CurrentWeatherOutput is the output schema for the current_weather tool.
type CurrentWeatherOutput struct {
	Readings []ReadingOutput `json:"readings"`
}

// UpcomingEventsInput is the input schema for the upcoming_events tool.
type UpcomingEventsInput struct{}

// EventOutput represents a single calendar event.
type EventOutput struct {
	ID      string `json:"id"`
	Summary string `json:"summary"`
	Start   string `json:"start"`
	AllDay  bool   `json:"all_day"`
	Label   string `json:"label"`
}

// UpcomingEventsOutput is the output schema for the upcoming_events tool.
type UpcomingEventsOutput struct {
	Events []EventOutput `json:"events"`
	Count  int           `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_notes",
		Description: "List all notes on the dashboard",
	}, s.handleListNotes)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_note",
		Description: "Add a note to the dashboard",
	}, s.handleAddNote)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_note",
		Description: "Delete a note from the dashboard",
	}, s.handleDeleteNote)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "current_weather",
		Description: "Current weather conditions for the configured locations",
	}, s.handleCurrentWeather)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "upcoming_events",
		Description: "Upcoming events from the primary Google Calendar",
	}, s.handleUpcomingEvents)
}

// handleListNotes handles the list_notes tool invocation.
func (s *Server) handleListNotes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListNotesInput,
) (*mcp.CallToolResult, ListNotesOutput, error) {
	notes, err := s.ports.Notes.List(ctx)
	if err != nil {
		return nil, ListNotesOutput{}, err
	}

	output := ListNotesOutput{
		Notes: make([]NoteOutput, len(notes)),
		Count: len(notes),
	}
	for i, note := range notes {
		output.Notes[i] = noteOutput(note)
	}

	return nil, output, nil
}

// handleAddNote handles the add_note tool invocation.
func (s *Server) handleAddNote(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddNoteInput,
) (*mcp.CallToolResult, AddNoteOutput, error) {
	note, err := s.ports.Notes.Add(ctx, input.Text)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyNote) {
			return nil, AddNoteOutput{}, errors.New("note text is empty")
		}
		return nil, AddNoteOutput{}, err
	}

	return nil, AddNoteOutput{Note: noteOutput(*note)}, nil
}

// handleDeleteNote handles the delete_note tool invocation.
func (s *Server) handleDeleteNote(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteNoteInput,
) (*mcp.CallToolResult, DeleteNoteOutput, error) {
	if err := s.ports.Notes.Delete(ctx, input.ID); err != nil {
		return nil, DeleteNoteOutput{}, err
	}
	return nil, DeleteNoteOutput{Deleted: true}, nil
}

// handleCurrentWeather handles the current_weather tool invocation.
func (s *Server) handleCurrentWeather(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ CurrentWeatherInput,
) (*mcp.CallToolResult, CurrentWeatherOutput, error) {
	locations := s.ports.Weather.Locations()

	output := CurrentWeatherOutput{
		Readings: make([]ReadingOutput, 0, len(locations)),
	}
	for _, loc := range locations {
		reading := s.ports.Weather.Current(ctx, loc)
		output.Readings = append(output.Readings, ReadingOutput{
			Location:    reading.Location,
			Temperature: reading.Temperature,
			Description: reading.Description,
		})
	}

	return nil, output, nil
}

// handleUpcomingEvents handles the upcoming_events tool invocation.
func (s *Server) handleUpcomingEvents(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ UpcomingEventsInput,
) (*mcp.CallToolResult, UpcomingEventsOutput, error) {
	if s.ports.Calendar == nil {
		return nil, UpcomingEventsOutput{}, errors.New("calendar is not configured")
	}

	events, err := s.ports.Calendar.Upcoming(ctx)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCalendarUnavailable):
			return nil, UpcomingEventsOutput{}, errors.New("calendar is not configured")
		case errors.Is(err, domain.ErrNotSignedIn):
			return nil, UpcomingEventsOutput{}, errors.New("not signed in to Google Calendar")
		default:
			return nil, UpcomingEventsOutput{}, err
		}
	}

	output := UpcomingEventsOutput{
		Events: make([]EventOutput, len(events)),
		Count:  len(events),
	}
	for i, e := range events {
		output.Events[i] = EventOutput{
			ID:      e.ID,
			Summary: e.Summary,
			Start:   e.Start.Format(time.RFC3339),
			AllDay:  e.AllDay,
			Label:   e.Label(),
		}
	}

	return nil, output, nil
}

func noteOutput(note domain.Note) NoteOutput {
	return NoteOutput{
		ID:        note.ID,
		Text:      note.Text,
		CreatedAt: note.CreatedAt.Format(time.RFC3339),
	}
}
