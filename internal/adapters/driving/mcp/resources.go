package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for deskboard resources.
const uriScheme = "deskboard://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "notes",
		Name:        "notes",
		Description: "All notes on the dashboard",
		MIMEType:    "application/json",
	}, s.handleNotesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "weather",
		Name:        "weather",
		Description: "Current conditions for the configured locations",
		MIMEType:    "application/json",
	}, s.handleWeatherResource)
}

// handleNotesResource returns the full note collection as JSON.
func (s *Server) handleNotesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	notes, err := s.ports.Notes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}

	infos := make([]NoteOutput, len(notes))
	for i, note := range notes {
		infos[i] = noteOutput(note)
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling notes: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleWeatherResource returns the rendered readings as JSON.
func (s *Server) handleWeatherResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	locations := s.ports.Weather.Locations()

	infos := make([]ReadingOutput, 0, len(locations))
	for _, loc := range locations {
		reading := s.ports.Weather.Current(ctx, loc)
		infos = append(infos, ReadingOutput{
			Location:    reading.Location,
			Temperature: reading.Temperature,
			Description: reading.Description,
		})
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling readings: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
