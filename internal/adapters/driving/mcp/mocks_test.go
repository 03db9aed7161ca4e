package mcp

import (
	"context"

	"github.com/calmskies/deskboard/internal/core/domain"
	"github.com/calmskies/deskboard/internal/core/ports/driven"
	"github.com/calmskies/deskboard/internal/core/ports/driving"
)

// mockWeatherService implements driving.WeatherService for testing.
type mockWeatherService struct {
	locations []domain.Location
	readings  map[string]driving.Reading
}

func (m *mockWeatherService) Locations() []domain.Location {
	return m.locations
}

func (m *mockWeatherService) Current(_ context.Context, loc domain.Location) driving.Reading {
	if r, ok := m.readings[loc.Name]; ok {
		return r
	}
	return driving.Reading{Location: loc.Name, Temperature: "No data available"}
}

// mockNotesService implements driving.NotesService for testing.
type mockNotesService struct {
	notes     []domain.Note
	added     []string
	deleted   []string
	addErr    error
	listErr   error
	deleteErr error
}

func (m *mockNotesService) Available() bool { return true }

func (m *mockNotesService) Add(_ context.Context, text string) (*domain.Note, error) {
	if m.addErr != nil {
		return nil, m.addErr
	}
	m.added = append(m.added, text)
	return &domain.Note{ID: "note-1", Text: text}, nil
}

func (m *mockNotesService) Delete(_ context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockNotesService) List(_ context.Context) ([]domain.Note, error) {
	return m.notes, m.listErr
}

func (m *mockNotesService) Subscribe(_ context.Context) (*driven.NoteSubscription, error) {
	return nil, domain.ErrNotesUnavailable
}

// mockCalendarService implements driving.CalendarService for testing.
type mockCalendarService struct {
	events []domain.Event
	err    error
}

func (m *mockCalendarService) Configured() bool                  { return true }
func (m *mockCalendarService) SignedIn(_ context.Context) bool   { return true }
func (m *mockCalendarService) SignIn(_ context.Context) error    { return nil }
func (m *mockCalendarService) SignOut(_ context.Context) error   { return nil }
func (m *mockCalendarService) OnSignInChange(func(bool)) func()  { return func() {} }

func (m *mockCalendarService) Upcoming(_ context.Context) ([]domain.Event, error) {
	return m.events, m.err
}

func testPorts() *Ports {
	return &Ports{
		Weather:  &mockWeatherService{},
		Notes:    &mockNotesService{},
		Calendar: &mockCalendarService{},
	}
}
