// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/calmskies/deskboard/internal/core/domain"
	"github.com/calmskies/deskboard/internal/core/ports/driven"
	"github.com/calmskies/deskboard/internal/core/ports/driving"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewDashboard is the main dashboard with all three panels.
	ViewDashboard ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewDashboard:
		return "dashboard"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// WeatherLoaded carries the rendered readings for all locations.
type WeatherLoaded struct {
	Readings []driving.Reading
}

// NotesSubscribed carries the live note subscription handle.
type NotesSubscribed struct {
	Sub *driven.NoteSubscription
}

// NotesSnapshot carries the full note collection after a change.
type NotesSnapshot struct {
	Notes []domain.Note
}

// NoteAdded signals the outcome of a note submission.
type NoteAdded struct {
	Note *domain.Note
	Err  error
}

// NoteDeleted signals the outcome of a note deletion.
type NoteDeleted struct {
	ID  string
	Err error
}

// EventsLoaded carries the upcoming calendar events.
type EventsLoaded struct {
	Events []domain.Event
	Err    error
}

// SignInCompleted signals the sign-in flow finished.
type SignInCompleted struct {
	Err error
}

// SignOutCompleted signals sign-out finished.
type SignOutCompleted struct {
	Err error
}

// SignInStateChanged is sent when a sign-in listener observes a new
// session state outside the panel's own command flow.
type SignInStateChanged struct {
	SignedIn bool
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
