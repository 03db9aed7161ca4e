// Package calendar provides the upcoming-events panel for the dashboard.
package calendar

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calmskies/deskboard/internal/adapters/driving/tui/keymap"
	"github.com/calmskies/deskboard/internal/adapters/driving/tui/messages"
	"github.com/calmskies/deskboard/internal/adapters/driving/tui/styles"
	"github.com/calmskies/deskboard/internal/core/domain"
	"github.com/calmskies/deskboard/internal/core/ports/driving"
)

// noEventsPlaceholder is shown when the calendar has no upcoming events.
const noEventsPlaceholder = "No upcoming events found."

// View is the calendar panel. A fetch failure keeps the previously
// shown events; a successful fetch replaces them.
type View struct {
	styles          *styles.Styles
	keymap          *keymap.KeyMap
	calendarService driving.CalendarService

	events    []domain.Event
	signedIn  bool
	loading   bool
	signingIn bool
	err       error
	width     int
}

// NewView creates a new calendar panel.
func NewView(s *styles.Styles, km *keymap.KeyMap, calendarService driving.CalendarService) *View {
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:          s,
		keymap:          km,
		calendarService: calendarService,
	}
}

// Init checks the sign-in state and loads events when a session exists.
func (v *View) Init() tea.Cmd {
	if !v.calendarService.Configured() {
		return nil
	}
	v.signedIn = v.calendarService.SignedIn(context.Background())
	if !v.signedIn {
		return nil
	}
	v.loading = true
	return v.loadEvents()
}

// loadEvents returns a command that fetches the upcoming events.
func (v *View) loadEvents() tea.Cmd {
	return func() tea.Msg {
		events, err := v.calendarService.Upcoming(context.Background())
		return messages.EventsLoaded{Events: events, Err: err}
	}
}

// signIn returns a command that runs the interactive sign-in flow.
func (v *View) signIn() tea.Cmd {
	return func() tea.Msg {
		err := v.calendarService.SignIn(context.Background())
		return messages.SignInCompleted{Err: err}
	}
}

// signOut returns a command that ends the session.
func (v *View) signOut() tea.Cmd {
	return func() tea.Msg {
		err := v.calendarService.SignOut(context.Background())
		return messages.SignOutCompleted{Err: err}
	}
}

// Update handles messages for the calendar panel.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.EventsLoaded:
		v.loading = false
		if msg.Err != nil {
			// Keep whatever was on screen before the failure.
			v.err = msg.Err
			return v, nil
		}
		v.events = msg.Events
		v.err = nil
		return v, nil

	case messages.SignInCompleted:
		v.signingIn = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		if v.signedIn {
			// A sign-in listener already flipped the state and
			// started the event load.
			return v, nil
		}
		v.signedIn = true
		v.err = nil
		v.loading = true
		return v, v.loadEvents()

	case messages.SignInStateChanged:
		if msg.SignedIn == v.signedIn {
			return v, nil
		}
		v.signedIn = msg.SignedIn
		v.err = nil
		if msg.SignedIn {
			v.loading = true
			return v, v.loadEvents()
		}
		v.events = nil
		return v, nil

	case messages.SignOutCompleted:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.signedIn = false
		v.events = nil
		v.err = nil
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses while the panel has focus.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if !v.calendarService.Configured() {
		return v, nil
	}

	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.SignIn):
		if !v.signedIn && !v.signingIn {
			v.signingIn = true
			return v, v.signIn()
		}
	case keymap.Matches(key, v.keymap.SignOut):
		if v.signedIn {
			return v, v.signOut()
		}
	case keymap.Matches(key, v.keymap.Refresh):
		if v.signedIn {
			v.loading = true
			return v, v.loadEvents()
		}
	}

	return v, nil
}

// Events returns the current event list (for testing).
func (v *View) Events() []domain.Event {
	return v.events
}

// SignedIn returns the panel's sign-in state (for testing).
func (v *View) SignedIn() bool {
	return v.signedIn
}

// Err returns the last error shown in the panel.
func (v *View) Err() error {
	return v.err
}

// View renders the calendar panel.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Calendar"))
	b.WriteString("\n\n")

	switch {
	case !v.calendarService.Configured():
		b.WriteString(v.styles.Muted.Render("Calendar is not configured. Add Google OAuth credentials to the config file."))

	case v.signingIn:
		b.WriteString(v.styles.Muted.Render("Waiting for sign-in in the browser..."))

	case !v.signedIn:
		b.WriteString(v.styles.Normal.Render("Not signed in."))
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("Press s to sign in with Google."))

	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading events..."))

	case len(v.events) == 0:
		b.WriteString(v.styles.Muted.Render(noEventsPlaceholder))

	default:
		for i, e := range v.events {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(v.styles.Normal.Render(e.Label()))
		}
	}

	if v.err != nil {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	}

	return b.String()
}
