package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calmskies/deskboard/internal/adapters/driving/tui/keymap"
	"github.com/calmskies/deskboard/internal/adapters/driving/tui/messages"
	"github.com/calmskies/deskboard/internal/adapters/driving/tui/styles"
	"github.com/calmskies/deskboard/internal/adapters/driving/tui/views/calendar"
	"github.com/calmskies/deskboard/internal/adapters/driving/tui/views/notes"
	"github.com/calmskies/deskboard/internal/adapters/driving/tui/views/weather"
	"github.com/calmskies/deskboard/internal/core/domain"
	"github.com/calmskies/deskboard/internal/core/ports/driven"
)

// Panel identifies a dashboard panel that can hold keyboard focus.
type Panel int

const (
	// PanelNotes is the note input and list.
	PanelNotes Panel = iota
	// PanelCalendar is the upcoming-events list.
	PanelCalendar
	// PanelWeather is the current-conditions display.
	PanelWeather
)

// String returns the string representation of the panel.
func (p Panel) String() string {
	switch p {
	case PanelNotes:
		return "notes"
	case PanelCalendar:
		return "calendar"
	case PanelWeather:
		return "weather"
	default:
		return "unknown"
	}
}

// App is the dashboard application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings shared with the panels.
	keymap *keymap.KeyMap

	// weatherView is the current-conditions panel.
	weatherView *weather.View

	// notesView is the note input and list panel.
	notesView *notes.View

	// calendarView is the upcoming-events panel.
	calendarView *calendar.View

	// sub is the live note subscription, nil when notes are disabled.
	sub *driven.NoteSubscription

	// focused tracks which panel has keyboard focus.
	focused Panel

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new dashboard application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		weatherView:  weather.NewView(s, km, ports.Weather),
		notesView:    notes.NewView(s, km, ports.Notes),
		calendarView: calendar.NewView(s, km, ports.Calendar),
		focused:      PanelNotes,
		currentView:  messages.ViewDashboard,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It starts the weather fetch, the calendar load and the live note
// subscription.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("deskboard"),
		a.weatherView.Init(),
		a.calendarView.Init(),
		a.notesView.Init(),
		a.subscribeNotes(),
	)
}

// subscribeNotes returns a command that opens the live note query.
func (a *App) subscribeNotes() tea.Cmd {
	return func() tea.Msg {
		sub, err := a.ports.Notes.Subscribe(a.ctx)
		if err != nil {
			if errors.Is(err, domain.ErrNotesUnavailable) {
				// The notes panel renders its own disabled notice.
				return nil
			}
			return messages.ErrorOccurred{Err: err}
		}
		return messages.NotesSubscribed{Sub: sub}
	}
}

// quit emits the Quit message.
func quit() tea.Msg {
	return messages.Quit{}
}

// changeView returns a command that switches the active view.
func changeView(view messages.ViewType) tea.Cmd {
	return func() tea.Msg {
		return messages.ViewChanged{View: view}
	}
}

// waitForSnapshot returns a command that blocks on the subscription
// channel and delivers the next full snapshot.
func waitForSnapshot(sub *driven.NoteSubscription) tea.Cmd {
	return func() tea.Msg {
		snapshot, ok := <-sub.C
		if !ok {
			return nil
		}
		return messages.NotesSnapshot{Notes: snapshot}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.weatherView, _ = a.weatherView.Update(msg)
		a.notesView, _ = a.notesView.Update(msg)
		a.calendarView, _ = a.calendarView.Update(msg)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.NotesSubscribed:
		a.sub = msg.Sub
		return a, waitForSnapshot(a.sub)

	case messages.NotesSnapshot:
		a.notesView, cmd = a.notesView.Update(msg)
		// Re-arm the wait for the next snapshot.
		return a, tea.Batch(cmd, waitForSnapshot(a.sub))

	case messages.NoteAdded, messages.NoteDeleted:
		a.notesView, cmd = a.notesView.Update(msg)
		return a, cmd

	case messages.WeatherLoaded:
		a.weatherView, cmd = a.weatherView.Update(msg)
		return a, cmd

	case messages.EventsLoaded, messages.SignInCompleted, messages.SignOutCompleted,
		messages.SignInStateChanged:
		a.calendarView, cmd = a.calendarView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

// handleKeyMsg routes key presses: global bindings first, then the
// focused panel.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c quits from anywhere, even while typing a note.
	if msg.Type == tea.KeyCtrlC {
		return a, quit
	}

	key := msg.String()

	if a.currentView == messages.ViewHelp {
		if keymap.Matches(key, a.keymap.Back) {
			return a, changeView(messages.ViewDashboard)
		}
		return a, nil
	}

	// The notes input consumes printable keys, so q and ? are global
	// only while another panel has focus.
	if a.focused != PanelNotes {
		switch {
		case keymap.Matches(key, a.keymap.Quit), keymap.Matches(key, a.keymap.Back):
			return a, quit
		case keymap.Matches(key, a.keymap.Help):
			return a, changeView(messages.ViewHelp)
		}
	} else if keymap.Matches(key, a.keymap.Back) {
		return a, quit
	}

	if keymap.Matches(key, a.keymap.NextPanel) {
		a.cycleFocus()
		return a, nil
	}

	var cmd tea.Cmd
	switch a.focused {
	case PanelNotes:
		a.notesView, cmd = a.notesView.Update(msg)
	case PanelCalendar:
		a.calendarView, cmd = a.calendarView.Update(msg)
	case PanelWeather:
		a.weatherView, cmd = a.weatherView.Update(msg)
	}
	return a, cmd
}

// cycleFocus moves keyboard focus to the next panel.
func (a *App) cycleFocus() {
	switch a.focused {
	case PanelNotes:
		a.notesView.Blur()
		a.focused = PanelCalendar
	case PanelCalendar:
		a.focused = PanelWeather
	case PanelWeather:
		a.focused = PanelNotes
		a.notesView.Focus()
	}
}

// View implements tea.Model.
// It renders the dashboard as three bordered panels.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	if a.currentView == messages.ViewHelp {
		return a.viewHelp()
	}

	panelWidth := a.width/2 - 4
	if panelWidth < 30 {
		panelWidth = 30
	}

	weatherPanel := a.panelStyle(PanelWeather).Width(panelWidth).Render(a.weatherView.View())
	calendarPanel := a.panelStyle(PanelCalendar).Width(panelWidth).Render(a.calendarView.View())
	notesPanel := a.panelStyle(PanelNotes).Width(a.width - 4).Render(a.notesView.View())

	top := lipgloss.JoinHorizontal(lipgloss.Top, weatherPanel, calendarPanel)

	hints := make([]string, 0, 2)
	for _, b := range a.keymap.ShortHelp() {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	help := a.styles.Help.Render(strings.Join(hints, " | "))

	return lipgloss.JoinVertical(lipgloss.Left, top, notesPanel, help)
}

// panelStyle returns the border style for a panel, highlighted when
// it holds focus.
func (a *App) panelStyle(p Panel) lipgloss.Style {
	if a.focused == p {
		return a.styles.PanelFocused
	}
	return a.styles.Panel
}

// viewHelp renders the help view from the keymap.
func (a *App) viewHelp() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n")

	for _, group := range a.keymap.FullHelp() {
		b.WriteString("\n")
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-8s %s\n", h.Key, h.Desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Muted.Render("esc: back to dashboard"))
	return b.String()
}

// Run starts the dashboard and blocks until it exits.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())

	// Mirror sign-in state changes into the message loop so the
	// calendar affordances flip even when the change originates
	// outside the panel's own commands.
	remove := a.ports.Calendar.OnSignInChange(func(signedIn bool) {
		p.Send(messages.SignInStateChanged{SignedIn: signedIn})
	})
	defer remove()

	_, err := p.Run()
	if a.sub != nil {
		a.sub.Close()
	}
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Focused returns the panel holding keyboard focus.
func (a *App) Focused() Panel {
	return a.focused
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
}
