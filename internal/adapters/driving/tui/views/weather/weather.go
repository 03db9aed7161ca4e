// Package weather provides the weather panel for the dashboard.
package weather

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calmskies/deskboard/internal/adapters/driving/tui/keymap"
	"github.com/calmskies/deskboard/internal/adapters/driving/tui/messages"
	"github.com/calmskies/deskboard/internal/adapters/driving/tui/styles"
	"github.com/calmskies/deskboard/internal/core/ports/driving"
)

// View is the weather panel. It shows current conditions for the
// configured locations, with per-location fallback text on failure.
type View struct {
	styles         *styles.Styles
	keymap         *keymap.KeyMap
	weatherService driving.WeatherService

	readings []driving.Reading
	loading  bool
	width    int
}

// NewView creates a new weather panel.
func NewView(s *styles.Styles, km *keymap.KeyMap, weatherService driving.WeatherService) *View {
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:         s,
		keymap:         km,
		weatherService: weatherService,
		loading:        true,
	}
}

// Init starts the initial fetch.
func (v *View) Init() tea.Cmd {
	return v.loadReadings()
}

// loadReadings returns a command that fetches conditions for every
// configured location. Failures surface as fallback text in the
// readings, never as an error message.
func (v *View) loadReadings() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		locations := v.weatherService.Locations()
		readings := make([]driving.Reading, 0, len(locations))
		for _, loc := range locations {
			readings = append(readings, v.weatherService.Current(ctx, loc))
		}
		return messages.WeatherLoaded{Readings: readings}
	}
}

// Update handles messages for the weather panel.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		return v, nil

	case messages.WeatherLoaded:
		v.loading = false
		v.readings = msg.Readings
		return v, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), v.keymap.Refresh) {
			v.loading = true
			return v, v.loadReadings()
		}
	}

	return v, nil
}

// Readings returns the current readings (for testing).
func (v *View) Readings() []driving.Reading {
	return v.readings
}

// View renders the weather panel.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Weather"))
	b.WriteString("\n\n")

	if v.loading {
		b.WriteString(v.styles.Muted.Render("Fetching weather..."))
		return b.String()
	}

	for i, r := range v.readings {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(v.styles.Normal.Render(fmt.Sprintf("%-12s", r.Location)))
		b.WriteString(v.styles.Title.Render(r.Temperature))
		if r.Description != "" {
			b.WriteString(v.styles.Muted.Render("  " + r.Description))
		}
	}

	return b.String()
}
