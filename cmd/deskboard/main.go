// deskboard is a personal dashboard for the terminal: weather, notes
// and upcoming calendar events in one place.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/calmskies/deskboard/internal/adapters/driven/auth"
	"github.com/calmskies/deskboard/internal/adapters/driven/config/file"
	"github.com/calmskies/deskboard/internal/adapters/driven/google"
	"github.com/calmskies/deskboard/internal/adapters/driven/storage/sqlite"
	"github.com/calmskies/deskboard/internal/adapters/driven/weather/openmeteo"
	"github.com/calmskies/deskboard/internal/adapters/driving/cli"
	"github.com/calmskies/deskboard/internal/core/ports/driven"
	"github.com/calmskies/deskboard/internal/core/services"
	"github.com/calmskies/deskboard/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env file next to the binary can supply the Google credentials.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Debug("no .env file loaded: %v", err)
	}

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	cfg := configStore.Config()

	// The store failing to open degrades notes (and calendar token
	// persistence) rather than aborting the whole dashboard.
	var noteStore driven.NoteStore
	var tokenStore driven.TokenStore
	store, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		logger.Warn("local store unavailable: %v", err)
	} else {
		noteStore = store
		tokenStore = store
		defer store.Close()
	}

	weatherService := services.NewWeather(openmeteo.NewClient(), cfg.Locations())
	notesService := services.NewNotes(noteStore)

	var calendarService *services.Calendar
	if cfg.GoogleConfigured() && tokenStore != nil {
		authorizer := auth.NewGoogle(cfg.Google.ClientID, cfg.Google.ClientSecret, tokenStore)
		calendarService = services.NewCalendar(authorizer, google.NewClient(authorizer))
	} else {
		calendarService = services.NewCalendar(nil, nil)
	}

	cli.SetVersion(version)
	cli.SetWeatherService(weatherService)
	cli.SetNotesService(notesService)
	cli.SetCalendarService(calendarService)

	return cli.Execute()
}
