// Package cli provides the command line interface for deskboard.
// It is a driving adapter: commands call the core exclusively through
// the driving ports.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/calmskies/deskboard/internal/core/ports/driving"
	"github.com/calmskies/deskboard/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by the composition root before Execute.
var (
	weatherService  driving.WeatherService
	notesService    driving.NotesService
	calendarService driving.CalendarService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "deskboard",
	Short: "A personal dashboard in your terminal",
	Long: `deskboard shows the things you glance at all day in one place:
current weather for your locations, your upcoming Google Calendar
events, and a live scratchpad of notes.

Running deskboard without a subcommand opens the dashboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runDash,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetVersion sets the version string shown by the version command.
func SetVersion(v string) {
	version = v
}

// SetWeatherService injects the weather service.
func SetWeatherService(s driving.WeatherService) {
	weatherService = s
}

// SetNotesService injects the notes service.
func SetNotesService(s driving.NotesService) {
	notesService = s
}

// SetCalendarService injects the calendar service.
func SetCalendarService(s driving.CalendarService) {
	calendarService = s
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
