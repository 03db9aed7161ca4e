package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/spf13/cobra"

	"github.com/calmskies/deskboard/internal/core/domain"
)

var calendarExportOutput string

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "View upcoming Google Calendar events",
}

var calendarListCmd = &cobra.Command{
	Use:   "list",
	Short: "List upcoming events",
	RunE:  runCalendarList,
}

var calendarAuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Sign in to Google Calendar",
	RunE:  runCalendarAuth,
}

var calendarSignOutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Sign out and discard the stored tokens",
	RunE:  runCalendarSignOut,
}

var calendarExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export upcoming events as an iCalendar file",
	RunE:  runCalendarExport,
}

func init() {
	calendarExportCmd.Flags().StringVarP(&calendarExportOutput, "output", "o", "", "write to file instead of stdout")
	calendarCmd.AddCommand(calendarListCmd)
	calendarCmd.AddCommand(calendarAuthCmd)
	calendarCmd.AddCommand(calendarSignOutCmd)
	calendarCmd.AddCommand(calendarExportCmd)
	rootCmd.AddCommand(calendarCmd)
}

// upcomingEvents fetches events, translating the sentinel errors into
// user-facing messages.
func upcomingEvents(ctx context.Context) ([]domain.Event, error) {
	if calendarService == nil {
		return nil, errors.New("calendar service not configured")
	}

	events, err := calendarService.Upcoming(ctx)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCalendarUnavailable):
			return nil, errors.New("calendar is not configured: add Google OAuth credentials to the config file")
		case errors.Is(err, domain.ErrNotSignedIn):
			return nil, errors.New("not signed in: run 'deskboard calendar auth' first")
		default:
			return nil, fmt.Errorf("fetching events: %w", err)
		}
	}
	return events, nil
}

func runCalendarList(cmd *cobra.Command, _ []string) error {
	events, err := upcomingEvents(context.Background())
	if err != nil {
		return err
	}

	if len(events) == 0 {
		cmd.Println("No upcoming events found.")
		return nil
	}

	for _, e := range events {
		cmd.Println(e.Label())
	}
	return nil
}

func runCalendarAuth(cmd *cobra.Command, _ []string) error {
	if calendarService == nil {
		return errors.New("calendar service not configured")
	}
	if !calendarService.Configured() {
		return errors.New("calendar is not configured: add Google OAuth credentials to the config file")
	}

	cmd.Println("Opening your browser to sign in with Google...")
	if err := calendarService.SignIn(context.Background()); err != nil {
		return fmt.Errorf("sign-in failed: %w", err)
	}

	cmd.Println("Signed in.")
	return nil
}

func runCalendarSignOut(cmd *cobra.Command, _ []string) error {
	if calendarService == nil {
		return errors.New("calendar service not configured")
	}

	if err := calendarService.SignOut(context.Background()); err != nil {
		return fmt.Errorf("sign-out failed: %w", err)
	}

	cmd.Println("Signed out.")
	return nil
}

func runCalendarExport(cmd *cobra.Command, _ []string) error {
	events, err := upcomingEvents(context.Background())
	if err != nil {
		return err
	}

	serialized := buildICS(events)

	if calendarExportOutput != "" {
		if err := os.WriteFile(calendarExportOutput, []byte(serialized), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", calendarExportOutput, err)
		}
		cmd.Printf("Wrote %d events to %s\n", len(events), calendarExportOutput)
		return nil
	}

	cmd.Print(serialized)
	return nil
}

// buildICS serializes events into an iCalendar document.
func buildICS(events []domain.Event) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//deskboard//calendar export//EN")

	now := time.Now()
	for _, e := range events {
		ev := cal.AddEvent(e.ID)
		ev.SetDtStampTime(now)
		ev.SetSummary(e.Summary)
		if e.AllDay {
			ev.SetAllDayStartAt(e.Start)
			ev.SetAllDayEndAt(e.Start.AddDate(0, 0, 1))
		} else {
			ev.SetStartAt(e.Start)
			ev.SetEndAt(e.Start.Add(time.Hour))
		}
	}

	return cal.Serialize()
}
