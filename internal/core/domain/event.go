package domain

import (
	"fmt"
	"time"
)

// Time layouts for rendering event starts in local time.
const (
	eventTimeLayout = "Mon 02 Jan 15:04"
	eventDateLayout = "Mon 02 Jan"
)

// Event is an upcoming calendar event. It is read-only from deskboard's
// perspective; the calendar service owns the data.
type Event struct {
	// ID is the provider-assigned event identifier.
	ID string

	// Summary is the display title of the event.
	Summary string

	// Start is the event start instant. For all-day events this is
	// midnight at the start of the day.
	Start time.Time

	// AllDay is true when the event has a date but no start time.
	AllDay bool
}

// Label renders the event as "<formatted local start> — <summary>".
func (e Event) Label() string {
	layout := eventTimeLayout
	if e.AllDay {
		layout = eventDateLayout
	}
	return fmt.Sprintf("%s — %s", e.Start.Local().Format(layout), e.Summary)
}
