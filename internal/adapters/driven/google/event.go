package google

import (
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/calmskies/deskboard/internal/core/domain"
)

// allDayLayout is the date-only format of all-day event starts.
const allDayLayout = "2006-01-02"

// eventFromAPI converts a Google Calendar event. The start is the
// date-time field when present, else the all-day date. Events without
// an id or a usable start are skipped.
func eventFromAPI(event *calendar.Event) (domain.Event, bool) {
	if event == nil || event.Id == "" {
		return domain.Event{}, false
	}

	start, allDay, ok := parseStart(event.Start)
	if !ok {
		return domain.Event{}, false
	}

	return domain.Event{
		ID:      event.Id,
		Summary: event.Summary,
		Start:   start,
		AllDay:  allDay,
	}, true
}

// parseStart extracts the start instant from an event start field.
func parseStart(start *calendar.EventDateTime) (t time.Time, allDay, ok bool) {
	if start == nil {
		return time.Time{}, false, false
	}

	if start.DateTime != "" {
		parsed, err := time.Parse(time.RFC3339, start.DateTime)
		if err != nil {
			return time.Time{}, false, false
		}
		return parsed, false, true
	}

	if start.Date != "" {
		// All-day dates carry no zone; anchor them in local time so
		// rendering does not shift the day.
		parsed, err := time.ParseInLocation(allDayLayout, start.Date, time.Local)
		if err != nil {
			return time.Time{}, false, false
		}
		return parsed, true, true
	}

	return time.Time{}, false, false
}
