// Package google provides the Google Calendar client used by the
// calendar panel. Authentication is delegated to a TokenSources
// implementation; this package only issues read-only API calls.
package google

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/calmskies/deskboard/internal/core/domain"
	"github.com/calmskies/deskboard/internal/core/ports/driven"
)

// primaryCalendarID is the user's primary calendar.
const primaryCalendarID = "primary"

// TokenSources yields an oauth2.TokenSource for the current session.
// Implementations return domain.ErrNotSignedIn without a session.
type TokenSources interface {
	TokenSource(ctx context.Context) (oauth2.TokenSource, error)
}

// Ensure Client implements the driven port.
var _ driven.CalendarClient = (*Client)(nil)

// Client lists events from the primary Google calendar.
type Client struct {
	tokens  TokenSources
	limiter *rate.Limiter
}

// NewClient creates a calendar client. The conservative rate limit
// follows the Calendar API per-user quota.
func NewClient(tokens TokenSources) *Client {
	return &Client{
		tokens:  tokens,
		limiter: rate.NewLimiter(rate.Limit(5), 10),
	}
}

// Upcoming returns up to max upcoming events from the primary
// calendar, ordered by start time, recurring events expanded into
// single instances, deleted items excluded.
func (c *Client) Upcoming(ctx context.Context, max int64) ([]domain.Event, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	ts, err := c.tokens.TokenSource(ctx)
	if err != nil {
		return nil, err
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}

	res, err := svc.Events.List(primaryCalendarID).
		MaxResults(max).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(time.Now().Format(time.RFC3339)).
		ShowDeleted(false).
		Context(ctx).
		Do()
	if err != nil {
		return nil, WrapError(err)
	}

	events := make([]domain.Event, 0, len(res.Items))
	for _, item := range res.Items {
		event, ok := eventFromAPI(item)
		if !ok {
			continue
		}
		events = append(events, event)
	}
	return events, nil
}
