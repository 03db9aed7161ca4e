package driven

import (
	"context"

	"github.com/calmskies/deskboard/internal/core/domain"
)

// CalendarClient lists events from the user's primary calendar.
type CalendarClient interface {
	// Upcoming returns up to max upcoming events ordered by start
	// time, recurring events expanded, deleted items excluded.
	Upcoming(ctx context.Context, max int64) ([]domain.Event, error)
}

// Authorizer manages the OAuth session for the calendar feature.
// Sign-in and sign-out are delegated entirely to the external
// identity provider; deskboard only holds the resulting tokens.
type Authorizer interface {
	// SignIn runs the interactive authorisation flow and persists the
	// resulting tokens.
	SignIn(ctx context.Context) error

	// SignOut discards the persisted tokens.
	SignOut(ctx context.Context) error

	// SignedIn reports whether an authorised session exists.
	SignedIn(ctx context.Context) bool
}
