package driving

import (
	"context"

	"github.com/calmskies/deskboard/internal/core/domain"
)

// CalendarService exposes the calendar viewer: sign-in state and the
// upcoming-events listing.
type CalendarService interface {
	// Configured reports whether an OAuth client is configured.
	// When false, sign-in is unavailable and the feature is disabled.
	Configured() bool

	// SignedIn reports whether an authorised session exists.
	SignedIn(ctx context.Context) bool

	// SignIn runs the external authorisation flow.
	SignIn(ctx context.Context) error

	// SignOut ends the session and discards tokens.
	SignOut(ctx context.Context) error

	// Upcoming lists the next events from the primary calendar,
	// ordered by start time, capped at the service's fixed limit.
	Upcoming(ctx context.Context) ([]domain.Event, error)

	// OnSignInChange registers a listener invoked after every sign-in
	// state change. The returned function removes the listener.
	OnSignInChange(fn func(signedIn bool)) (remove func())
}
