package services

import (
	"context"
	"sync"

	"github.com/calmskies/deskboard/internal/core/domain"
	"github.com/calmskies/deskboard/internal/core/ports/driven"
	"github.com/calmskies/deskboard/internal/core/ports/driving"
	"github.com/calmskies/deskboard/internal/logger"
)

// upcomingEventLimit caps the events listing.
const upcomingEventLimit = 10

// Ensure Calendar implements the driving port.
var _ driving.CalendarService = (*Calendar)(nil)

// Calendar exposes the calendar viewer. The authorizer and client are
// optional: when the OAuth client is not configured both are nil and
// the feature reports itself as unconfigured.
type Calendar struct {
	authorizer driven.Authorizer
	client     driven.CalendarClient

	mu        sync.Mutex
	listeners map[int]func(bool)
	nextID    int
}

// NewCalendar creates the calendar service. Nil dependencies put the
// service in unconfigured mode.
func NewCalendar(authorizer driven.Authorizer, client driven.CalendarClient) *Calendar {
	if authorizer == nil || client == nil {
		logger.Warn("calendar OAuth client not configured, calendar feature disabled")
	}
	return &Calendar{
		authorizer: authorizer,
		client:     client,
		listeners:  make(map[int]func(bool)),
	}
}

// Configured reports whether the OAuth client is configured.
func (s *Calendar) Configured() bool {
	return s.authorizer != nil && s.client != nil
}

// SignedIn reports whether an authorised session exists.
func (s *Calendar) SignedIn(ctx context.Context) bool {
	if s.authorizer == nil {
		return false
	}
	return s.authorizer.SignedIn(ctx)
}

// SignIn runs the external authorisation flow and notifies listeners
// on success.
func (s *Calendar) SignIn(ctx context.Context) error {
	if s.authorizer == nil {
		return domain.ErrCalendarUnavailable
	}
	if err := s.authorizer.SignIn(ctx); err != nil {
		logger.Warn("calendar sign-in failed: %v", err)
		return err
	}
	s.notify(true)
	return nil
}

// SignOut discards the session and notifies listeners.
func (s *Calendar) SignOut(ctx context.Context) error {
	if s.authorizer == nil {
		return domain.ErrCalendarUnavailable
	}
	if err := s.authorizer.SignOut(ctx); err != nil {
		logger.Warn("calendar sign-out failed: %v", err)
		return err
	}
	s.notify(false)
	return nil
}

// Upcoming lists the next events from the primary calendar. Failures
// propagate so the caller can keep its previous list.
func (s *Calendar) Upcoming(ctx context.Context) ([]domain.Event, error) {
	if s.client == nil {
		return nil, domain.ErrCalendarUnavailable
	}
	if !s.SignedIn(ctx) {
		return nil, domain.ErrNotSignedIn
	}

	events, err := s.client.Upcoming(ctx, upcomingEventLimit)
	if err != nil {
		logger.Warn("calendar events listing failed: %v", err)
		return nil, err
	}
	if len(events) > upcomingEventLimit {
		events = events[:upcomingEventLimit]
	}
	return events, nil
}

// OnSignInChange registers a listener for sign-in state changes.
func (s *Calendar) OnSignInChange(fn func(bool)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// notify invokes all listeners with the new sign-in state.
func (s *Calendar) notify(signedIn bool) {
	s.mu.Lock()
	fns := make([]func(bool), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(signedIn)
	}
}
