package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calmskies/deskboard/internal/core/domain"
)

// MockAuthorizer implements driven.Authorizer for testing.
type MockAuthorizer struct {
	SignInFunc  func(ctx context.Context) error
	SignOutFunc func(ctx context.Context) error
	signedIn    bool
}

func (m *MockAuthorizer) SignIn(ctx context.Context) error {
	if m.SignInFunc != nil {
		return m.SignInFunc(ctx)
	}
	m.signedIn = true
	return nil
}

func (m *MockAuthorizer) SignOut(ctx context.Context) error {
	if m.SignOutFunc != nil {
		return m.SignOutFunc(ctx)
	}
	m.signedIn = false
	return nil
}

func (m *MockAuthorizer) SignedIn(context.Context) bool { return m.signedIn }

// MockCalendarClient implements driven.CalendarClient for testing.
type MockCalendarClient struct {
	UpcomingFunc func(ctx context.Context, max int64) ([]domain.Event, error)
}

func (m *MockCalendarClient) Upcoming(ctx context.Context, max int64) ([]domain.Event, error) {
	if m.UpcomingFunc != nil {
		return m.UpcomingFunc(ctx, max)
	}
	return nil, nil
}

func TestCalendar_Upcoming(t *testing.T) {
	events := []domain.Event{
		{ID: "a", Summary: "Standup", Start: time.Now().Add(time.Hour)},
		{ID: "b", Summary: "Review", Start: time.Now().Add(2 * time.Hour)},
	}
	client := &MockCalendarClient{
		UpcomingFunc: func(_ context.Context, max int64) ([]domain.Event, error) {
			assert.Equal(t, int64(10), max)
			return events, nil
		},
	}
	svc := NewCalendar(&MockAuthorizer{signedIn: true}, client)

	got, err := svc.Upcoming(context.Background())

	require.NoError(t, err)
	assert.Equal(t, events, got, "order as delivered by the client")
}

func TestCalendar_Upcoming_CapsAtLimit(t *testing.T) {
	many := make([]domain.Event, 14)
	client := &MockCalendarClient{
		UpcomingFunc: func(context.Context, int64) ([]domain.Event, error) {
			return many, nil
		},
	}
	svc := NewCalendar(&MockAuthorizer{signedIn: true}, client)

	got, err := svc.Upcoming(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 10)
}

func TestCalendar_Upcoming_NotSignedIn(t *testing.T) {
	svc := NewCalendar(&MockAuthorizer{}, &MockCalendarClient{})

	_, err := svc.Upcoming(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotSignedIn)
}

func TestCalendar_Upcoming_ClientFailure(t *testing.T) {
	client := &MockCalendarClient{
		UpcomingFunc: func(context.Context, int64) ([]domain.Event, error) {
			return nil, errors.New("backend error")
		},
	}
	svc := NewCalendar(&MockAuthorizer{signedIn: true}, client)

	_, err := svc.Upcoming(context.Background())
	assert.Error(t, err, "failure propagates so the caller keeps its previous list")
}

func TestCalendar_SignInStateListeners(t *testing.T) {
	auth := &MockAuthorizer{}
	svc := NewCalendar(auth, &MockCalendarClient{})

	var states []bool
	remove := svc.OnSignInChange(func(signedIn bool) {
		states = append(states, signedIn)
	})

	require.NoError(t, svc.SignIn(context.Background()))
	require.NoError(t, svc.SignOut(context.Background()))
	assert.Equal(t, []bool{true, false}, states)

	remove()
	require.NoError(t, svc.SignIn(context.Background()))
	assert.Equal(t, []bool{true, false}, states, "removed listener must not fire")
}

func TestCalendar_Unconfigured(t *testing.T) {
	svc := NewCalendar(nil, nil)

	assert.False(t, svc.Configured())
	assert.False(t, svc.SignedIn(context.Background()))
	assert.ErrorIs(t, svc.SignIn(context.Background()), domain.ErrCalendarUnavailable)
	assert.ErrorIs(t, svc.SignOut(context.Background()), domain.ErrCalendarUnavailable)

	_, err := svc.Upcoming(context.Background())
	assert.ErrorIs(t, err, domain.ErrCalendarUnavailable)
}
