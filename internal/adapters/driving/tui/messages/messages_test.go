package messages

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calmskies/deskboard/internal/core/domain"
	"github.com/calmskies/deskboard/internal/core/ports/driven"
	"github.com/calmskies/deskboard/internal/core/ports/driving"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		name     string
		view     ViewType
		expected string
	}{
		{"ViewDashboard", ViewDashboard, "dashboard"},
		{"ViewHelp", ViewHelp, "help"},
		{"UnknownView", ViewType(99), "unknown"},
		{"NegativeView", ViewType(-1), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}

func TestViewChanged(t *testing.T) {
	t.Run("to dashboard view", func(t *testing.T) {
		msg := ViewChanged{View: ViewDashboard}
		assert.Equal(t, ViewDashboard, msg.View)
	})

	t.Run("to help view", func(t *testing.T) {
		msg := ViewChanged{View: ViewHelp}
		assert.Equal(t, ViewHelp, msg.View)
	})
}

func TestWeatherLoaded(t *testing.T) {
	t.Run("with readings", func(t *testing.T) {
		readings := []driving.Reading{
			{Location: "Lisbon", Temperature: "21°C", Description: "Clear sky"},
			{Location: "Munich", Temperature: "14°C", Description: "Overcast"},
		}
		msg := WeatherLoaded{Readings: readings}

		require.Len(t, msg.Readings, 2)
		assert.Equal(t, "Lisbon", msg.Readings[0].Location)
		assert.Equal(t, "Overcast", msg.Readings[1].Description)
	})

	t.Run("with empty readings", func(t *testing.T) {
		msg := WeatherLoaded{Readings: []driving.Reading{}}

		assert.NotNil(t, msg.Readings)
		assert.Empty(t, msg.Readings)
	})
}

func TestNotesSubscribed(t *testing.T) {
	sub := &driven.NoteSubscription{}
	msg := NotesSubscribed{Sub: sub}

	assert.Equal(t, sub, msg.Sub)
}

func TestNotesSnapshot(t *testing.T) {
	t.Run("with notes", func(t *testing.T) {
		notes := []domain.Note{
			{ID: "n1", Text: "Buy milk", CreatedAt: time.Now()},
			{ID: "n2", Text: "Call dentist", CreatedAt: time.Now()},
		}
		msg := NotesSnapshot{Notes: notes}

		require.Len(t, msg.Notes, 2)
		assert.Equal(t, "Buy milk", msg.Notes[0].Text)
	})

	t.Run("with empty snapshot", func(t *testing.T) {
		msg := NotesSnapshot{Notes: []domain.Note{}}

		assert.NotNil(t, msg.Notes)
		assert.Empty(t, msg.Notes)
	})
}

func TestNoteAdded(t *testing.T) {
	t.Run("successful addition", func(t *testing.T) {
		note := &domain.Note{ID: "n1", Text: "Water plants"}
		msg := NoteAdded{Note: note, Err: nil}

		require.NotNil(t, msg.Note)
		assert.Equal(t, "n1", msg.Note.ID)
		assert.NoError(t, msg.Err)
	})

	t.Run("with error", func(t *testing.T) {
		msg := NoteAdded{Note: nil, Err: domain.ErrEmptyNote}

		assert.Nil(t, msg.Note)
		assert.ErrorIs(t, msg.Err, domain.ErrEmptyNote)
	})
}

func TestNoteDeleted(t *testing.T) {
	t.Run("successful deletion", func(t *testing.T) {
		msg := NoteDeleted{ID: "n1", Err: nil}

		assert.Equal(t, "n1", msg.ID)
		assert.NoError(t, msg.Err)
	})

	t.Run("with error", func(t *testing.T) {
		msg := NoteDeleted{ID: "n2", Err: domain.ErrNotFound}

		assert.Equal(t, "n2", msg.ID)
		assert.ErrorIs(t, msg.Err, domain.ErrNotFound)
	})
}

func TestEventsLoaded(t *testing.T) {
	t.Run("with events", func(t *testing.T) {
		events := []domain.Event{
			{ID: "e1", Summary: "Standup", Start: time.Now()},
		}
		msg := EventsLoaded{Events: events, Err: nil}

		require.Len(t, msg.Events, 1)
		assert.Equal(t, "Standup", msg.Events[0].Summary)
		assert.NoError(t, msg.Err)
	})

	t.Run("with error keeps no events", func(t *testing.T) {
		err := errors.New("fetch failed")
		msg := EventsLoaded{Events: nil, Err: err}

		assert.Nil(t, msg.Events)
		assert.Error(t, msg.Err)
	})
}

func TestSignInCompleted(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		msg := SignInCompleted{Err: nil}
		assert.NoError(t, msg.Err)
	})

	t.Run("with error", func(t *testing.T) {
		err := errors.New("sign-in failed")
		msg := SignInCompleted{Err: err}

		assert.Error(t, msg.Err)
		assert.Equal(t, "sign-in failed", msg.Err.Error())
	})
}

func TestSignOutCompleted(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		msg := SignOutCompleted{Err: nil}
		assert.NoError(t, msg.Err)
	})

	t.Run("with error", func(t *testing.T) {
		msg := SignOutCompleted{Err: errors.New("sign-out failed")}
		assert.Error(t, msg.Err)
	})
}

func TestSignInStateChanged(t *testing.T) {
	t.Run("signed in", func(t *testing.T) {
		msg := SignInStateChanged{SignedIn: true}
		assert.True(t, msg.SignedIn)
	})

	t.Run("signed out", func(t *testing.T) {
		msg := SignInStateChanged{SignedIn: false}
		assert.False(t, msg.SignedIn)
	})
}

func TestErrorOccurred(t *testing.T) {
	t.Run("with standard error", func(t *testing.T) {
		err := errors.New("something went wrong")
		msg := ErrorOccurred{Err: err}

		assert.Error(t, msg.Err)
		assert.Equal(t, "something went wrong", msg.Err.Error())
	})

	t.Run("with nil error", func(t *testing.T) {
		msg := ErrorOccurred{Err: nil}
		assert.Nil(t, msg.Err)
	})
}

func TestQuit(t *testing.T) {
	msg := Quit{}
	// Quit is an empty struct, just verify it can be created
	assert.NotNil(t, msg)
}
