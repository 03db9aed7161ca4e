package services

import (
	"context"
	"strings"

	"github.com/calmskies/deskboard/internal/core/domain"
	"github.com/calmskies/deskboard/internal/core/ports/driven"
	"github.com/calmskies/deskboard/internal/core/ports/driving"
	"github.com/calmskies/deskboard/internal/logger"
)

// Ensure Notes implements the driving port.
var _ driving.NotesService = (*Notes)(nil)

// Notes manages the note collection. The store handle is optional:
// when the store failed to initialise the service is constructed with
// nil and every operation reports domain.ErrNotesUnavailable.
type Notes struct {
	store driven.NoteStore
}

// NewNotes creates the notes service. A nil store puts the service in
// disabled mode.
func NewNotes(store driven.NoteStore) *Notes {
	if store == nil {
		logger.Warn("note store unavailable, notes feature disabled")
	}
	return &Notes{store: store}
}

// Available reports whether the backing store initialised.
func (s *Notes) Available() bool {
	return s.store != nil
}

// Add trims the text and stores it as a new note. Whitespace-only text
// is a no-op signalled by domain.ErrEmptyNote so callers can keep the
// input untouched without surfacing an error.
func (s *Notes) Add(ctx context.Context, text string) (*domain.Note, error) {
	if s.store == nil {
		return nil, domain.ErrNotesUnavailable
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, domain.ErrEmptyNote
	}

	note, err := s.store.Add(ctx, trimmed)
	if err != nil {
		logger.Warn("note create failed: %v", err)
		return nil, err
	}
	return note, nil
}

// Delete removes a note by identifier. Failures are logged by the
// caller's catch boundary; the next snapshot self-corrects the UI.
func (s *Notes) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrNotesUnavailable
	}
	return s.store.Delete(ctx, id)
}

// List returns the current snapshot of notes.
func (s *Notes) List(ctx context.Context) ([]domain.Note, error) {
	if s.store == nil {
		return nil, domain.ErrNotesUnavailable
	}
	return s.store.List(ctx)
}

// Subscribe opens a live query on the collection.
func (s *Notes) Subscribe(ctx context.Context) (*driven.NoteSubscription, error) {
	if s.store == nil {
		return nil, domain.ErrNotesUnavailable
	}
	return s.store.Subscribe(ctx)
}
