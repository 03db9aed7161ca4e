package driving

import (
	"context"

	"github.com/calmskies/deskboard/internal/core/domain"
	"github.com/calmskies/deskboard/internal/core/ports/driven"
)

// NotesService manages the note collection. When the backing store is
// unavailable every operation returns domain.ErrNotesUnavailable and
// callers must disable the feature.
type NotesService interface {
	// Available reports whether the note store initialised.
	Available() bool

	// Add trims the text and stores it as a new note. Whitespace-only
	// text is a no-op signalled by domain.ErrEmptyNote.
	Add(ctx context.Context, text string) (*domain.Note, error)

	// Delete removes a note by identifier.
	Delete(ctx context.Context, id string) error

	// List returns the current snapshot of notes.
	List(ctx context.Context) ([]domain.Note, error)

	// Subscribe opens a live query delivering full snapshots on every
	// change. The caller must Close the subscription on teardown.
	Subscribe(ctx context.Context) (*driven.NoteSubscription, error)
}
