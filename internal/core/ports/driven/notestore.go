package driven

import (
	"context"

	"github.com/calmskies/deskboard/internal/core/domain"
)

// NoteStore is the external note collection. Identifiers are opaque
// and store-assigned; the caller only observes and requests mutations.
type NoteStore interface {
	// Add stores a new note with the given text and returns it with
	// its assigned identifier.
	Add(ctx context.Context, text string) (*domain.Note, error)

	// Delete removes a note by identifier.
	Delete(ctx context.Context, id string) error

	// List returns the current set of notes in store order.
	List(ctx context.Context) ([]domain.Note, error)

	// Subscribe registers a live query on the collection. The full
	// current snapshot is delivered immediately and re-delivered after
	// every change until the subscription is closed.
	Subscribe(ctx context.Context) (*NoteSubscription, error)

	// Close releases the store.
	Close() error
}

// NoteSubscription is a live query handle. Snapshots arrive on C; the
// channel is closed when the subscription ends.
type NoteSubscription struct {
	// C delivers full snapshots of the collection.
	C <-chan []domain.Note

	// close tears down the subscription. Set by the store.
	CloseFunc func()
}

// Close ends the subscription. Safe to call more than once.
func (s *NoteSubscription) Close() {
	if s.CloseFunc != nil {
		s.CloseFunc()
		s.CloseFunc = nil
	}
}
