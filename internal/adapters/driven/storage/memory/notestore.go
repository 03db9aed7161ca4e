// Package memory provides in-memory implementations of the driven
// store ports, used in tests and when running without a data directory.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/calmskies/deskboard/internal/core/domain"
	"github.com/calmskies/deskboard/internal/core/ports/driven"
)

// Ensure NoteStore implements the interface.
var _ driven.NoteStore = (*NoteStore)(nil)

// NoteStore is an in-memory implementation of driven.NoteStore with
// the same live-snapshot semantics as the SQLite store.
type NoteStore struct {
	mu      sync.Mutex
	notes   []domain.Note
	subs    map[int]chan []domain.Note
	nextSub int
	closed  bool
}

// NewNoteStore creates a new in-memory note store.
func NewNoteStore() *NoteStore {
	return &NoteStore{
		subs: make(map[int]chan []domain.Note),
	}
}

// Add stores a new note and notifies subscribers.
func (s *NoteStore) Add(_ context.Context, text string) (*domain.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	note := domain.Note{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	s.notes = append(s.notes, note)
	s.broadcastLocked()
	return &note, nil
}

// Delete removes a note by identifier and notifies subscribers.
func (s *NoteStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			break
		}
	}
	s.broadcastLocked()
	return nil
}

// List returns the current snapshot in insertion order.
func (s *NoteStore) List(_ context.Context) ([]domain.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(), nil
}

// Subscribe registers a live query; the current snapshot is delivered
// immediately.
func (s *NoteStore) Subscribe(_ context.Context) (*driven.NoteSubscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, domain.ErrNotesUnavailable
	}

	ch := make(chan []domain.Note, 1)
	ch <- s.snapshotLocked()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch

	return &driven.NoteSubscription{
		C: ch,
		CloseFunc: func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if sub, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(sub)
			}
		},
	}, nil
}

// Close ends all subscriptions.
func (s *NoteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	for id, ch := range s.subs {
		close(ch)
		delete(s.subs, id)
	}
	return nil
}

// snapshotLocked copies the note slice. Callers hold s.mu.
func (s *NoteStore) snapshotLocked() []domain.Note {
	snap := make([]domain.Note, len(s.notes))
	copy(snap, s.notes)
	return snap
}

// broadcastLocked delivers the current snapshot to every subscriber,
// replacing an undelivered one. Callers hold s.mu.
func (s *NoteStore) broadcastLocked() {
	snap := s.snapshotLocked()
	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
}
