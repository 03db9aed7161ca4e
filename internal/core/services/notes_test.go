package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calmskies/deskboard/internal/adapters/driven/storage/memory"
	"github.com/calmskies/deskboard/internal/core/domain"
	"github.com/calmskies/deskboard/internal/core/ports/driven"
)

// MockNoteStore implements driven.NoteStore for testing.
type MockNoteStore struct {
	AddFunc       func(ctx context.Context, text string) (*domain.Note, error)
	DeleteFunc    func(ctx context.Context, id string) error
	ListFunc      func(ctx context.Context) ([]domain.Note, error)
	SubscribeFunc func(ctx context.Context) (*driven.NoteSubscription, error)

	AddCalls    []string
	DeleteCalls []string
}

func (m *MockNoteStore) Add(ctx context.Context, text string) (*domain.Note, error) {
	m.AddCalls = append(m.AddCalls, text)
	if m.AddFunc != nil {
		return m.AddFunc(ctx, text)
	}
	return &domain.Note{ID: "note-1", Text: text}, nil
}

func (m *MockNoteStore) Delete(ctx context.Context, id string) error {
	m.DeleteCalls = append(m.DeleteCalls, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockNoteStore) List(ctx context.Context) ([]domain.Note, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []domain.Note{}, nil
}

func (m *MockNoteStore) Subscribe(ctx context.Context) (*driven.NoteSubscription, error) {
	if m.SubscribeFunc != nil {
		return m.SubscribeFunc(ctx)
	}
	ch := make(chan []domain.Note)
	return &driven.NoteSubscription{C: ch, CloseFunc: func() { close(ch) }}, nil
}

func (m *MockNoteStore) Close() error { return nil }

func TestNotes_Add(t *testing.T) {
	store := &MockNoteStore{}
	svc := NewNotes(store)

	note, err := svc.Add(context.Background(), "Buy milk")

	require.NoError(t, err)
	assert.Equal(t, "Buy milk", note.Text)
	assert.Equal(t, []string{"Buy milk"}, store.AddCalls)
}

func TestNotes_Add_TrimsWhitespace(t *testing.T) {
	store := &MockNoteStore{}
	svc := NewNotes(store)

	_, err := svc.Add(context.Background(), "  Buy milk \n")

	require.NoError(t, err)
	assert.Equal(t, []string{"Buy milk"}, store.AddCalls)
}

func TestNotes_Add_EmptyIsNoOp(t *testing.T) {
	store := &MockNoteStore{}
	svc := NewNotes(store)

	for _, text := range []string{"", "   ", "\t\n"} {
		note, err := svc.Add(context.Background(), text)
		assert.ErrorIs(t, err, domain.ErrEmptyNote, "input %q", text)
		assert.Nil(t, note)
	}
	assert.Empty(t, store.AddCalls, "empty submissions must not reach the store")
}

func TestNotes_Add_StoreFailure(t *testing.T) {
	store := &MockNoteStore{
		AddFunc: func(context.Context, string) (*domain.Note, error) {
			return nil, errors.New("permission denied")
		},
	}
	svc := NewNotes(store)

	_, err := svc.Add(context.Background(), "Buy milk")
	assert.Error(t, err)
}

func TestNotes_Delete(t *testing.T) {
	store := &MockNoteStore{}
	svc := NewNotes(store)

	require.NoError(t, svc.Delete(context.Background(), "note-7"))
	assert.Equal(t, []string{"note-7"}, store.DeleteCalls)
}

func TestNotes_Disabled(t *testing.T) {
	svc := NewNotes(nil)

	assert.False(t, svc.Available())

	_, err := svc.Add(context.Background(), "Buy milk")
	assert.ErrorIs(t, err, domain.ErrNotesUnavailable)

	assert.ErrorIs(t, svc.Delete(context.Background(), "x"), domain.ErrNotesUnavailable)

	_, err = svc.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotesUnavailable)

	_, err = svc.Subscribe(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotesUnavailable)
}

func TestNotes_Subscribe(t *testing.T) {
	store := &MockNoteStore{}
	svc := NewNotes(store)

	sub, err := svc.Subscribe(context.Background())
	require.NoError(t, err)
	sub.Close()
	// Closing twice must be safe.
	sub.Close()
}

func TestNotes_WithMemoryStore(t *testing.T) {
	store := memory.NewNoteStore()
	defer store.Close()
	svc := NewNotes(store)

	sub, err := svc.Subscribe(context.Background())
	require.NoError(t, err)
	defer sub.Close()

	// Initial snapshot is empty.
	snapshot := <-sub.C
	assert.Empty(t, snapshot)

	note, err := svc.Add(context.Background(), "  Buy milk  ")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", note.Text)

	snapshot = <-sub.C
	require.Len(t, snapshot, 1)
	assert.Equal(t, "Buy milk", snapshot[0].Text)

	require.NoError(t, svc.Delete(context.Background(), note.ID))
	snapshot = <-sub.C
	assert.Empty(t, snapshot)
}
