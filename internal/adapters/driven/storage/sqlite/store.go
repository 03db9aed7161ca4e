package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/calmskies/deskboard/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/calmskies/deskboard/internal/core/domain"
	"github.com/calmskies/deskboard/internal/core/ports/driven"
)

// Ensure Store implements the driven ports.
var (
	_ driven.NoteStore  = (*Store)(nil)
	_ driven.TokenStore = (*Store)(nil)
)

// Store is a SQLite-backed implementation of the note and token stores.
type Store struct {
	db   *sql.DB
	path string

	mu      sync.Mutex
	subs    map[int]chan []domain.Note
	nextSub int
	watcher *fsnotify.Watcher
	done    chan struct{}
	closed  bool
}

// NewStore creates a SQLite store in the given data directory.
// If dataDir is empty, defaults to ~/.deskboard/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".deskboard", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "deskboard.db")

	// WAL mode for concurrent readers
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
		subs: make(map[int]chan []domain.Note),
		done: make(chan struct{}),
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	s.startWatcher(dataDir)

	return s, nil
}

// Close closes the watcher, all subscriptions and the database.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.done)
	for id, ch := range s.subs {
		close(ch)
		delete(s.subs, id)
	}
	watcher := s.watcher
	s.mu.Unlock()

	if watcher != nil {
		watcher.Close()
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending .up.sql migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}
		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Note Store ====================

// Add stores a new note and pushes a fresh snapshot to subscribers.
func (s *Store) Add(ctx context.Context, text string) (*domain.Note, error) {
	note := &domain.Note{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO notes (id, text, created_at) VALUES (?, ?, ?)",
		note.ID, note.Text, note.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("saving note: %w", err)
	}

	s.broadcast(ctx)
	return note, nil
}

// Delete removes a note by identifier and pushes a fresh snapshot.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}

	s.broadcast(ctx)
	return nil
}

// List returns all notes ordered by creation time, oldest first.
func (s *Store) List(ctx context.Context) ([]domain.Note, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, text, created_at FROM notes ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	notes := []domain.Note{}
	for rows.Next() {
		var note domain.Note
		if err := rows.Scan(&note.ID, &note.Text, &note.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}

	return notes, nil
}

// Subscribe registers a live query. The current snapshot is delivered
// immediately; later snapshots replace any undelivered one, so a slow
// consumer always observes the latest state.
func (s *Store) Subscribe(ctx context.Context) (*driven.NoteSubscription, error) {
	snapshot, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	ch := make(chan []domain.Note, 1)
	ch <- snapshot

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(ch)
		return nil, fmt.Errorf("store is closed")
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.mu.Unlock()

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

// broadcast queries the current snapshot and delivers it to every
// subscriber, replacing an undelivered snapshot if one is pending.
func (s *Store) broadcast(ctx context.Context) {
	snapshot, err := s.List(ctx)
	if err != nil {
		return // subscribers keep their last snapshot
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- snapshot:
		default:
			// Drop the stale pending snapshot and queue the new one.
			select {
			case <-ch:
			default:
			}
			ch <- snapshot
		}
	}
}

// startWatcher watches the database file so mutations made by another
// process also trigger snapshot delivery. Watch failures are not
// fatal; the store still notifies on local mutations.
func (s *Store) startWatcher(dataDir string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return
	}
	if err := watcher.Add(dataDir); err != nil {
		watcher.Close()
		return
	}

	s.mu.Lock()
	s.watcher = watcher
	s.mu.Unlock()

	go func() {
		for {
			select {
			case <-s.done:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				// WAL writes land in deskboard.db-wal.
				if strings.HasPrefix(event.Name, s.path) && event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					s.broadcast(context.Background())
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
}

// ==================== Token Store ====================

// SaveToken stores or replaces the token blob for a provider.
func (s *Store) SaveToken(ctx context.Context, providerID string, token []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO oauth_tokens (provider_id, token, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(provider_id) DO UPDATE SET
			token = excluded.token,
			updated_at = excluded.updated_at
	`, providerID, token, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	return nil
}

// GetToken returns the token blob for a provider.
func (s *Store) GetToken(ctx context.Context, providerID string) ([]byte, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT token FROM oauth_tokens WHERE provider_id = ?", providerID)

	var token []byte
	if err := row.Scan(&token); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning token: %w", err)
	}
	return token, nil
}

// DeleteToken removes the token blob for a provider.
func (s *Store) DeleteToken(ctx context.Context, providerID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM oauth_tokens WHERE provider_id = ?", providerID)
	if err != nil {
		return fmt.Errorf("deleting token: %w", err)
	}
	return nil
}
