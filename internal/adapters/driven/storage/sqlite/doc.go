// Package sqlite provides the SQLite-backed note and token stores.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO. A single database connection backs two driven
// ports:
//
//   - NoteStore: note persistence with live snapshot subscriptions
//   - TokenStore: OAuth token persistence
//
// # Live subscriptions
//
// Subscribers receive the full note snapshot immediately and again
// after every mutation. Local mutations notify directly; changes made
// by another process are picked up by an fsnotify watch on the
// database file.
//
// # Schema
//
// The schema is managed through versioned .up.sql migrations embedded
// from the migrations/ directory.
//
// # Data Location
//
// By default, the database is stored at ~/.deskboard/data/deskboard.db
package sqlite
