package domain

import "time"

// Note is a single free-text note. The identifier is opaque and
// assigned by the store; notes are created and deleted, never edited.
type Note struct {
	// ID is the store-assigned identifier.
	ID string

	// Text is the note body.
	Text string

	// CreatedAt is when the note was stored. Snapshots are ordered by
	// creation time, oldest first.
	CreatedAt time.Time
}
