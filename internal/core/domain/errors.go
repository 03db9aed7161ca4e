package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrEmptyNote indicates a note submission was empty after trimming.
	// Callers treat this as a no-op rather than a user-facing error.
	ErrEmptyNote = errors.New("note text is empty")

	// ErrNotesUnavailable indicates the note store failed to initialise.
	// The notes feature is disabled; no operation may touch the store.
	ErrNotesUnavailable = errors.New("note store unavailable")

	// ErrCalendarUnavailable indicates the calendar feature is not
	// configured (no OAuth client).
	ErrCalendarUnavailable = errors.New("calendar unavailable")

	// ErrNotSignedIn indicates a calendar operation was attempted
	// without an authorised session.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrAuthExpired indicates the authorisation has expired and refresh failed.
	ErrAuthExpired = errors.New("authorisation expired")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
