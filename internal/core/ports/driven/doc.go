// Package driven defines the driven (outbound) ports of deskboard.
// These interfaces are implemented by adapters that wrap external
// collaborators: the note store, the weather endpoint and the
// calendar API.
package driven
