// Package domain contains the core types of deskboard: notes, calendar
// events and weather observations. It has no dependencies on adapters
// or external services.
package domain
