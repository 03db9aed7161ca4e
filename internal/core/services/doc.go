// Package services implements the driving ports of deskboard. Each
// service wraps one external collaborator behind a driven port and
// carries the panel's failure semantics: every call is a single
// best-effort attempt, logged on failure, never retried.
package services
