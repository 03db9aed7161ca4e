// Package driving defines the driving (inbound) ports of deskboard.
// The CLI, TUI and MCP adapters call the core exclusively through
// these interfaces.
package driving
