// Package driving provides interfaces for user-facing adapters
// (primary/inbound ports). The CLI, TUI and MCP surfaces depend on
// these instead of concrete services.
package driving
