// Package server holds the HTTP server configuration and constants.
//
// While the command entry points handle the actual startup, this package
// defines the bind address (fixed at 0.0.0.0), the port configuration and
// its validation rules.
//
// # Configuration
//
// The Config struct defines the listen port (PORT env var, default 8000)
// and the static client directory. ParsePort enforces that the port, when
// provided, is a numeric value the network stack accepts (1-65535); a
// malformed value is surfaced as a startup error before anything binds.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings, and by the launcher and serve command to resolve the listen
// address.
package server
