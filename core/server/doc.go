// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures for server settings.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key protecting every route,
// and an optional cron schedule for unattended stack maintenance runs.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the start command to validate the schedule before the server comes up.
package server
