// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package
// only defines the configuration structure for server settings (listen port,
// API key).
//
// It is primarily used by the core/config package to embed server settings.
package server
