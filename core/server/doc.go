// Package server holds the HTTP server configuration.
//
// The start command handles the actual server startup; this package only
// defines the configuration structure for it: the listen port, the API key
// protecting the API, and the spreadsheet upload size limit.
//
// It is primarily consumed by core/config, which embeds the settings, and by
// the start command when building the Fiber app.
package server
