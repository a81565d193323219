// Package server holds the HTTP server configuration.
//
// The serve command builds the Fiber app itself; this package only defines
// the settings it reads: listen port, API key and payload size cap.
package server
