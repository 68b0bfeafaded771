// Package server holds the HTTP server configuration.
//
// The cmd package starts the Fiber application; this package only defines the
// settings it reads: listen port, API key, body limit and whether the
// websocket scanning stations are mounted.
package server
