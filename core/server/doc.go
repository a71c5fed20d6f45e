// Package server runs the local static file server for the departure display.
//
// # Configuration
//
// The Config struct defines the bind host (all interfaces by default), the
// port (8000 by default), the document root and whether a browser is opened
// on desktop sessions. A configured port that does not parse falls back to
// DefaultPort; ParsePort is strict and is used for command-line input.
//
// # Lifecycle
//
// New builds the Fiber application with the RayID, CORS and request logging
// middleware, then mounts features through core/loader. Listen binds the
// socket separately so that port conflicts surface as ErrPortInUse before
// anything is announced. Serve blocks until its context is cancelled.
//
// # Discovery
//
// LocalIP reports the address other devices on the network can use, and
// IsDesktop decides whether opening a browser makes sense on this host.
package server
