// Package server holds configuration for the HTTP surface of the service.
//
// The actual Fiber application is assembled in the start command; this
// package only carries the settings it needs (port, API key, upload limit)
// so the config loader can bind them from the environment.
package server
