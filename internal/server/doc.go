// Package server runs the vault's transport servers.
//
// It starts whichever of the HTTP and gRPC listeners are configured, waits
// for termination signals, and shuts the enabled transports down gracefully.
package server
