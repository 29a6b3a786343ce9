// Package config loads, merges, and validates the vault's configuration.
//
// Settings are gathered from environment variables, command-line flags, and
// an optional JSON file, in that order of priority: a later source only
// fills fields the earlier ones left at their zero value.
//
// [GetStructuredConfig] builds the server configuration, [GetClientConfig]
// the client one.
package config
