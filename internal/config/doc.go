// Package config loads, merges and validates configuration for the
// policy-desk server and terminal client.
//
// Sources are merged in this order, later non-zero values win:
//  1. built-in defaults
//  2. environment variables
//  3. command-line flags
//  4. JSON or YAML config file
//
// [GetStructuredConfig] returns the server configuration and
// [GetClientConfig] the client view of the same sources.
package config
