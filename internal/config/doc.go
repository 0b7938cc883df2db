// Package config provides configuration loading, merging, and validation
// for the copilot client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for any field they set):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetClientConfig], which merges all sources,
// applies local-development defaults for anything left unset, and validates
// the result.
package config
