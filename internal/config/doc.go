// Package config provides configuration loading, merging, and validation
// facilities for the vault service and the password manager client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags (server) or CLI overrides (client)
//  3. JSON or YAML config file
//
// The main entry points are [GetServerConfig] and [GetClientConfig], which
// return validated views of the merged [StructuredConfig].
package config
