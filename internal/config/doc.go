// Package config provides configuration loading, merging, and validation
// for the blockcal client.
//
// Configuration is assembled from several sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Config file (JSON, or YAML when the extension is .yaml/.yml)
//  3. Environment variables
//  4. Command-line flags
//
// The main entry point is [GetClientConfig].
package config
