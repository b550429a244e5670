// Package confloader provides configuration loading mechanism.
//
// This package implements a flexible configuration loader that supports
// multiple sources using koanf as the underlying library.
//
// Priority (highest to lowest):
//
//  1. Command-line flags (loaded as a map)
//  2. Environment variables
//  3. Configuration file (YAML)
//  4. Default values
//
// A companion Watcher reloads parts of the configuration when the
// config file changes on disk.
package confloader
