// Package main provides the entry point for docfold-cli.
//
// The CLI tool provides local access to a DocFold data directory for:
//
//   - User management (add, passwd, list, check)
//   - Folder inspection (keys, get)
//
// Usage:
//
//	docfold-cli [command] [flags]
//	docfold-cli --data-dir ./storage user list
//	docfold-cli --data-dir ./storage folder keys auth
//
// The tool operates directly on the data directory and does not talk
// to a running server. Stop the server first when using the badger
// backend, which takes an exclusive lock on the directory.
package main
