// Package command provides CLI command definitions for docfold-cli.
//
// docfold-cli is the offline management tool for a DocFold data
// directory. It manipulates credential records and inspects stored
// documents without going through the HTTP API, so it can be used
// while the server is stopped.
//
// It uses urfave/cli/v2 for command parsing.
package command
