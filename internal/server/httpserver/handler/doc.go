// Package handler provides HTTP request handlers for DocFold.
//
// This package implements the HTTP API endpoints for authentication,
// todo lists, and folder-scoped document storage.
//
// Every request follows the same shape: resolve the caller's identity
// from the authorization header, authorize, perform the store
// operation, and map the result to a status code.
package handler
