// Package logger provides structured logging for DocFold.
//
// This package configures the standard library log/slog:
//
//   - logger.go: Handler construction and dynamic level control
//   - context.go: Request ID propagation through context
//   - redact.go: Sensitive data redaction
//
// Features:
//
//   - JSON and text output formats
//   - Runtime log level adjustment
//   - Automatic masking of passwords and tokens
package logger
