// Package shutdown provides graceful shutdown for DocFold.
//
// This package handles process termination signals:
//
//   - Signal handling (SIGINT, SIGTERM)
//   - Timeout-based forced shutdown
//   - Cleanup hook registration, run in reverse order
//
// Usage:
//
//	h := shutdown.NewHandler(10 * time.Second)
//	h.OnShutdown(srv.Shutdown)
//	h.OnShutdown(func(context.Context) error { return store.Close() })
//	err := h.Wait()
package shutdown
