// Package logging provides structured logging for the fedivt client.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the client. Because the program's user interface
// IS a terminal byte stream, logs are silent by default and always routed to
// stderr, never stdout.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (paint accounting, fetch payloads)
//   - Info: Normal operations (connections, screen swaps, posts)
//   - Warn: Non-fatal issues (link drops, failed fetches)
//   - Error: Fatal issues (startup failures, critical errors)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Timeline fetched",
//	    zap.String("timeline", "home"),
//	    zap.Int("posts", 20),
//	)
//
// # Configuration
//
// Initialize logging at startup, typically from the environment:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// Set FEDIVT_LOG_LEVEL=debug to see per-paint byte accounting while chasing
// rendering or byte-economy bugs.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
