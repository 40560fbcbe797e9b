// Package logging provides structured logging for the musiccast tools.
//
// This package wraps a global zap logger with convenience functions. The
// logger is silent unless a level is requested, so CLI output stays clean.
//
// # Log Levels
//
//   - Debug: every receiver request with URL, status and elapsed time
//   - Info: receivers opened, registry changes
//   - Warn: non-200 answers, transport failures, retries
//   - Error: failures surfaced to the user
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// Then run with MUSICCAST_LOG_LEVEL=debug to see request traces on stderr.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use.
package logging
