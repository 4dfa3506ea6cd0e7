// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different
// environments (development vs production). All log output goes to stderr,
// keeping stdout free for the comparison report.
//
// # Run Correlation
//
// Every comparison run is tagged with a generated run ID. The WithRunID
// helper attaches it to the log entry, ensuring that all logs related to a
// specific run can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (interactive use)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Comparison started")
//
//	// Inside a run:
//	l := logger.WithRunID(log, runID)
//	l.Error("Comparison failed", zap.Error(err))
package logger
