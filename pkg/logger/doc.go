// Package logger provides a small factory over log/slog with configurable
// level, format and output destination.
//
// The engine only logs diagnostics (rule registrations, rejected
// configurations) at debug level; the factory exists so that embedding
// applications can route those records through their own level and format
// conventions without adapting handlers by hand.
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatJSON),
//	)
package logger
