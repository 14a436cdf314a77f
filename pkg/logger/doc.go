// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// New creates a *slog.Logger configured by Option functions:
//
//   - Select an output format (text or json)
//   - Set the minimum log level, by value or by name
//   - Supply default slog.Attr values applied to every record
//   - Register ContextExtractor callbacks that inject attributes pulled from a
//     context value every time a record is handled.
//
// The default logger writes text at info level to stderr: command line tools
// in this module print their results on stdout and must keep it clean.
//
// Helper constructors such as RunID, Workers, Attempts and Rate keep
// attribute names consistent across packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithAttr(logger.Component("jwtcrack")),
//	)
//	logger.SetAsDefault(log)
//
//	log.Info("run finished",
//	    logger.RunID(runID),
//	    logger.Attempts(n),
//	    logger.Duration(elapsed),
//	)
package logger
