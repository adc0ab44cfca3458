// Package logger builds slog loggers for host adapters.
//
// The engine's core packages never log, since validity is their return
// value, but hosts that wrap the engine (the webform adapter, the CLI) want
// structured logs for the requests they serve. New assembles an
// *slog.Logger with the usual knobs as functional options:
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatJSON),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttr(slog.String("component", "webform")),
//	)
//
// FormatText is the default and suits development; FormatJSON targets log
// aggregation. An invalid format panics at startup rather than producing a
// misconfigured logger at runtime.
package logger
