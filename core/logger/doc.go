// Package logger builds the zap loggers used by the server and the batch
// commands.
//
// Config.Level is any zap level name; "debug" also switches to zap's
// development preset. Config.Format is "json" (default) or "console", which
// the CLI uses for readable error output.
//
// Request handlers call WithRayID so every line of a request carries the
// ray_id assigned by the rayid middleware:
//
//	l := logger.WithRayID(log, c)
//	l.Warn("Search rejected", zap.Error(err))
package logger
