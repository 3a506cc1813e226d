// Package dbg provides a build-tag-gated tracing hook used by the construction driver
// to log step-by-step sweepline state without paying for a logger in production builds.
package dbg

// Printf logs a formatted debug message. In a normal build this is a no-op; build with
// the "debug" tag to route it through the standard logger.
func Printf(format string, args ...any) {
	printf(format, args...)
}
