//go:build !debug

package dbg

func printf(format string, args ...any) {}
