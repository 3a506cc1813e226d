//go:build debug

package dbg

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[voronoi DEBUG] ", log.LstdFlags)

func printf(format string, args ...any) {
	logger.Printf(format, args...)
}
