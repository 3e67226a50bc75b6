// Package diag is the process-level diagnostic channel described in §7:
// developer-facing misuse of the arg package (a call with no unreplaced
// placeholder, fewer arguments than placeholders) is written here with a
// stable prefix. No other package writes to it. End-user programs never see these unless they redirect the
// channel's output themselves.
package diag

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "qtext: ", 0)

// Warn writes a single diagnostic line through the stable "qtext: " prefix.
func Warn(format string, args ...any) {
	logger.Printf(format, args...)
}

// SetOutput redirects the diagnostic channel, mainly for tests that want to
// capture or silence it.
func SetOutput(w *os.File) {
	logger = log.New(w, "qtext: ", 0)
}
