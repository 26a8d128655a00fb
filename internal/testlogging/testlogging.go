// Package testlogging routes library diagnostics to the go testing.T log.
package testlogging

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/scratchfs/scratch/logging"
)

// Attach installs a zaptest-backed logging backend for the duration of the
// test. The backend is process-wide, so tests calling Attach must not run
// in parallel with each other.
func Attach(t *testing.T) {
	t.Helper()

	logging.Set(zaptest.NewLogger(t).Sugar())

	t.Cleanup(func() {
		logging.Set(nil)
	})
}
