// Package testutil provides helpers shared by tests.
package testutil

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

//nolint:gochecknoglobals
var interestingLengths = []int{10, 50, 100, 240, 250, 260, 270}

// TempDirectory returns a temporary directory with an interesting path
// length and removes it when the test completes. When the test fails, the
// directory is left behind for inspection.
//
// Some of the lengths are long enough to exercise long-filename handling on
// Windows.
func TempDirectory(t *testing.T) string {
	t.Helper()

	base, err := os.MkdirTemp("", "scratch-test")
	if err != nil {
		t.Fatal(err)
	}

	td := base

	//nolint:gosec
	targetLen := interestingLengths[rand.IntN(len(interestingLengths))]

	// make sure the directory is quite long to trigger very long filenames
	// on Windows.
	if n := len(td); n < targetLen {
		td = filepath.Join(td, strings.Repeat("f", targetLen-n))

		if err := os.MkdirAll(td, 0o700); err != nil {
			t.Fatal(err)
		}
	}

	t.Cleanup(func() {
		if !t.Failed() {
			os.RemoveAll(base) //nolint:errcheck
		} else {
			t.Logf("temporary files left in %v", td)
		}
	})

	return td
}
