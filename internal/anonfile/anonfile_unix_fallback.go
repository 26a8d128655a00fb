//go:build linux || freebsd || darwin || openbsd

package anonfile

import (
	"os"

	"github.com/pkg/errors"

	"github.com/scratchfs/scratch/internal/mktemp"
)

// createUnixFallback creates the file under a randomized name and
// immediately unlinks it while keeping the handle open.
func createUnixFallback(dir string) (*os.File, error) {
	f, err := mktemp.CreateHelper(dir, ".tmp", "", mktemp.NumRandChars, func(path string) (*os.File, error) {
		//nolint:wrapcheck
		return os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, permissions)
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	// immediately remove/unlink the file while we keep the handle open.
	if derr := os.Remove(f.Name()); derr != nil {
		f.Close() //nolint:errcheck
		return nil, errors.Wrap(derr, "unable to unlink temporary file")
	}

	return f, nil
}
