// Package mktemp implements collision-resistant generation of temporary
// path names and the bounded retry loop shared by all resource creation in
// the library.
package mktemp

import (
	"io/fs"
	"path/filepath"
	"syscall"

	"github.com/pkg/errors"

	"github.com/scratchfs/scratch/logging"
)

var log = logging.Module("scratch/mktemp")

const (
	// NumRetries bounds the total number of creation attempts for a single
	// resource.
	NumRetries = 65536

	// NumRandChars is the default number of random characters in a
	// candidate name.
	NumRandChars = 6

	// reseedAfter is the number of consecutive name collisions after which
	// the name generator is reseeded from OS entropy.
	reseedAfter = 3
)

// ErrRetriesExhausted is returned when a unique temporary name could not be
// allocated within the attempt ceiling.
var ErrRetriesExhausted = errors.New("too many temporary files exist")

// IsCollision reports whether err indicates that a candidate name is already
// in use and creation should be retried under a different name.
func IsCollision(err error) bool {
	return errors.Is(err, fs.ErrExist) || errors.Is(err, syscall.EADDRINUSE)
}

// CreateHelper repeatedly invokes attempt with candidate paths under dir
// until it succeeds, fails with a non-collision error, or the attempt
// ceiling is reached.
//
// The attempt function is responsible for atomicity: it must fail with a
// "file exists" or "address in use" error when the path is taken, using a
// primitive that checks for existence and creates in a single step.
// CreateHelper cannot detect a check-then-create race on the caller's
// behalf.
func CreateHelper[R any](dir, prefix, suffix string, randomLen int, attempt func(path string) (R, error)) (R, error) {
	var zero R

	retries := NumRetries
	if randomLen == 0 {
		// every candidate is identical, retrying cannot help
		retries = 1
	}

	collisions := 0

	for i := 0; i < retries; i++ {
		path := filepath.Join(dir, NextName(prefix, suffix, randomLen))

		r, err := attempt(path)
		if err == nil {
			return r, nil
		}

		if !IsCollision(err) {
			return zero, err
		}

		collisions++
		if collisions%reseedAfter == 0 {
			log.Debugf("%v consecutive name collisions in %v, reseeding name generator", collisions, dir)
			Reseed()
		}
	}

	return zero, errors.Wrapf(ErrRetriesExhausted, "cannot allocate a unique name in %v", dir)
}
