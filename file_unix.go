//go:build !windows

package scratch

import (
	"os"
)

const (
	defaultFilePerm os.FileMode = 0o600
	defaultDirPerm  os.FileMode = 0o777
)

// openNewFile creates the file at path, failing if an entry already exists
// there. The existence check and the creation are a single O_EXCL step, so
// a concurrent creator of the same name cannot race this call.
func openNewFile(path string, appendMode bool, perm *os.FileMode) (*os.File, error) {
	flags := os.O_RDWR | os.O_CREATE | os.O_EXCL
	if appendMode {
		flags |= os.O_APPEND
	}

	mode := defaultFilePerm
	if perm != nil {
		mode = *perm
	}

	//nolint:wrapcheck
	return os.OpenFile(path, flags, mode)
}

// mkdirNew creates the directory at path, failing if an entry already
// exists there. The supplied permissions are subject to the process umask.
func mkdirNew(path string, perm *os.FileMode) error {
	mode := defaultDirPerm
	if perm != nil {
		mode = *perm
	}

	//nolint:wrapcheck
	return os.Mkdir(path, mode)
}
