package scratch

import (
	"os"
)

const (
	defaultFilePerm os.FileMode = 0o600
	defaultDirPerm  os.FileMode = 0o700
)

// checkPerm rejects permission sets that Windows cannot express. The only
// permission concept available is the read-only attribute, and a read-only
// temporary file or directory could not be written to or cleaned up.
func checkPerm(perm *os.FileMode) error {
	if perm != nil && *perm&0o200 == 0 {
		return ErrPermissionsUnsupported
	}

	return nil
}

// openNewFile creates the file at path, failing if an entry already exists
// there. The existence check and the creation are a single O_EXCL step, so
// a concurrent creator of the same name cannot race this call.
func openNewFile(path string, appendMode bool, perm *os.FileMode) (*os.File, error) {
	if err := checkPerm(perm); err != nil {
		return nil, err
	}

	flags := os.O_RDWR | os.O_CREATE | os.O_EXCL
	if appendMode {
		flags |= os.O_APPEND
	}

	//nolint:wrapcheck
	return os.OpenFile(path, flags, defaultFilePerm)
}

// mkdirNew creates the directory at path, failing if an entry already
// exists there.
func mkdirNew(path string, perm *os.FileMode) error {
	if err := checkPerm(perm); err != nil {
		return err
	}

	//nolint:wrapcheck
	return os.Mkdir(path, defaultDirPerm)
}
