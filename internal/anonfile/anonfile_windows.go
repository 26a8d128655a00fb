package anonfile

import (
	"os"

	"golang.org/x/sys/windows"

	"github.com/scratchfs/scratch/internal/mktemp"
)

// Create creates an anonymous temporary file in dir that the OS deletes
// when the last handle is closed.
func Create(dir string) (*os.File, error) {
	return mktemp.CreateHelper(dir, ".tmp", "", mktemp.NumRandChars, func(path string) (*os.File, error) {
		pathp, err := windows.UTF16PtrFromString(path)
		if err != nil {
			return nil, &os.PathError{Op: "open", Path: path, Err: err}
		}

		// FILE_FLAG_DELETE_ON_CLOSE makes the OS responsible for cleanup,
		// FILE_SHARE_DELETE allows reopening the file while it is marked
		// for deletion.
		h, err := windows.CreateFile(
			pathp,
			windows.GENERIC_READ|windows.GENERIC_WRITE,
			windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
			nil,
			windows.CREATE_NEW,
			windows.FILE_ATTRIBUTE_TEMPORARY|windows.FILE_FLAG_DELETE_ON_CLOSE,
			0,
		)
		if err != nil {
			return nil, &os.PathError{Op: "open", Path: path, Err: err}
		}

		return os.NewFile(uintptr(h), path), nil
	})
}
