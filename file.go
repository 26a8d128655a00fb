package scratch

import (
	stderrors "errors"
	"io"
	"os"

	"github.com/pkg/errors"
)

// NamedFile is a named temporary file: an open read-write handle combined
// with exclusive ownership of its path.
//
// The handle and the name can become invalid independently. On Unix-like
// systems the path may be unlinked by a third party (for example a
// temporary-file cleaner) while the handle remains fully usable; path
// validity must not be inferred from handle validity or vice versa.
//
// Like Path, a NamedFile must have a single owner. Concurrent use of the
// same NamedFile requires external synchronization; independent handles
// obtained through Reopen may be used concurrently without it.
type NamedFile struct {
	file *os.File
	path *Path
}

var (
	_ io.ReadWriteSeeker = (*NamedFile)(nil)
	_ io.ReaderAt        = (*NamedFile)(nil)
	_ io.WriterAt        = (*NamedFile)(nil)
)

func createNamed(path string, appendMode bool, perm *os.FileMode, disableCleanup bool) (*NamedFile, error) {
	f, err := openNewFile(path, appendMode, perm)
	if err != nil {
		return nil, err
	}

	return &NamedFile{
		file: f,
		path: newPath(path, disableCleanup, os.Remove),
	}, nil
}

// File returns the underlying file handle.
func (f *NamedFile) File() *os.File {
	return f.file
}

// Path returns the absolute path of the file.
func (f *NamedFile) Path() string {
	return f.path.String()
}

func (f *NamedFile) Read(p []byte) (int, error) {
	//nolint:wrapcheck
	return f.file.Read(p)
}

func (f *NamedFile) ReadAt(p []byte, off int64) (int, error) {
	//nolint:wrapcheck
	return f.file.ReadAt(p, off)
}

func (f *NamedFile) Write(p []byte) (int, error) {
	//nolint:wrapcheck
	return f.file.Write(p)
}

func (f *NamedFile) WriteAt(p []byte, off int64) (int, error) {
	//nolint:wrapcheck
	return f.file.WriteAt(p, off)
}

func (f *NamedFile) Seek(offset int64, whence int) (int64, error) {
	//nolint:wrapcheck
	return f.file.Seek(offset, whence)
}

// Truncate changes the size of the file without moving the current offset.
func (f *NamedFile) Truncate(size int64) error {
	//nolint:wrapcheck
	return f.file.Truncate(size)
}

// Sync flushes the file contents to stable storage.
func (f *NamedFile) Sync() error {
	//nolint:wrapcheck
	return f.file.Sync()
}

// Reopen obtains a second, independent handle to the same file via its
// path. It fails if the path no longer resolves, for example after the file
// was unlinked by a third party. The original handle is unaffected.
func (f *NamedFile) Reopen() (*os.File, error) {
	f2, err := os.OpenFile(f.path.String(), os.O_RDWR, 0)
	if err != nil {
		return nil, errors.Wrap(err, "unable to reopen temporary file")
	}

	return f2, nil
}

// DisableCleanup turns automatic deletion of the file off. It is idempotent
// and cannot be undone.
func (f *NamedFile) DisableCleanup() {
	f.path.DisableCleanup()
}

// Keep disarms cleanup and returns the still-open handle and the path,
// transferring responsibility for the file to the caller. The NamedFile
// must not be used afterwards.
func (f *NamedFile) Keep() (*os.File, string) {
	return f.file, f.path.Keep()
}

// Persist moves the file to dest, replacing dest if it already exists. The
// open handle remains valid and now refers to the persisted file. On
// success, responsibility for the file transfers to the caller and the
// NamedFile must not be used again except through the handle returned by
// File. On failure the temporary file remains owned, still scheduled for
// cleanup, and usable for a retry - nothing is lost.
func (f *NamedFile) Persist(dest string) error {
	return f.path.Persist(dest)
}

// PersistNoClobber is like Persist but fails if dest already exists instead
// of replacing it.
func (f *NamedFile) PersistNoClobber(dest string) error {
	return f.path.PersistNoClobber(dest)
}

// Close closes the handle and, if cleanup is still armed, deletes the file
// and reports the outcome.
func (f *NamedFile) Close() error {
	err := errors.Wrap(f.file.Close(), "unable to close temporary file")

	if f.path.armed() {
		err = stderrors.Join(err, f.path.Remove())
	} else {
		f.path.disarm()
	}

	return err
}
