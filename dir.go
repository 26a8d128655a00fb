package scratch

import (
	"os"

	"github.com/pkg/errors"
)

// Dir is an exclusively-owned temporary directory. Unless cleanup has been
// disabled, the directory and everything inside it is removed recursively
// when Close is called, or automatically once the Dir becomes unreachable.
//
// Unrelated actors may create entries inside the directory after it has
// been created; recursive deletion operates on a best-effort snapshot and
// is not transactional against concurrent mutation of the tree.
type Dir struct {
	path *Path
}

func createDir(path string, perm *os.FileMode, disableCleanup bool) (*Dir, error) {
	if err := mkdirNew(path, perm); err != nil {
		return nil, err
	}

	return &Dir{path: newPath(path, disableCleanup, os.RemoveAll)}, nil
}

// Path returns the absolute path of the directory.
func (d *Dir) Path() string {
	return d.path.String()
}

// DisableCleanup turns automatic deletion of the directory off. It is
// idempotent and cannot be undone.
func (d *Dir) DisableCleanup() {
	d.path.DisableCleanup()
}

// Keep disarms cleanup and returns the path, transferring responsibility
// for the directory to the caller. The Dir must not be used afterwards.
func (d *Dir) Keep() string {
	return d.path.Keep()
}

// Persist moves the directory to dest. On success, responsibility for the
// tree transfers to the caller and the Dir must not be used again. On
// failure the directory remains owned, still scheduled for cleanup, and
// usable for a retry.
func (d *Dir) Persist(dest string) error {
	if err := os.Rename(d.path.String(), dest); err != nil {
		return errors.Wrapf(err, "unable to persist temporary directory to %v", dest)
	}

	d.path.disarm()

	return nil
}

// Close eagerly deletes the directory tree and reports the outcome, unlike
// the automatic cleanup path which cannot. Close is an explicit deletion
// request and deletes even when automatic cleanup has been disabled. A tree
// that is already gone is reported as an error rather than silently treated
// as success: it means some other actor deleted or replaced the directory.
func (d *Dir) Close() error {
	d.path.disarm()

	if _, err := os.Lstat(d.path.String()); err != nil {
		return errors.Wrap(err, "unable to remove temporary directory")
	}

	return errors.Wrap(os.RemoveAll(d.path.String()), "unable to remove temporary directory")
}
