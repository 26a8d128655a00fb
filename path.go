package scratch

import (
	"io/fs"
	"os"
	"runtime"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/scratchfs/scratch/internal/atomicrename"
)

// pathState is shared between a Path and its runtime cleanup so that the
// cleanup can observe disarming without keeping the Path itself reachable.
type pathState struct {
	path     string
	disabled atomic.Bool
	remove   func(string) error
}

func (st *pathState) cleanupNow() {
	if st.disabled.Load() {
		return
	}

	if err := st.remove(st.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		// there is no caller to report to on this path
		log.Debugf("unable to remove temporary path %v: %v", st.path, err)
	}
}

// Path is an exclusively-owned temporary filesystem path. Unless cleanup
// has been disabled, the filesystem entry is removed when Remove is called,
// or automatically once the Path becomes unreachable.
//
// A Path has move semantics: it must have a single owner and must never be
// duplicated, or two owners will race to delete the same entry. Note that
// automatic cleanup is driven by reachability, not lexical scope - a Path
// passed to an API that retains only its string form may be collected, and
// the entry deleted, earlier than expected. Hold the Path (or call Keep)
// for as long as the entry is needed.
type Path struct {
	st      *pathState
	cleanup runtime.Cleanup
}

func newPath(path string, disableCleanup bool, remove func(string) error) *Path {
	st := &pathState{path: path, remove: remove}
	st.disabled.Store(disableCleanup)

	p := &Path{st: st}
	p.cleanup = runtime.AddCleanup(p, func(st *pathState) { st.cleanupNow() }, st)

	return p
}

// String returns the absolute path of the entry.
func (p *Path) String() string {
	return p.st.path
}

func (p *Path) armed() bool {
	return !p.st.disabled.Load()
}

func (p *Path) disarm() {
	p.st.disabled.Store(true)
	p.cleanup.Stop()
}

// DisableCleanup turns automatic deletion of the entry off. It is
// idempotent and cannot be undone.
func (p *Path) DisableCleanup() {
	p.st.disabled.Store(true)
}

// Keep disarms cleanup and returns the path, transferring responsibility
// for the entry to the caller. The Path must not be used afterwards.
func (p *Path) Keep() string {
	p.disarm()

	return p.st.path
}

// Persist moves the entry to dest, replacing dest if it already exists. On
// success, responsibility for the entry transfers to the caller and the
// Path must not be used again. On failure the entry remains owned, still
// scheduled for cleanup, and usable for a retry.
func (p *Path) Persist(dest string) error {
	if err := atomicrename.ReplaceFile(p.st.path, dest); err != nil {
		return errors.Wrapf(err, "unable to persist temporary file to %v", dest)
	}

	p.disarm()

	return nil
}

// PersistNoClobber is like Persist but fails if dest already exists instead
// of replacing it.
func (p *Path) PersistNoClobber(dest string) error {
	if err := os.Link(p.st.path, dest); err != nil {
		return errors.Wrapf(err, "unable to persist temporary file to %v", dest)
	}

	p.disarm()

	if err := os.Remove(p.st.path); err != nil {
		log.Debugf("unable to unlink temporary file %v after persist: %v", p.st.path, err)
	}

	return nil
}

// Remove eagerly deletes the entry and reports the outcome, unlike the
// automatic cleanup path which has no caller to report to.
func (p *Path) Remove() error {
	p.disarm()

	return errors.Wrap(p.st.remove(p.st.path), "unable to remove temporary path")
}
