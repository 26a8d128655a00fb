// Package scratch creates short-lived files and directories that are
// automatically deleted when no longer referenced.
//
//   - Use Anonymous when a real *os.File is needed but its path is not;
//     the OS removes the file once the last handle is closed.
//   - Use NewFile when the temporary file must be addressable by path.
//   - Use NewDir for a temporary directory that is deleted recursively.
//   - Use NewSpooled for an in-memory buffer that spills to a temporary
//     file once it grows past a threshold.
//   - Use NewBuilder to customize naming, permissions and cleanup, and
//     Make/MakeIn to drive the same collision-resistant naming with an
//     arbitrary creation primitive (for example binding a Unix socket).
//
// # Resource leaking
//
// Anonymous files are cleaned up by the OS and (almost) never leak. Named
// files and directories rely on explicit Close/Remove calls, with a
// reachability-driven finalizer as a safety net. The finalizer does not run
// when the process dies to an unhandled signal or a forced kill, and a
// resource stored in a process-lifetime global may never become
// unreachable; prefer explicit Close.
//
// # Security
//
// On systems with a shared world-writable temporary directory, relying on
// paths is inherently racy: generated names are unpredictable (6 random
// alphanumeric characters by default, cryptographically seeded) and
// creation is exclusive, but a temporary-file cleaner may still unlink a
// long-lived entry which an attacker can then replace. Use OverrideTempDir
// to point the library at a private directory when the platform default is
// unsuitable. Temporary files are private (0o600) by default; directories
// get platform-default permissions unless overridden.
package scratch

import (
	"os"

	"github.com/scratchfs/scratch/internal/anonfile"
	"github.com/scratchfs/scratch/logging"
)

var log = logging.Module("scratch")

// NewFile creates a named temporary file in TempDir() with the default
// options.
func NewFile() (*NamedFile, error) {
	return NewBuilder().File()
}

// NewFileIn creates a named temporary file in dir with the default options.
func NewFileIn(dir string) (*NamedFile, error) {
	return NewBuilder().FileIn(dir)
}

// NewDir creates a temporary directory in TempDir() with the default
// options.
func NewDir() (*Dir, error) {
	return NewBuilder().Dir()
}

// NewDirIn creates a temporary directory in dir with the default options.
func NewDirIn(dir string) (*Dir, error) {
	return NewBuilder().DirIn(dir)
}

// Anonymous creates an unnamed temporary file in TempDir() that the OS
// deletes once the last handle is closed.
func Anonymous() (*os.File, error) {
	return anonfile.Create(TempDir())
}

// AnonymousIn creates an unnamed temporary file in dir that the OS deletes
// once the last handle is closed.
func AnonymousIn(dir string) (*os.File, error) {
	return anonfile.Create(dir)
}

// NewSpooled returns a spooled buffer that promotes itself to a temporary
// file in TempDir() once its size reaches maxMemory bytes.
func NewSpooled(maxMemory int) *Spooled {
	return NewBuilder().Spooled(maxMemory)
}

// NewSpooledIn is like NewSpooled but promotes into dir.
func NewSpooledIn(maxMemory int, dir string) *Spooled {
	return NewBuilder().SpooledIn(maxMemory, dir)
}
