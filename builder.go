package scratch

import (
	"os"

	"github.com/scratchfs/scratch/internal/mktemp"
)

const defaultPrefix = ".tmp"

// Builder constructs temporary files and directories with custom options.
//
// Setters return the receiver for chaining. A Builder is a plain value
// holder: its configuration is read once when a creation call begins and is
// never mutated by the library afterwards. Mutating a Builder concurrently
// with a creation call requires external synchronization.
type Builder struct {
	randomLen      int
	prefix         string
	suffix         string
	appendMode     bool
	perm           *os.FileMode
	disableCleanup bool
}

// NewBuilder returns a Builder with the defaults: prefix ".tmp", no suffix,
// 6 random characters, no append mode, default permissions and cleanup
// enabled.
func NewBuilder() *Builder {
	return &Builder{
		randomLen: mktemp.NumRandChars,
		prefix:    defaultPrefix,
	}
}

// Prefix sets a custom filename prefix. Path separators are legal but not
// advisable.
func (b *Builder) Prefix(prefix string) *Builder {
	b.prefix = prefix
	return b
}

// Suffix sets a custom filename suffix. Path separators are legal but not
// advisable.
func (b *Builder) Suffix(suffix string) *Builder {
	b.suffix = suffix
	return b
}

// RandomLength sets the number of random characters in the generated name.
// Lowering it below the default weakens the denial-of-service resistance of
// name generation.
func (b *Builder) RandomLength(n int) *Builder {
	b.randomLen = n
	return b
}

// Append sets whether files are opened in append mode.
func (b *Builder) Append(appendMode bool) *Builder {
	b.appendMode = appendMode
	return b
}

// Permissions sets the permissions for created files and directories. On
// Unix the bits are subject to the process umask. Files default to 0o600,
// directories to 0o777. On platforms without POSIX permissions, requesting
// a read-only entry fails with ErrPermissionsUnsupported.
func (b *Builder) Permissions(perm os.FileMode) *Builder {
	b.perm = &perm
	return b
}

// DisableCleanup disables automatic deletion of the created resource. It
// exists for testing and debugging; prefer the Keep methods on the created
// resources where possible.
func (b *Builder) DisableCleanup(disable bool) *Builder {
	b.disableCleanup = disable
	return b
}

// File creates the named temporary file in TempDir().
func (b *Builder) File() (*NamedFile, error) {
	return b.FileIn(TempDir())
}

// FileIn creates the named temporary file in dir.
func (b *Builder) FileIn(dir string) (*NamedFile, error) {
	return mktemp.CreateHelper(dir, b.prefix, b.suffix, b.randomLen, func(path string) (*NamedFile, error) {
		return createNamed(path, b.appendMode, b.perm, b.disableCleanup)
	})
}

// Dir creates a temporary directory in TempDir(). The directory and
// everything inside it is deleted automatically unless cleanup is disabled.
func (b *Builder) Dir() (*Dir, error) {
	return b.DirIn(TempDir())
}

// DirIn creates a temporary directory in dir.
func (b *Builder) DirIn(dir string) (*Dir, error) {
	return mktemp.CreateHelper(dir, b.prefix, b.suffix, b.randomLen, func(path string) (*Dir, error) {
		return createDir(path, b.perm, b.disableCleanup)
	})
}

// Spooled returns a spooled buffer that promotes itself to a file created
// with this Builder in TempDir() once its size reaches maxMemory bytes.
func (b *Builder) Spooled(maxMemory int) *Spooled {
	return b.SpooledIn(maxMemory, TempDir())
}

// SpooledIn is like Spooled but promotes into dir. The Builder
// configuration is captured at this point; later mutation of the Builder
// does not affect the returned buffer. Append mode is ignored because the
// buffer must preserve positioned-write semantics across promotion.
func (b *Builder) SpooledIn(maxMemory int, dir string) *Spooled {
	config := *b
	config.appendMode = false

	return &Spooled{
		maxMemory: maxMemory,
		dir:       dir,
		builder:   &config,
		mem:       &memBuffer{},
	}
}
