package scratch

import (
	"bytes"
	"io"

	"github.com/pkg/errors"

	"github.com/scratchfs/scratch/internal/iocopy"
)

// Spooled is a read-write-seek buffer that starts out in memory and
// promotes itself to a disk-backed temporary file once its size reaches a
// threshold. Promotion is one-way: once on disk, the buffer never moves
// back to memory. This keeps disk I/O out of the common case of small
// transient payloads while bounding worst-case memory use.
//
// Exactly one backing store is active at any time. A Spooled buffer has a
// single owner; concurrent use requires external synchronization.
type Spooled struct {
	maxMemory int
	dir       string
	builder   *Builder

	// exactly one of mem/file is non-nil between construction and Close
	mem  *memBuffer
	file *NamedFile
}

var _ io.ReadWriteSeeker = (*Spooled)(nil)

// InMemory reports whether the buffer is still memory-backed. It has no
// side effects.
func (s *Spooled) InMemory() bool {
	return s.file == nil
}

// File returns the backing temporary file, or nil while the buffer is
// memory-backed. Callers needing a stable path should call Rollover first.
func (s *Spooled) File() *NamedFile {
	return s.file
}

// Rollover forces promotion to a disk-backed file before the threshold is
// reached. The buffered bytes and the current position are preserved
// exactly. Rolling over an already promoted buffer is a no-op.
//
// On failure the buffer is left memory-backed and unchanged.
func (s *Spooled) Rollover() error {
	if s.file != nil {
		return nil
	}

	f, err := s.builder.FileIn(s.dir)
	if err != nil {
		return err
	}

	if err := iocopy.JustCopy(f, bytes.NewReader(s.mem.data)); err != nil {
		f.Close() //nolint:errcheck
		return errors.Wrap(err, "unable to spill buffer to disk")
	}

	if _, err := f.Seek(s.mem.pos, io.SeekStart); err != nil {
		f.Close() //nolint:errcheck
		return errors.Wrap(err, "unable to restore position after spill")
	}

	s.file = f
	s.mem = nil

	return nil
}

// Write writes at the current position. If the size after the write would
// reach the memory threshold while still memory-backed, the buffer is
// promoted first and the write goes to the file.
func (s *Spooled) Write(p []byte) (int, error) {
	if s.mem != nil && s.mem.projectedSize(len(p)) >= int64(s.maxMemory) {
		if err := s.Rollover(); err != nil {
			return 0, err
		}
	}

	if s.mem != nil {
		return s.mem.Write(p)
	}

	//nolint:wrapcheck
	return s.file.Write(p)
}

// Read reads from the current position of the active backing store.
func (s *Spooled) Read(p []byte) (int, error) {
	if s.mem != nil {
		return s.mem.Read(p)
	}

	//nolint:wrapcheck
	return s.file.Read(p)
}

// Seek moves the position of the active backing store. Seeking past the
// current length is allowed; a later write zero-fills the gap.
func (s *Spooled) Seek(offset int64, whence int) (int64, error) {
	if s.mem != nil {
		return s.mem.Seek(offset, whence)
	}

	//nolint:wrapcheck
	return s.file.Seek(offset, whence)
}

// SetLen truncates or extends the buffer to size bytes, extending with
// zeros. The current position is not moved. Growing to or past the memory
// threshold promotes the buffer first.
func (s *Spooled) SetLen(size int64) error {
	if s.mem != nil && size >= int64(s.maxMemory) {
		if err := s.Rollover(); err != nil {
			return err
		}
	}

	if s.mem != nil {
		s.mem.truncate(size)
		return nil
	}

	return errors.Wrap(s.file.Truncate(size), "unable to resize temporary file")
}

// Close releases the buffer. For a promoted buffer this closes and deletes
// the backing temporary file.
func (s *Spooled) Close() error {
	s.mem = nil

	if s.file != nil {
		return s.file.Close()
	}

	return nil
}

// memBuffer is a seekable in-memory byte store with the semantics of a
// random-access file: reads at or past the end return io.EOF, writes past
// the end zero-fill the gap.
type memBuffer struct {
	data []byte
	pos  int64
}

// projectedSize returns the size the buffer would have after writing n
// bytes at the current position.
func (m *memBuffer) projectedSize(n int) int64 {
	if end := m.pos + int64(n); end > int64(len(m.data)) {
		return end
	}

	return int64(len(m.data))
}

func (m *memBuffer) Write(p []byte) (int, error) {
	if end := m.pos + int64(len(p)); end > int64(len(m.data)) {
		m.data = append(m.data, make([]byte, end-int64(len(m.data)))...)
	}

	copy(m.data[m.pos:], p)
	m.pos += int64(len(p))

	return len(p), nil
}

func (m *memBuffer) Read(p []byte) (int, error) {
	if m.pos >= int64(len(m.data)) {
		return 0, io.EOF
	}

	n := copy(p, m.data[m.pos:])
	m.pos += int64(n)

	return n, nil
}

func (m *memBuffer) Seek(offset int64, whence int) (int64, error) {
	var base int64

	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = m.pos
	case io.SeekEnd:
		base = int64(len(m.data))
	default:
		return 0, errors.Errorf("invalid whence: %v", whence)
	}

	pos := base + offset
	if pos < 0 {
		return 0, errors.New("negative position")
	}

	m.pos = pos

	return pos, nil
}

func (m *memBuffer) truncate(size int64) {
	if size <= int64(len(m.data)) {
		m.data = m.data[:size]
		return
	}

	m.data = append(m.data, make([]byte, size-int64(len(m.data)))...)
}
