package scratch

import (
	"os"

	"github.com/scratchfs/scratch/internal/mktemp"
)

// Resource owns an arbitrary path-addressed object created by Make or
// MakeIn, together with exclusive ownership of its temporary path.
type Resource[R any] struct {
	res  R
	path *Path
}

// Get returns the created object.
func (r *Resource[R]) Get() R {
	return r.res
}

// Path returns the owned temporary path. Release, persist and keep
// operations on the resource go through the returned Path.
func (r *Resource[R]) Path() *Path {
	return r.path
}

// Make creates a temporary path-addressed resource in TempDir() using the
// provided creation function. See MakeIn.
func Make[R any](b *Builder, create func(path string) (R, error)) (*Resource[R], error) {
	return MakeIn(b, TempDir(), create)
}

// MakeIn creates a temporary path-addressed resource in dir using the
// provided creation function. The function is handed candidate paths; if it
// fails with a "file exists" or "address in use" error another candidate is
// tried, any other error aborts the creation. This allows resources with
// exotic creation primitives, such as Unix domain sockets, to share the
// name generation and retry behavior of temporary files:
//
//	res, err := scratch.MakeIn(scratch.NewBuilder(), dir, func(path string) (net.Listener, error) {
//		return net.Listen("unix", path)
//	})
//
// The creation function is solely responsible for atomicity: it must check
// for existence and create in a single step, or a window opens between the
// check and the use in which an attacker can drop a file at the candidate
// path. The Builder's append and permission options do not apply; only its
// naming options are used.
func MakeIn[R any](b *Builder, dir string, create func(path string) (R, error)) (*Resource[R], error) {
	return mktemp.CreateHelper(dir, b.prefix, b.suffix, b.randomLen, func(path string) (*Resource[R], error) {
		res, err := create(path)
		if err != nil {
			return nil, err
		}

		return &Resource[R]{
			res:  res,
			path: newPath(path, b.disableCleanup, os.Remove),
		}, nil
	})
}
