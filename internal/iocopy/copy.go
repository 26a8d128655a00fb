// Package iocopy is a wrapper around io.Copy() that recycles shared buffers.
package iocopy

import (
	"io"
	"sync"
)

const bufSize = 65536

//nolint:gochecknoglobals
var bufferPool = sync.Pool{
	New: func() interface{} {
		p := make([]byte, bufSize)

		return &p
	},
}

// Copy is equivalent to io.Copy().
func Copy(dst io.Writer, src io.Reader) (int64, error) {
	//nolint:forcetypeassert
	bufPtr := bufferPool.Get().(*[]byte)

	defer bufferPool.Put(bufPtr)

	//nolint:wrapcheck
	return io.CopyBuffer(dst, src, *bufPtr)
}

// JustCopy is equivalent to io.Copy() but does not return the number of
// bytes copied.
func JustCopy(dst io.Writer, src io.Reader) error {
	_, err := Copy(dst, src)

	return err
}
