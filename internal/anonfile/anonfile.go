// Package anonfile provides a cross-platform abstraction for creating
// private read-write temporary files which are automatically deleted when
// the last handle is closed.
//
// The returned files have no usable name. Callers that need to refer to the
// file by path should create a named temporary file instead.
package anonfile
