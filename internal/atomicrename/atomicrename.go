// Package atomicrename atomically replaces files in a manner compatible
// with long filenames.
package atomicrename

import (
	"runtime"

	"github.com/natefinch/atomic"
)

const maxPathLength = 260

// MaybePrefixLongFilenameOnWindows prefixes the given filename with \\?\ on
// Windows if the filename is longer than 260 characters, which is required
// to be able to use some low-level Windows APIs.
func MaybePrefixLongFilenameOnWindows(fname string) string {
	if runtime.GOOS != "windows" {
		return fname
	}

	if len(fname) < maxPathLength {
		return fname
	}

	return "\\\\?\\" + fname
}

// ReplaceFile atomically moves src to dest, replacing dest if it exists.
func ReplaceFile(src, dest string) error {
	//nolint:wrapcheck
	return atomic.ReplaceFile(
		MaybePrefixLongFilenameOnWindows(src),
		MaybePrefixLongFilenameOnWindows(dest),
	)
}
