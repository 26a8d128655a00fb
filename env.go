package scratch

import (
	"os"
	"sync/atomic"
)

//nolint:gochecknoglobals
var overrideTempDir atomic.Pointer[string]

// TempDir returns the directory in which temporary resources are created by
// default: the override set with OverrideTempDir if any, otherwise the
// platform default reported by os.TempDir().
func TempDir() string {
	if p := overrideTempDir.Load(); p != nil {
		return *p
	}

	return os.TempDir()
}

// OverrideTempDir changes the directory returned by TempDir for the rest of
// the process. Applications should override the default if and only if it
// is unsuitable: world-writable, shared between users, or managed by a
// temporary-file cleaner that may reclaim long-lived entries.
func OverrideTempDir(dir string) {
	overrideTempDir.Store(&dir)
}
