//go:build freebsd || darwin || openbsd

package anonfile

import (
	"os"
)

const permissions = 0o600

// Create creates an anonymous temporary file in dir that is automatically
// deleted when the last handle is closed.
func Create(dir string) (*os.File, error) {
	return createUnixFallback(dir)
}
