package anonfile

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// VerifyAnonfile exercises the common contract of anonymous temp files:
// read-write-seek works and no directory entry remains addressable.
func VerifyAnonfile(t *testing.T, create func(dir string) (*os.File, error)) {
	t.Helper()

	f, err := create(t.TempDir())
	require.NoError(t, err)

	n, err := f.WriteString("hello")
	require.NoError(t, err)
	require.Equal(t, 5, n)

	off, err := f.Seek(1, io.SeekStart)
	require.NoError(t, err)
	require.Equal(t, int64(1), off)

	buf := make([]byte, 4)
	n2, err := f.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 4, n2)
	require.Equal(t, []byte("ello"), buf)

	require.NoError(t, f.Close())

	if name := f.Name(); name != "" {
		// there should be no directory entry left for this file
		_, err := os.Stat(name)

		var perr *os.PathError

		require.Error(t, err)
		require.ErrorAs(t, err, &perr)
	}
}
