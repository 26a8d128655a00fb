package scratch_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scratchfs/scratch"
)

func TestTempDirDefault(t *testing.T) {
	require.Equal(t, os.TempDir(), scratch.TempDir())
}

func TestOverrideTempDir(t *testing.T) {
	override := t.TempDir()

	scratch.OverrideTempDir(override)
	t.Cleanup(func() { scratch.OverrideTempDir(os.TempDir()) })

	require.Equal(t, override, scratch.TempDir())

	f, err := scratch.NewFile()
	require.NoError(t, err)

	defer f.Close() //nolint:errcheck

	require.Equal(t, override, filepath.Dir(f.Path()))
}
