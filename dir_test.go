package scratch_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/scratchfs/scratch"
	"github.com/scratchfs/scratch/internal/testutil"
)

func TestDirCreateAndClose(t *testing.T) {
	d, err := scratch.NewDirIn(testutil.TempDirectory(t))
	require.NoError(t, err)

	// unrelated content created after the directory exists is removed too
	inner := filepath.Join(d.Path(), "nested", "deep")
	require.NoError(t, os.MkdirAll(inner, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(inner, "note.txt"), []byte("x"), 0o600))

	require.NoError(t, d.Close())

	_, err = os.Stat(d.Path())
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestDirCloseReportsMissingTree(t *testing.T) {
	d, err := scratch.NewDirIn(t.TempDir())
	require.NoError(t, err)

	// an external actor deletes the tree out from under us
	require.NoError(t, os.RemoveAll(d.Path()))

	err = d.Close()
	require.Error(t, err)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestDirKeep(t *testing.T) {
	d, err := scratch.NewDirIn(t.TempDir())
	require.NoError(t, err)

	path := d.Keep()

	_, err = os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, os.RemoveAll(path))
}

func TestDirDisableCleanup(t *testing.T) {
	d, err := scratch.NewDirIn(t.TempDir())
	require.NoError(t, err)

	d.DisableCleanup()

	// disabling suppresses the automatic path: drop the handle, GC, and
	// the directory must survive
	path := d.Path()

	//nolint:wastedassign
	d = nil

	for i := 0; i < 5; i++ {
		runtime.GC()
		time.Sleep(10 * time.Millisecond)
	}

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestDirAutomaticCleanup(t *testing.T) {
	td := t.TempDir()

	path := func() string {
		d, err := scratch.NewDirIn(td)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(filepath.Join(d.Path(), "f"), []byte("x"), 0o600))

		return d.Path()
	}()

	require.Eventually(t, func() bool {
		runtime.GC()

		_, err := os.Stat(path)

		return os.IsNotExist(err)
	}, 10*time.Second, 10*time.Millisecond)
}

func TestDirAutomaticCleanupMissingTreeDoesNotCrash(t *testing.T) {
	td := t.TempDir()

	func() {
		d, err := scratch.NewDirIn(td)
		require.NoError(t, err)

		// the automatic path must tolerate a tree that is already gone
		require.NoError(t, os.RemoveAll(d.Path()))
	}()

	for i := 0; i < 5; i++ {
		runtime.GC()
		time.Sleep(10 * time.Millisecond)
	}
}

func TestDirPersist(t *testing.T) {
	td := testutil.TempDirectory(t)

	d, err := scratch.NewDirIn(td)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(d.Path(), "f"), []byte("x"), 0o600))

	dest := filepath.Join(td, "final")
	require.NoError(t, d.Persist(dest))

	_, err = os.Stat(filepath.Join(dest, "f"))
	require.NoError(t, err)
}

func TestDirPersistFailureRetainsOwnership(t *testing.T) {
	td := t.TempDir()

	d, err := scratch.NewDirIn(td)
	require.NoError(t, err)

	err = d.Persist(filepath.Join(td, "missing", "dest"))
	require.Error(t, err)

	// still owned, explicit close works
	require.NoError(t, d.Close())
}
