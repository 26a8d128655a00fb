package mktemp_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/scratchfs/scratch/internal/mktemp"
	"github.com/scratchfs/scratch/internal/testlogging"
)

func TestCreateHelperSucceeds(t *testing.T) {
	td := t.TempDir()

	created, err := mktemp.CreateHelper(td, "pfx-", ".sfx", 6, func(path string) (string, error) {
		f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
		if err != nil {
			return "", err
		}

		require.NoError(t, f.Close())

		return path, nil
	})
	require.NoError(t, err)

	base := filepath.Base(created)
	require.True(t, strings.HasPrefix(base, "pfx-"))
	require.True(t, strings.HasSuffix(base, ".sfx"))
	require.Len(t, base, len("pfx-")+6+len(".sfx"))

	_, err = os.Stat(created)
	require.NoError(t, err)
}

func TestCreateHelperRetriesOnCollision(t *testing.T) {
	testlogging.Attach(t)

	attempts := 0

	v, err := mktemp.CreateHelper(t.TempDir(), ".tmp", "", 6, func(path string) (int, error) {
		attempts++
		if attempts < 5 {
			return 0, &os.PathError{Op: "open", Path: path, Err: syscall.EEXIST}
		}

		return 42, nil
	})
	require.NoError(t, err)
	require.Equal(t, 42, v)
	require.Equal(t, 5, attempts)
}

func TestCreateHelperRetriesOnAddrInUse(t *testing.T) {
	attempts := 0

	_, err := mktemp.CreateHelper(t.TempDir(), ".tmp", "", 6, func(path string) (int, error) {
		attempts++
		if attempts == 1 {
			return 0, &os.SyscallError{Syscall: "bind", Err: syscall.EADDRINUSE}
		}

		return 1, nil
	})
	require.NoError(t, err)
	require.Equal(t, 2, attempts)
}

func TestCreateHelperFatalErrorNotRetried(t *testing.T) {
	attempts := 0
	fatal := errors.New("disk exploded")

	_, err := mktemp.CreateHelper(t.TempDir(), ".tmp", "", 6, func(path string) (int, error) {
		attempts++
		return 0, fatal
	})
	require.ErrorIs(t, err, fatal)
	require.Equal(t, 1, attempts)
}

func TestCreateHelperExhaustsRetries(t *testing.T) {
	attempts := 0

	_, err := mktemp.CreateHelper(t.TempDir(), ".tmp", "", 6, func(path string) (int, error) {
		attempts++
		return 0, os.ErrExist
	})
	require.ErrorIs(t, err, mktemp.ErrRetriesExhausted)
	require.Equal(t, mktemp.NumRetries, attempts)
}

func TestCreateHelperZeroRandomLengthSingleAttempt(t *testing.T) {
	attempts := 0

	_, err := mktemp.CreateHelper(t.TempDir(), "fixed", "", 0, func(path string) (int, error) {
		attempts++
		require.Equal(t, "fixed", filepath.Base(path))

		return 0, os.ErrExist
	})
	require.ErrorIs(t, err, mktemp.ErrRetriesExhausted)
	require.Equal(t, 1, attempts)
}

func TestIsCollision(t *testing.T) {
	require.True(t, mktemp.IsCollision(os.ErrExist))
	require.True(t, mktemp.IsCollision(&os.PathError{Op: "open", Path: "x", Err: syscall.EEXIST}))
	require.True(t, mktemp.IsCollision(&os.SyscallError{Syscall: "bind", Err: syscall.EADDRINUSE}))
	require.False(t, mktemp.IsCollision(nil))
	require.False(t, mktemp.IsCollision(os.ErrNotExist))
	require.False(t, mktemp.IsCollision(fs.ErrPermission))
}

func TestNextName(t *testing.T) {
	const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	name := mktemp.NextName("a-", ".b", 10)
	require.True(t, strings.HasPrefix(name, "a-"))
	require.True(t, strings.HasSuffix(name, ".b"))

	random := name[2 : len(name)-2]
	require.Len(t, random, 10)

	for _, c := range random {
		require.Contains(t, alphanumeric, string(c))
	}
}

func TestNextNameDistinct(t *testing.T) {
	seen := map[string]struct{}{}

	for i := 0; i < 1000; i++ {
		name := mktemp.NextName("", "", 6)
		_, dup := seen[name]
		require.False(t, dup, "duplicate name %v after %v draws", name, i)
		seen[name] = struct{}{}
	}
}

func TestReseedKeepsGenerating(t *testing.T) {
	before := mktemp.NextName("", "", 8)

	mktemp.Reseed()

	after := mktemp.NextName("", "", 8)
	require.NotEqual(t, before, after)
}
