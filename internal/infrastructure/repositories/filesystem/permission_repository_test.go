//go:build unit

package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/j2objcrun/internal/domain/entities"
	"github.com/rios0rios0/j2objcrun/internal/infrastructure/repositories/filesystem"
)

func TestPermissionRepositoryMarkExecutable(t *testing.T) {
	t.Parallel()

	t.Run("should add the owner execute bit", func(t *testing.T) {
		t.Parallel()

		// given
		binary := filepath.Join(t.TempDir(), "j2objc")
		require.NoError(t, os.WriteFile(binary, []byte("#!/bin/sh\n"), 0o644))
		repo := filesystem.NewPermissionRepository()

		// when
		err := repo.MarkExecutable(binary)

		// then
		require.NoError(t, err)
		info, statErr := os.Stat(binary)
		require.NoError(t, statErr)
		assert.Equal(t, os.FileMode(0o744), info.Mode().Perm())
	})

	t.Run("should leave an executable file untouched", func(t *testing.T) {
		t.Parallel()

		// given
		binary := filepath.Join(t.TempDir(), "j2objc")
		require.NoError(t, os.WriteFile(binary, nil, 0o750))
		require.NoError(t, os.Chmod(binary, 0o750))
		repo := filesystem.NewPermissionRepository()

		// when
		err := repo.MarkExecutable(binary)

		// then
		require.NoError(t, err)
		info, statErr := os.Stat(binary)
		require.NoError(t, statErr)
		assert.Equal(t, os.FileMode(0o750), info.Mode().Perm())
	})

	t.Run("should return a filesystem error for a missing binary", func(t *testing.T) {
		t.Parallel()

		// given
		binary := filepath.Join(t.TempDir(), "j2objc")
		repo := filesystem.NewPermissionRepository()

		// when
		err := repo.MarkExecutable(binary)

		// then
		var fsErr *entities.FilesystemError
		require.ErrorAs(t, err, &fsErr)
		assert.Equal(t, binary, fsErr.Path)
	})
}

func TestPermissionRepositoryMkdirAll(t *testing.T) {
	t.Parallel()

	t.Run("should create nested directories and be idempotent", func(t *testing.T) {
		t.Parallel()

		// given
		dir := filepath.Join(t.TempDir(), "target", "j2objc")
		repo := filesystem.NewPermissionRepository()

		// when
		first := repo.MkdirAll(dir)
		second := repo.MkdirAll(dir)

		// then
		require.NoError(t, first)
		require.NoError(t, second)
		assert.DirExists(t, dir)
	})

	t.Run("should return a filesystem error when a file is in the way", func(t *testing.T) {
		t.Parallel()

		// given
		base := t.TempDir()
		blocker := filepath.Join(base, "target")
		require.NoError(t, os.WriteFile(blocker, nil, 0o644))
		repo := filesystem.NewPermissionRepository()

		// when
		err := repo.MkdirAll(filepath.Join(blocker, "j2objc"))

		// then
		var fsErr *entities.FilesystemError
		require.ErrorAs(t, err, &fsErr)
		assert.Equal(t, "create output directory", fsErr.Op)
	})
}
