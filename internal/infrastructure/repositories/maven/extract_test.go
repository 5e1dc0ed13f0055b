//go:build unit

package maven_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/j2objcrun/internal/infrastructure/repositories/maven"
)

func writeArchive(t *testing.T, entries ...zipEntry) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "archive.zip")
	require.NoError(t, os.WriteFile(path, zipBytes(t, entries...), 0o644))
	return path
}

func TestExtract(t *testing.T) {
	t.Parallel()

	t.Run("should extract nested entries into the destination", func(t *testing.T) {
		t.Parallel()

		// given
		archive := writeArchive(t,
			zipEntry{name: "com/foo/A.java", content: "class A {}"},
			zipEntry{name: "META-INF/MANIFEST.MF", content: "Manifest-Version: 1.0\n"},
		)
		dest := filepath.Join(t.TempDir(), "out")

		// when
		err := maven.Extract(archive, dest)

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(filepath.Join(dest, "com", "foo", "A.java"))
		require.NoError(t, readErr)
		assert.Equal(t, "class A {}", string(content))
		assert.FileExists(t, filepath.Join(dest, "META-INF", "MANIFEST.MF"))
	})

	t.Run("should overwrite files from a previous extraction", func(t *testing.T) {
		t.Parallel()

		// given
		dest := t.TempDir()
		require.NoError(t, maven.Extract(writeArchive(t, zipEntry{name: "A.java", content: "old"}), dest))
		archive := writeArchive(t, zipEntry{name: "A.java", content: "new"})

		// when
		err := maven.Extract(archive, dest)

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(filepath.Join(dest, "A.java"))
		require.NoError(t, readErr)
		assert.Equal(t, "new", string(content))
	})

	t.Run("should reject entries escaping the destination", func(t *testing.T) {
		t.Parallel()

		// given
		archive := writeArchive(t, zipEntry{name: "../evil.java", content: "class Evil {}"})
		base := t.TempDir()
		dest := filepath.Join(base, "out")

		// when
		err := maven.Extract(archive, dest)

		// then
		require.Error(t, err)
		assert.NoFileExists(t, filepath.Join(base, "evil.java"))
	})

	t.Run("should fail on a file that is not an archive", func(t *testing.T) {
		t.Parallel()

		// given
		notArchive := filepath.Join(t.TempDir(), "broken.zip")
		require.NoError(t, os.WriteFile(notArchive, []byte("not a zip"), 0o644))

		// when
		err := maven.Extract(notArchive, t.TempDir())

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open archive")
	})
}
