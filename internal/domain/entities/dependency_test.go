//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/j2objcrun/internal/domain/entities"
)

func TestParseDependency(t *testing.T) {
	t.Parallel()

	t.Run("should parse group, artifact and version", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "com.google.guava:guava:33.0.0"

		// when
		dep, err := entities.ParseDependency(raw)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.Dependency{GroupID: "com.google.guava", ArtifactID: "guava", Version: "33.0.0"}, dep)
		assert.Equal(t, "jar", dep.Extension())
	})

	t.Run("should parse classifier and type", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "com.d2dx.j2objc:j2objc-package:0.9.1:dist@zip"

		// when
		dep, err := entities.ParseDependency(raw)

		// then
		require.NoError(t, err)
		assert.Equal(t, "dist", dep.Classifier)
		assert.Equal(t, "zip", dep.Type)
		assert.Equal(t, raw, dep.String())
	})

	t.Run("should reject missing coordinates", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"com.example:lib", "com.example::1.0", "a:b:c:d:e"} {
			// when
			_, err := entities.ParseDependency(raw)

			// then
			assert.ErrorIs(t, err, entities.ErrInvalidConfiguration, raw)
		}
	})
}

func TestDependencyRepositoryPath(t *testing.T) {
	t.Parallel()

	t.Run("should follow the Maven repository layout", func(t *testing.T) {
		t.Parallel()

		// given
		dep := entities.Dependency{GroupID: "com.example.util", ArtifactID: "lib", Version: "1.2.0"}

		// when
		path := dep.WithClassifier(entities.SourcesClassifier).RepositoryPath()

		// then
		assert.Equal(t, "com/example/util/lib/1.2.0/lib-1.2.0-sources.jar", path)
	})

	t.Run("should leave the receiver untouched when a classifier is added", func(t *testing.T) {
		t.Parallel()

		// given
		dep := entities.Dependency{GroupID: "g", ArtifactID: "a", Version: "1"}

		// when
		_ = dep.WithClassifier("sources")

		// then
		assert.Empty(t, dep.Classifier)
		assert.Equal(t, "a-1.jar", dep.FileName())
	})
}
