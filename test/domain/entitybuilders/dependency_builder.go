//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/j2objcrun/internal/domain/entities"
)

// DependencyBuilder helps create test dependencies with a fluent interface.
type DependencyBuilder struct {
	*testkit.BaseBuilder
	groupID      string
	artifactID   string
	version      string
	classifier   string
	artifactType string
}

// NewDependencyBuilder creates a new dependency builder with sensible defaults.
func NewDependencyBuilder() *DependencyBuilder {
	return &DependencyBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		groupID:     "com.example",
		artifactID:  "lib",
		version:     "1.0.0",
	}
}

// WithGroupID sets the group id.
func (b *DependencyBuilder) WithGroupID(groupID string) *DependencyBuilder {
	b.groupID = groupID
	return b
}

// WithArtifactID sets the artifact id.
func (b *DependencyBuilder) WithArtifactID(artifactID string) *DependencyBuilder {
	b.artifactID = artifactID
	return b
}

// WithVersion sets the version.
func (b *DependencyBuilder) WithVersion(version string) *DependencyBuilder {
	b.version = version
	return b
}

// WithClassifier sets the classifier.
func (b *DependencyBuilder) WithClassifier(classifier string) *DependencyBuilder {
	b.classifier = classifier
	return b
}

// WithType sets the packaging extension.
func (b *DependencyBuilder) WithType(artifactType string) *DependencyBuilder {
	b.artifactType = artifactType
	return b
}

// Build creates the dependency (satisfies testkit.Builder interface).
func (b *DependencyBuilder) Build() interface{} {
	return b.BuildDependency()
}

// BuildDependency creates the dependency with a concrete return type.
func (b *DependencyBuilder) BuildDependency() entities.Dependency {
	return entities.Dependency{
		GroupID:    b.groupID,
		ArtifactID: b.artifactID,
		Version:    b.version,
		Classifier: b.classifier,
		Type:       b.artifactType,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.groupID = "com.example"
	b.artifactID = "lib"
	b.version = "1.0.0"
	b.classifier = ""
	b.artifactType = ""
	return b
}

// Clone creates a deep copy of the DependencyBuilder.
func (b *DependencyBuilder) Clone() testkit.Builder {
	return &DependencyBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		groupID:      b.groupID,
		artifactID:   b.artifactID,
		version:      b.version,
		classifier:   b.classifier,
		artifactType: b.artifactType,
	}
}
