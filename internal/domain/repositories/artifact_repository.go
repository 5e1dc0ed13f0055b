package repositories

import (
	"context"

	"github.com/rios0rios0/j2objcrun/internal/domain/entities"
)

// SourcesUnpackRequest asks for the source attachments of dependencies.
type SourcesUnpackRequest struct {
	Dependencies  []entities.Dependency
	Classifier    string // "sources"
	FailOnMissing bool
	OutputDir     string
	Location      entities.RepositoryLocation
}

// ArtifactUnpackRequest asks for a single artifact to be extracted.
type ArtifactUnpackRequest struct {
	Artifact  entities.Dependency
	OutputDir string
	Location  entities.RepositoryLocation
}

// ArtifactRepository retrieves artifacts and extracts them into a directory.
type ArtifactRepository interface {
	// UnpackSources extracts the classifier attachment of every dependency into
	// OutputDir. Missing attachments are skipped unless FailOnMissing is set.
	UnpackSources(ctx context.Context, req SourcesUnpackRequest) error

	// UnpackArtifact extracts one artifact into OutputDir.
	UnpackArtifact(ctx context.Context, req ArtifactUnpackRequest) error
}
