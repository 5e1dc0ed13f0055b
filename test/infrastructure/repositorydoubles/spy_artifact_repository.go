//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rios0rios0/j2objcrun/internal/domain/repositories"
)

// SpyArtifactRepository implements repositories.ArtifactRepository as a configurable spy.
// On UnpackArtifact it writes ToolFiles (relative path -> content) into the output
// directory, so tests can simulate an unpacked distribution.
type SpyArtifactRepository struct {
	// --- UnpackSources ---
	UnpackSourcesErr   error
	SourceFiles        map[string]string
	UnpackSourcesCalls []repositories.SourcesUnpackRequest

	// --- UnpackArtifact ---
	UnpackArtifactErr   error
	ToolFiles           map[string]string
	ToolFileMode        os.FileMode
	UnpackArtifactCalls []repositories.ArtifactUnpackRequest
}

var _ repositories.ArtifactRepository = (*SpyArtifactRepository)(nil)

func (s *SpyArtifactRepository) UnpackSources(
	_ context.Context,
	req repositories.SourcesUnpackRequest,
) error {
	s.UnpackSourcesCalls = append(s.UnpackSourcesCalls, req)
	if s.UnpackSourcesErr != nil {
		return s.UnpackSourcesErr
	}
	return writeFiles(req.OutputDir, s.SourceFiles, 0o644)
}

func (s *SpyArtifactRepository) UnpackArtifact(
	_ context.Context,
	req repositories.ArtifactUnpackRequest,
) error {
	s.UnpackArtifactCalls = append(s.UnpackArtifactCalls, req)
	if s.UnpackArtifactErr != nil {
		return s.UnpackArtifactErr
	}
	mode := s.ToolFileMode
	if mode == 0 {
		mode = 0o755
	}
	return writeFiles(req.OutputDir, s.ToolFiles, mode)
}

func writeFiles(dir string, files map[string]string, mode os.FileMode) error {
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), mode); err != nil {
			return err
		}
	}
	return nil
}
