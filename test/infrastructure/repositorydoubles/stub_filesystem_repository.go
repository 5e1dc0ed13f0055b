//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/j2objcrun/internal/domain/entities"
	"github.com/rios0rios0/j2objcrun/internal/domain/repositories"
)

// StubExecutableMarker implements repositories.ExecutableMarker, recording paths
// and returning MarkErr.
type StubExecutableMarker struct {
	MarkErr error
	Paths   []string
}

var _ repositories.ExecutableMarker = (*StubExecutableMarker)(nil)

func (s *StubExecutableMarker) MarkExecutable(path string) error {
	s.Paths = append(s.Paths, path)
	return s.MarkErr
}

// StubSourceCollector implements repositories.SourceCollector with canned results.
type StubSourceCollector struct {
	Files      []string
	CollectErr error
	Roots      [][]string
}

var _ repositories.SourceCollector = (*StubSourceCollector)(nil)

func (s *StubSourceCollector) Collect(roots []string) ([]string, error) {
	s.Roots = append(s.Roots, roots)
	return s.Files, s.CollectErr
}

// SpyPrefixWriter implements repositories.PrefixWriter without touching the disk.
type SpyPrefixWriter struct {
	WriteErr error
	Targets  []string
	Written  []entities.PrefixMap
}

var _ repositories.PrefixWriter = (*SpyPrefixWriter)(nil)

func (s *SpyPrefixWriter) Write(prefixes entities.PrefixMap, target string) error {
	s.Targets = append(s.Targets, target)
	s.Written = append(s.Written, prefixes)
	return s.WriteErr
}
