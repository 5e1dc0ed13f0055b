package repositories

import "github.com/rios0rios0/j2objcrun/internal/domain/entities"

// SourceCollector discovers translatable files under a set of roots.
type SourceCollector interface {
	// Collect returns the deduplicated absolute paths of every eligible file.
	// Roots that do not exist contribute nothing.
	Collect(roots []string) ([]string, error)
}

// PrefixWriter serializes a prefix map to a file.
type PrefixWriter interface {
	Write(prefixes entities.PrefixMap, target string) error
}

// ExecutableMarker sets the owner execute bit on a file.
type ExecutableMarker interface {
	MarkExecutable(path string) error
}

// DirectoryMaker creates a directory tree, succeeding if it already exists.
type DirectoryMaker interface {
	MkdirAll(path string) error
}
