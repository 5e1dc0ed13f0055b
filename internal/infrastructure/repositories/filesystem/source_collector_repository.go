package filesystem

import (
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/j2objcrun/internal/domain/entities"
	"github.com/rios0rios0/j2objcrun/internal/domain/repositories"
)

// JavaExtension is the compilation-unit extension picked up by the collector.
const JavaExtension = ".java"

var errNotDirectory = errors.New("not a directory")

// SourceCollectorRepository walks source roots looking for files with a given extension.
type SourceCollectorRepository struct {
	extension string
}

var _ repositories.SourceCollector = (*SourceCollectorRepository)(nil)

// NewSourceCollectorRepository creates a collector for Java compilation units.
func NewSourceCollectorRepository() *SourceCollectorRepository {
	return &SourceCollectorRepository{extension: JavaExtension}
}

// Collect scans every root recursively and returns the sorted, deduplicated
// absolute paths of the matching files. A file reachable through several
// roots (including symlinked ones) is reported once, under the first path seen.
func (r *SourceCollectorRepository) Collect(roots []string) ([]string, error) {
	found := make(map[string]string) // real path -> reported path

	for _, root := range uniqueRoots(roots) {
		if err := r.scanRoot(root, found); err != nil {
			return nil, err
		}
	}

	return slices.Sorted(maps.Values(found)), nil
}

func (r *SourceCollectorRepository) scanRoot(root string, found map[string]string) error {
	info, err := os.Stat(root)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debugf("Source root %s does not exist, skipping", root)
		return nil
	}
	if err != nil {
		return &entities.FilesystemError{Op: "read source root", Path: root, Err: err}
	}
	if !info.IsDir() {
		return &entities.FilesystemError{Op: "read source root", Path: root, Err: errNotDirectory}
	}

	before := len(found)
	// trailing separator makes the walk descend into a symlinked root
	walkErr := filepath.WalkDir(root+string(filepath.Separator), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &entities.FilesystemError{Op: "read source root", Path: path, Err: err}
		}
		if d.IsDir() || filepath.Ext(path) != r.extension {
			return nil
		}
		if !isRegularFile(path, d) {
			return nil
		}
		reported := filepath.Clean(path)
		key := realPath(reported)
		if _, seen := found[key]; !seen {
			found[key] = reported
		}
		return nil
	})
	if walkErr != nil {
		return walkErr
	}

	logger.Debugf("Source root %s contributed %d new file(s)", root, len(found)-before)
	return nil
}

// isRegularFile accepts regular files and symlinks that resolve to one.
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type()&fs.ModeSymlink == 0 {
		return d.Type().IsRegular()
	}
	target, err := os.Stat(path)
	if err != nil {
		logger.Debugf("Skipping dangling symlink %s", path)
		return false
	}
	return target.Mode().IsRegular()
}

// realPath resolves every symlink in path, falling back to path itself.
func realPath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return path
}

// uniqueRoots returns the cleaned absolute roots without duplicates or empty entries.
func uniqueRoots(roots []string) []string {
	seen := make(map[string]struct{}, len(roots))
	result := make([]string, 0, len(roots))
	for _, root := range roots {
		if root == "" {
			continue
		}
		abs, err := filepath.Abs(root)
		if err != nil {
			abs = filepath.Clean(root)
		}
		key := realPath(abs)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, abs)
	}
	return result
}
