package filesystem

import (
	"os"

	"github.com/rios0rios0/j2objcrun/internal/domain/entities"
	"github.com/rios0rios0/j2objcrun/internal/domain/repositories"
)

const (
	ownerExecute = 0o100
	dirMode      = 0o755
)

// PermissionRepository manages directories and file modes on the local disk.
type PermissionRepository struct{}

var (
	_ repositories.ExecutableMarker = (*PermissionRepository)(nil)
	_ repositories.DirectoryMaker   = (*PermissionRepository)(nil)
)

// NewPermissionRepository creates a new PermissionRepository.
func NewPermissionRepository() *PermissionRepository {
	return &PermissionRepository{}
}

// MarkExecutable is the equivalent of `chmod u+x path`.
func (r *PermissionRepository) MarkExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &entities.FilesystemError{Op: "stat tool binary", Path: path, Err: err}
	}
	if info.Mode().Perm()&ownerExecute != 0 {
		return nil
	}
	if err = os.Chmod(path, info.Mode().Perm()|ownerExecute); err != nil {
		return &entities.FilesystemError{Op: "chmod tool binary", Path: path, Err: err}
	}
	return nil
}

// MkdirAll creates path and its parents; an existing directory is not an error.
func (r *PermissionRepository) MkdirAll(path string) error {
	if err := os.MkdirAll(path, dirMode); err != nil {
		return &entities.FilesystemError{Op: "create output directory", Path: path, Err: err}
	}
	return nil
}
