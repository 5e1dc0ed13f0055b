package filesystem

import (
	"bufio"
	"os"

	"github.com/rios0rios0/j2objcrun/internal/domain/entities"
	"github.com/rios0rios0/j2objcrun/internal/domain/repositories"
)

// PrefixWriterRepository writes prefix maps as `source: target` lines.
type PrefixWriterRepository struct{}

var _ repositories.PrefixWriter = (*PrefixWriterRepository)(nil)

// NewPrefixWriterRepository creates a new PrefixWriterRepository.
func NewPrefixWriterRepository() *PrefixWriterRepository {
	return &PrefixWriterRepository{}
}

// Write truncates target and writes one line per entry in declaration order.
func (r *PrefixWriterRepository) Write(prefixes entities.PrefixMap, target string) error {
	if err := prefixes.Validate(); err != nil {
		return err
	}

	file, err := os.Create(target)
	if err != nil {
		return &entities.FilesystemError{Op: "create prefix file", Path: target, Err: err}
	}

	w := bufio.NewWriter(file)
	for _, entry := range prefixes {
		if _, err = w.WriteString(entry.Line() + "\n"); err != nil {
			break
		}
	}
	if err == nil {
		err = w.Flush()
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return &entities.FilesystemError{Op: "write prefix file", Path: target, Err: err}
	}
	return nil
}
