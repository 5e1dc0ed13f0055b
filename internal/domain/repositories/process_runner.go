package repositories

import (
	"context"

	"github.com/rios0rios0/j2objcrun/internal/domain/entities"
)

// ProcessRunner executes an external program and waits for it to exit.
// A non-zero exit code is reported through ProcessResult, not as an error;
// the error return is reserved for failures to start or wait on the child.
type ProcessRunner interface {
	Run(ctx context.Context, spec entities.InvocationSpec) (*entities.ProcessResult, error)
}
