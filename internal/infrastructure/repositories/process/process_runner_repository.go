package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/j2objcrun/internal/domain/entities"
	"github.com/rios0rios0/j2objcrun/internal/domain/repositories"
)

// RunnerRepository runs programs as child processes and waits for them.
// Standard output goes to the logger; standard error is both echoed to the
// terminal and captured, since it carries the tool's diagnostics.
type RunnerRepository struct {
	stderr io.Writer
}

var _ repositories.ProcessRunner = (*RunnerRepository)(nil)

// NewRunnerRepository creates a runner echoing stderr to os.Stderr.
func NewRunnerRepository() *RunnerRepository {
	return &RunnerRepository{stderr: os.Stderr}
}

// NewRunnerRepositoryWithStderr creates a runner echoing stderr to w.
func NewRunnerRepositoryWithStderr(w io.Writer) *RunnerRepository {
	return &RunnerRepository{stderr: w}
}

// Run starts spec.Executable in spec.WorkingDir and blocks until it exits.
func (r *RunnerRepository) Run(
	ctx context.Context,
	spec entities.InvocationSpec,
) (*entities.ProcessResult, error) {
	cmd := exec.CommandContext(ctx, spec.Executable, spec.Args...)
	cmd.Dir = spec.WorkingDir

	stdout := logger.StandardLogger().WriterLevel(logger.InfoLevel)
	defer stdout.Close()

	var captured bytes.Buffer
	cmd.Stdout = stdout
	cmd.Stderr = io.MultiWriter(r.stderr, &captured)

	err := cmd.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &entities.ProcessResult{
			ExitCode: exitErr.ExitCode(),
			Stderr:   captured.String(),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to run %s: %w", spec.Executable, err)
	}

	return &entities.ProcessResult{ExitCode: 0, Stderr: captured.String()}, nil
}
