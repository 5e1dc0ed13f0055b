//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/j2objcrun/internal/domain/entities"
	"github.com/rios0rios0/j2objcrun/internal/domain/repositories"
)

// SpyProcessRunner implements repositories.ProcessRunner as a configurable spy.
type SpyProcessRunner struct {
	ExitCode int
	Stderr   string
	RunErr   error
	Calls    []entities.InvocationSpec
}

var _ repositories.ProcessRunner = (*SpyProcessRunner)(nil)

func (s *SpyProcessRunner) Run(
	_ context.Context,
	spec entities.InvocationSpec,
) (*entities.ProcessResult, error) {
	s.Calls = append(s.Calls, spec)
	if s.RunErr != nil {
		return nil, s.RunErr
	}
	return &entities.ProcessResult{ExitCode: s.ExitCode, Stderr: s.Stderr}, nil
}
