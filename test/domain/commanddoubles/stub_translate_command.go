//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/j2objcrun/internal/domain/commands"
	"github.com/rios0rios0/j2objcrun/internal/domain/entities"
)

// StubTranslateCommand is a stub implementation of commands.Translate.
type StubTranslateCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           *entities.TranslationResult
	LastSettings     *entities.Settings
	LastContext      context.Context
}

var _ commands.Translate = (*StubTranslateCommand)(nil)

func (s *StubTranslateCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
) (*entities.TranslationResult, error) {
	s.ExecuteCallCount++
	s.LastContext = ctx
	s.LastSettings = settings
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	if s.Result != nil {
		return s.Result, nil
	}
	return &entities.TranslationResult{}, nil
}
