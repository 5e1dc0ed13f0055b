package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/j2objcrun/internal/domain/entities"
	"github.com/rios0rios0/j2objcrun/internal/domain/repositories"
)

// Step names used in error messages and logs.
const (
	StepUnpackSources  = "unpack dependency sources"
	StepUnpackTool     = "unpack tool artifact"
	StepPrepareOutput  = "prepare output directory"
	StepCollectSources = "collect sources"
	StepWritePrefixes  = "write prefixes"
	StepMarkExecutable = "make tool executable"
	StepBuild          = "build invocation"
	StepExecute        = "execute"
)

// Translate is the interface for the translate command.
type Translate interface {
	Execute(ctx context.Context, settings *entities.Settings) (*entities.TranslationResult, error)
}

// TranslateCommand drives one translation run: it unpacks the dependency
// sources and the translator, collects the Java sources, writes the prefix
// file, assembles the command line and runs the translator.
//
// Every step is fatal on failure except marking the binary executable, which
// is downgraded to a warning.
type TranslateCommand struct {
	artifacts    repositories.ArtifactRepository
	collector    repositories.SourceCollector
	prefixWriter repositories.PrefixWriter
	marker       repositories.ExecutableMarker
	dirs         repositories.DirectoryMaker
	runner       repositories.ProcessRunner
}

// NewTranslateCommand creates a new TranslateCommand.
func NewTranslateCommand(
	artifacts repositories.ArtifactRepository,
	collector repositories.SourceCollector,
	prefixWriter repositories.PrefixWriter,
	marker repositories.ExecutableMarker,
	dirs repositories.DirectoryMaker,
	runner repositories.ProcessRunner,
) *TranslateCommand {
	return &TranslateCommand{
		artifacts:    artifacts,
		collector:    collector,
		prefixWriter: prefixWriter,
		marker:       marker,
		dirs:         dirs,
		runner:       runner,
	}
}

// Execute runs the translation for the given settings.
func (it *TranslateCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
) (*entities.TranslationResult, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	result := &entities.TranslationResult{}

	if err := it.unpackDependencySources(ctx, settings); err != nil {
		return nil, err
	}

	toolArtifact := settings.ToolArtifact()
	logger.Infof("Unpacking %s into %s", toolArtifact, settings.ToolDir())
	if err := it.artifacts.UnpackArtifact(ctx, repositories.ArtifactUnpackRequest{
		Artifact:  toolArtifact,
		OutputDir: settings.ToolDir(),
		Location:  settings.RepositoryLocation(),
	}); err != nil {
		return nil, &entities.ExternalToolError{Step: StepUnpackTool, ExitCode: -1, Err: err}
	}

	outputDir := settings.OutputDir()
	if err := it.dirs.MkdirAll(outputDir); err != nil {
		return nil, fmt.Errorf("%s: %w", StepPrepareOutput, err)
	}

	roots := settings.SourceRoots()
	files, err := it.collector.Collect(roots)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StepCollectSources, err)
	}
	result.SourceFiles = len(files)
	if len(files) == 0 {
		logger.Warnf("No Java sources found under %v, invoking the translator anyway", roots)
	} else {
		logger.Infof("Collected %d Java source(s)", len(files))
	}

	if !settings.Prefixes.IsEmpty() {
		prefixFile := settings.PrefixFilePath()
		if writeErr := it.prefixWriter.Write(settings.Prefixes, prefixFile); writeErr != nil {
			return nil, fmt.Errorf("%s: %w", StepWritePrefixes, writeErr)
		}
		logger.Debugf("Wrote %d prefix(es) to %s", len(settings.Prefixes), prefixFile)
		result.PrefixFile = prefixFile
	}

	binary := settings.ToolBinary()
	if markErr := it.marker.MarkExecutable(binary); markErr != nil {
		warning := fmt.Sprintf("%s: %v", StepMarkExecutable, markErr)
		logger.Warn(warning)
		result.Warnings = append(result.Warnings, warning)
	}

	spec, err := entities.BuildInvocation(entities.InvocationConfig{
		Executable:       binary,
		WorkingDir:       settings.ToolDir(),
		IncludeClasspath: settings.IncludeClasspath,
		Classpath:        settings.Classpath,
		SourceRoots:      roots,
		SourceFiles:      files,
		PrefixFile:       result.PrefixFile,
		OutputDirectory:  outputDir,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StepBuild, err)
	}
	result.Invocation = spec

	if settings.DryRun {
		logger.Infof("[DRY RUN] Would run: %s", spec.CommandLine())
		return result, nil
	}

	if err = spec.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", StepExecute, err)
	}

	logger.Debugf("Running: %s", spec.CommandLine())
	processResult, err := it.runner.Run(ctx, spec)
	if err != nil {
		return nil, &entities.ExternalToolError{Step: StepExecute, ExitCode: -1, Err: err}
	}
	result.Executed = true
	result.ExitCode = processResult.ExitCode
	if !processResult.IsSuccess() {
		return result, &entities.ExternalToolError{
			Step:     StepExecute,
			ExitCode: processResult.ExitCode,
			Stderr:   processResult.Stderr,
		}
	}

	logger.Infof("Translated %d source(s) into %s", result.SourceFiles, outputDir)
	return result, nil
}

// unpackDependencySources extracts dependency sources when requested. With
// dependency sources disabled, an explicit source_dependencies list still
// selects which attachments to unpack.
func (it *TranslateCommand) unpackDependencySources(ctx context.Context, settings *entities.Settings) error {
	var coordinates []string
	switch {
	case settings.IncludeDependencySources:
		coordinates = settings.Dependencies
	case len(settings.SourceDependencies) > 0:
		coordinates = settings.SourceDependencies
	default:
		return nil
	}

	deps, err := entities.ParseDependencies(coordinates)
	if err != nil {
		return fmt.Errorf("%s: %w", StepUnpackSources, err)
	}

	logger.Infof("Unpacking sources of %d dependency(ies) into %s", len(deps), settings.DependencySourcesDir())
	if err = it.artifacts.UnpackSources(ctx, repositories.SourcesUnpackRequest{
		Dependencies:  deps,
		Classifier:    entities.SourcesClassifier,
		FailOnMissing: false,
		OutputDir:     settings.DependencySourcesDir(),
		Location:      settings.RepositoryLocation(),
	}); err != nil {
		return &entities.ExternalToolError{Step: StepUnpackSources, ExitCode: -1, Err: err}
	}
	return nil
}
