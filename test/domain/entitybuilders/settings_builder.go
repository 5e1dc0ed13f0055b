//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"slices"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/j2objcrun/internal/domain/entities"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	projectDir               string
	localRepository          string
	outputDirectory          *string
	includeDependencySources bool
	includeClasspath         bool
	prefixes                 entities.PrefixMap
	dependencies             []string
	sourceDependencies       []string
	dryRun                   bool
}

// NewSettingsBuilder creates a new settings builder with sensible defaults.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder:      testkit.NewBaseBuilder(),
		projectDir:       "/proj",
		localRepository:  "/proj/.m2",
		includeClasspath: true,
	}
}

// WithProjectDir sets the project directory.
func (b *SettingsBuilder) WithProjectDir(dir string) *SettingsBuilder {
	b.projectDir = dir
	return b
}

// WithLocalRepository sets the local Maven repository.
func (b *SettingsBuilder) WithLocalRepository(dir string) *SettingsBuilder {
	b.localRepository = dir
	return b
}

// WithOutputDirectory overrides the output directory.
func (b *SettingsBuilder) WithOutputDirectory(dir string) *SettingsBuilder {
	b.outputDirectory = &dir
	return b
}

// WithIncludeDependencySources toggles dependency source unpacking.
func (b *SettingsBuilder) WithIncludeDependencySources(include bool) *SettingsBuilder {
	b.includeDependencySources = include
	return b
}

// WithIncludeClasspath toggles the -cp argument.
func (b *SettingsBuilder) WithIncludeClasspath(include bool) *SettingsBuilder {
	b.includeClasspath = include
	return b
}

// WithPrefix appends a prefix mapping.
func (b *SettingsBuilder) WithPrefix(source, target string) *SettingsBuilder {
	b.prefixes = append(b.prefixes, entities.PrefixEntry{Source: source, Target: target})
	return b
}

// WithDependencies sets the declared dependency coordinates.
func (b *SettingsBuilder) WithDependencies(coordinates ...string) *SettingsBuilder {
	b.dependencies = coordinates
	return b
}

// WithSourceDependencies sets the explicit source dependency coordinates.
func (b *SettingsBuilder) WithSourceDependencies(coordinates ...string) *SettingsBuilder {
	b.sourceDependencies = coordinates
	return b
}

// WithDryRun toggles dry-run mode.
func (b *SettingsBuilder) WithDryRun(dryRun bool) *SettingsBuilder {
	b.dryRun = dryRun
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	settings := entities.DefaultSettings(b.projectDir)
	settings.LocalRepository = b.localRepository
	settings.OutputDirectory = b.outputDirectory
	settings.IncludeDependencySources = b.includeDependencySources
	settings.IncludeClasspath = b.includeClasspath
	settings.Prefixes = slices.Clone(b.prefixes)
	settings.Dependencies = slices.Clone(b.dependencies)
	settings.SourceDependencies = slices.Clone(b.sourceDependencies)
	settings.DryRun = b.dryRun
	return settings
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.projectDir = "/proj"
	b.localRepository = "/proj/.m2"
	b.outputDirectory = nil
	b.includeDependencySources = false
	b.includeClasspath = true
	b.prefixes = nil
	b.dependencies = nil
	b.sourceDependencies = nil
	b.dryRun = false
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder:              b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		projectDir:               b.projectDir,
		localRepository:          b.localRepository,
		outputDirectory:          b.outputDirectory,
		includeDependencySources: b.includeDependencySources,
		includeClasspath:         b.includeClasspath,
		prefixes:                 slices.Clone(b.prefixes),
		dependencies:             slices.Clone(b.dependencies),
		sourceDependencies:       slices.Clone(b.sourceDependencies),
		dryRun:                   b.dryRun,
	}
}
