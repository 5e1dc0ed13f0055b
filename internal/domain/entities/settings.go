package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultToolVersion pins com.d2dx.j2objc:j2objc-package.
	DefaultToolVersion = "0.9.1"

	// DefaultRemoteRepository is used to fetch artifacts missing from the local repository.
	DefaultRemoteRepository = "https://repo.maven.apache.org/maven2"

	// ToolGroupID and ToolArtifactID identify the translator distribution.
	ToolGroupID    = "com.d2dx.j2objc"
	ToolArtifactID = "j2objc-package"
	toolType       = "zip"

	// ToolBinaryName is the executable's path relative to the unpacked tool directory.
	ToolBinaryName = "j2objc"

	defaultSourceDirectory = "src/main/java"
	defaultBuildDirectory  = "target"
	outputDirName          = "j2objc"
	sourcesDirName         = "j2objc-sources"
	toolDirName            = "j2objc-bin"
)

// ErrConfigNotFound is returned by FindConfigFile when no settings file exists.
var ErrConfigNotFound = errors.New("config file not found")

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Settings is the configuration of one translation run.
type Settings struct {
	ProjectDir string `yaml:"-"`
	DryRun     bool   `yaml:"-"`

	SourceDirectory string  `yaml:"source_directory"`
	BuildDirectory  string  `yaml:"build_directory"`
	OutputDirectory *string `yaml:"output_directory"` // nil means <build>/j2objc

	IncludeDependencySources bool     `yaml:"include_dependency_sources"`
	IncludeClasspath         bool     `yaml:"include_classpath"`
	Classpath                []string `yaml:"classpath"`
	ToolVersion              string   `yaml:"tool_version"`

	Prefixes           PrefixMap `yaml:"prefixes"`
	Dependencies       []string  `yaml:"dependencies"`
	SourceDependencies []string  `yaml:"source_dependencies"`

	LocalRepository  string `yaml:"local_repository"`
	RemoteRepository string `yaml:"remote_repository"`
	Offline          bool   `yaml:"offline"`
}

// hclSettings mirrors Settings for j2objc.hcl; pointers keep defaults for absent attributes.
type hclSettings struct {
	SourceDirectory          *string       `hcl:"source_directory,optional"`
	BuildDirectory           *string       `hcl:"build_directory,optional"`
	OutputDirectory          *string       `hcl:"output_directory,optional"`
	IncludeDependencySources *bool         `hcl:"include_dependency_sources,optional"`
	IncludeClasspath         *bool         `hcl:"include_classpath,optional"`
	Classpath                []string      `hcl:"classpath,optional"`
	ToolVersion              *string       `hcl:"tool_version,optional"`
	Dependencies             []string      `hcl:"dependencies,optional"`
	SourceDependencies       []string      `hcl:"source_dependencies,optional"`
	LocalRepository          *string       `hcl:"local_repository,optional"`
	RemoteRepository         *string       `hcl:"remote_repository,optional"`
	Offline                  *bool         `hcl:"offline,optional"`
	Prefixes                 []PrefixEntry `hcl:"prefix,block"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings(projectDir string) *Settings {
	localRepo := ""
	if homeDir, err := os.UserHomeDir(); err == nil {
		localRepo = filepath.Join(homeDir, ".m2", "repository")
	}

	return &Settings{
		ProjectDir:       projectDir,
		SourceDirectory:  defaultSourceDirectory,
		BuildDirectory:   defaultBuildDirectory,
		IncludeClasspath: true,
		ToolVersion:      DefaultToolVersion,
		LocalRepository:  localRepo,
		RemoteRepository: DefaultRemoteRepository,
	}
}

// NewSettings builds the settings for projectDir, overlaying cfgPath when set.
func NewSettings(projectDir, cfgPath string) (*Settings, error) {
	absProject, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, fmt.Errorf("invalid project path: %w", err)
	}

	settings := DefaultSettings(absProject)
	if cfgPath == "" {
		return settings, nil
	}

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", cfgPath, err)
	}
	expanded := []byte(expandEnv(string(data)))

	if strings.HasSuffix(cfgPath, ".hcl") {
		err = settings.decodeHCL(cfgPath, expanded)
	} else {
		err = yaml.Unmarshal(expanded, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return settings, nil
}

// FindConfigFile searches the project directory for a settings file.
// Returns ErrConfigNotFound when none is found.
func FindConfigFile(projectDir string) (string, error) {
	locations := []string{
		projectDir,
		filepath.Join(projectDir, ".config"),
	}

	patterns := []string{
		".j2objc.yaml",
		".j2objc.yml",
		"j2objc.yaml",
		"j2objc.yml",
		"j2objc.hcl",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", ErrConfigNotFound
}

func (s *Settings) decodeHCL(filename string, src []byte) error {
	var raw hclSettings
	if err := hclsimple.Decode(filename, src, nil, &raw); err != nil {
		return err
	}

	assign(&s.SourceDirectory, raw.SourceDirectory)
	assign(&s.BuildDirectory, raw.BuildDirectory)
	assign(&s.IncludeDependencySources, raw.IncludeDependencySources)
	assign(&s.IncludeClasspath, raw.IncludeClasspath)
	assign(&s.ToolVersion, raw.ToolVersion)
	assign(&s.LocalRepository, raw.LocalRepository)
	assign(&s.RemoteRepository, raw.RemoteRepository)
	assign(&s.Offline, raw.Offline)
	if raw.OutputDirectory != nil {
		s.OutputDirectory = raw.OutputDirectory
	}
	if raw.Classpath != nil {
		s.Classpath = raw.Classpath
	}
	if raw.Dependencies != nil {
		s.Dependencies = raw.Dependencies
	}
	if raw.SourceDependencies != nil {
		s.SourceDependencies = raw.SourceDependencies
	}
	if len(raw.Prefixes) > 0 {
		s.Prefixes = raw.Prefixes
	}
	return nil
}

func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Validate checks for contradictory or unusable values.
func (s *Settings) Validate() error {
	if s.OutputDirectory != nil && strings.TrimSpace(*s.OutputDirectory) == "" {
		return &ConfigurationError{Field: "output_directory", Reason: "must not be empty"}
	}
	if strings.TrimSpace(s.SourceDirectory) == "" {
		return &ConfigurationError{Field: "source_directory", Reason: "must not be empty"}
	}
	if strings.TrimSpace(s.BuildDirectory) == "" {
		return &ConfigurationError{Field: "build_directory", Reason: "must not be empty"}
	}
	if !semver.IsValid("v" + strings.TrimPrefix(s.ToolVersion, "v")) {
		return &ConfigurationError{
			Field:  "tool_version",
			Reason: fmt.Sprintf("%q is not a semantic version", s.ToolVersion),
		}
	}
	if err := s.Prefixes.Validate(); err != nil {
		return err
	}
	if _, err := ParseDependencies(s.Dependencies); err != nil {
		return err
	}
	if _, err := ParseDependencies(s.SourceDependencies); err != nil {
		return err
	}
	if strings.TrimSpace(s.LocalRepository) == "" {
		return &ConfigurationError{Field: "local_repository", Reason: "must not be empty"}
	}
	return nil
}

// resolve makes p absolute relative to the project directory.
func (s *Settings) resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(s.ProjectDir, p)
}

// BuildDir returns the absolute build directory.
func (s *Settings) BuildDir() string { return s.resolve(s.BuildDirectory) }

// SourceDir returns the absolute primary source directory.
func (s *Settings) SourceDir() string { return s.resolve(s.SourceDirectory) }

// OutputDir returns the absolute output directory.
func (s *Settings) OutputDir() string {
	if s.OutputDirectory == nil {
		return filepath.Join(s.BuildDir(), outputDirName)
	}
	if strings.TrimSpace(*s.OutputDirectory) == "" {
		return ""
	}
	return s.resolve(*s.OutputDirectory)
}

// DependencySourcesDir is where dependency sources are unpacked.
func (s *Settings) DependencySourcesDir() string { return filepath.Join(s.BuildDir(), sourcesDirName) }

// ToolDir is where the translator distribution is unpacked.
func (s *Settings) ToolDir() string { return filepath.Join(s.BuildDir(), toolDirName) }

// ToolBinary is the translator executable inside ToolDir.
func (s *Settings) ToolBinary() string { return filepath.Join(s.ToolDir(), ToolBinaryName) }

// PrefixFilePath is where the prefix file is written.
func (s *Settings) PrefixFilePath() string { return filepath.Join(s.OutputDir(), PrefixFileName) }

// SourceRoots returns the two default scan roots: the primary source
// directory and the unpacked dependency sources directory.
func (s *Settings) SourceRoots() []string {
	return []string{s.SourceDir(), s.DependencySourcesDir()}
}

// ToolArtifact returns the coordinates of the translator distribution.
func (s *Settings) ToolArtifact() Dependency {
	return Dependency{
		GroupID:    ToolGroupID,
		ArtifactID: ToolArtifactID,
		Version:    strings.TrimPrefix(s.ToolVersion, "v"),
		Type:       toolType,
	}
}

// RepositoryLocation returns where artifacts are looked up.
func (s *Settings) RepositoryLocation() RepositoryLocation {
	return RepositoryLocation{
		Local:   s.resolve(s.LocalRepository),
		Remote:  s.RemoteRepository,
		Offline: s.Offline,
	}
}

// expandEnv expands ${ENV_VAR} references, warning about unset variables.
func expandEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val, ok := os.LookupEnv(varName); ok {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
