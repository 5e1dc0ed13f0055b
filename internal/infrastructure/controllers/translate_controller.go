package controllers

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/j2objcrun/internal/domain/commands"
	"github.com/rios0rios0/j2objcrun/internal/domain/entities"
)

// TranslateController handles the "translate" subcommand and the root command.
type TranslateController struct {
	command commands.Translate
}

// NewTranslateController creates a new TranslateController.
func NewTranslateController(command commands.Translate) *TranslateController {
	return &TranslateController{command: command}
}

// GetBind returns the Cobra command metadata for the translate controller.
func (it *TranslateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "translate [project-dir]",
		Short: "Translate the project's Java sources to Objective-C",
		Long: `Unpack the j2objc distribution, collect the project's Java sources
(and optionally the sources of its dependencies), write the prefix file
and run j2objc over every collected file.

Settings are read from j2objc.yaml, .j2objc.yaml or j2objc.hcl in the
project directory unless --config is given. Flags override file values.`,
	}
}

// Execute runs a translation for the project directory in args (default ".").
func (it *TranslateController) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	projectDir := "."
	if len(args) > 0 {
		projectDir = args[0]
	}

	settings, err := loadSettings(cmd, projectDir)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return err
	}

	result, err := it.command.Execute(ctx, settings)
	if err != nil {
		logger.Errorf("Translation failed: %v", err)
		return err
	}

	for _, warning := range result.Warnings {
		logger.Warnf("Completed with warning: %s", warning)
	}
	return nil
}

// AddFlags adds the translate-specific flags to the given Cobra command.
func (it *TranslateController) AddFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("tool-version", entities.DefaultToolVersion, "Version of "+entities.ToolGroupID+":"+entities.ToolArtifactID)
	flags.StringP("output", "o", "", "Output directory (default: <build-dir>/j2objc)")
	flags.String("source-dir", "", "Primary Java source directory (default: src/main/java)")
	flags.String("build-dir", "", "Build directory (default: target)")
	flags.Bool("include-dependency-sources", false, "Unpack and translate the sources of declared dependencies")
	flags.Bool("include-classpath", true, "Pass -cp to j2objc")
	flags.StringSlice("classpath", nil, "Classpath entries passed with -cp")
	flags.StringArray("prefix", nil, "Package prefix mapping, <java-prefix>=<objc-prefix> (repeatable)")
	flags.StringArray("dependency", nil, "Dependency coordinates groupId:artifactId:version (repeatable)")
	flags.StringArray("source-dependency", nil,
		"Dependency whose sources are unpacked when --include-dependency-sources is off (repeatable)")
	flags.String("local-repository", "", "Local Maven repository (default: ~/.m2/repository)")
	flags.String("remote-repository", "", "Remote Maven repository used on a local miss")
	flags.Bool("offline", false, "Never download artifacts")
}

// loadSettings reads the settings file (explicit or discovered) and applies flag overrides.
func loadSettings(cmd *cobra.Command, projectDir string) (*entities.Settings, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		found, err := entities.FindConfigFile(projectDir)
		switch {
		case err == nil:
			cfgPath = found
		case errors.Is(err, entities.ErrConfigNotFound):
			logger.Debugf("No config file in %s, using defaults", projectDir)
		default:
			return nil, err
		}
	}
	if cfgPath != "" {
		logger.Infof("Using config file: %s", cfgPath)
	}

	settings, err := entities.NewSettings(projectDir, cfgPath)
	if err != nil {
		return nil, err
	}

	if err = applyFlags(cmd, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

//nolint:cyclop // one branch per flag
func applyFlags(cmd *cobra.Command, settings *entities.Settings) error {
	flags := cmd.Flags()

	settings.DryRun, _ = flags.GetBool("dry-run")

	if flags.Changed("tool-version") {
		settings.ToolVersion, _ = flags.GetString("tool-version")
	}
	if flags.Changed("output") {
		output, _ := flags.GetString("output")
		settings.OutputDirectory = &output
	}
	if flags.Changed("source-dir") {
		settings.SourceDirectory, _ = flags.GetString("source-dir")
	}
	if flags.Changed("build-dir") {
		settings.BuildDirectory, _ = flags.GetString("build-dir")
	}
	if flags.Changed("include-dependency-sources") {
		settings.IncludeDependencySources, _ = flags.GetBool("include-dependency-sources")
	}
	if flags.Changed("include-classpath") {
		settings.IncludeClasspath, _ = flags.GetBool("include-classpath")
	}
	if flags.Changed("classpath") {
		settings.Classpath, _ = flags.GetStringSlice("classpath")
	}
	if flags.Changed("prefix") {
		raw, _ := flags.GetStringArray("prefix")
		prefixes := make(entities.PrefixMap, 0, len(raw))
		for _, r := range raw {
			entry, err := entities.ParsePrefixEntry(r)
			if err != nil {
				return err
			}
			prefixes = append(prefixes, entry)
		}
		settings.Prefixes = prefixes
	}
	if flags.Changed("dependency") {
		settings.Dependencies, _ = flags.GetStringArray("dependency")
	}
	if flags.Changed("source-dependency") {
		settings.SourceDependencies, _ = flags.GetStringArray("source-dependency")
	}
	if flags.Changed("local-repository") {
		settings.LocalRepository, _ = flags.GetString("local-repository")
	}
	if flags.Changed("remote-repository") {
		settings.RemoteRepository, _ = flags.GetString("remote-repository")
	}
	if flags.Changed("offline") {
		settings.Offline, _ = flags.GetBool("offline")
	}
	return nil
}
