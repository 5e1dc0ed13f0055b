package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/j2objcrun/internal"
	"github.com/rios0rios0/j2objcrun/internal/infrastructure/controllers"
)

func buildRootCommand(translateController *controllers.TranslateController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "j2objcrun [project-dir]",
		Short: "Translate a Java project to Objective-C with j2objc",
		Long: `Prepares and runs j2objc as a build step.

It unpacks the j2objc distribution and, optionally, the sources of the
project's dependencies, collects every .java file, writes the package prefix
file and invokes j2objc with a deterministic command line.

Usage modes:
  j2objcrun .                    Translate the project in the current directory
  j2objcrun /path/to/project     Translate a specific project
  j2objcrun translate --dry-run  Print the j2objc command line without running it`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, args []string) error {
			if len(args) == 0 {
				return command.Help()
			}
			return translateController.Execute(command, args)
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect in the project directory)")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Show the j2objc command line without running it")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	translateController.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.MaximumNArgs(1),
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if tc, ok := ctrl.(*controllers.TranslateController); ok {
			tc.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	container := newContainer()
	cobraRoot := buildRootCommand(injectTranslateController(container))

	// Add all subcommands
	addSubcommands(cobraRoot, injectAppContext(container))

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'j2objcrun': %s", err)
	}
}
