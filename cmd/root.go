// Package cmd provides the root command and CLI setup for suppressor.
package cmd

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/suppressor/internal/adapter"
	"github.com/mouse-blink/suppressor/internal/controller"
	"github.com/mouse-blink/suppressor/internal/domain"
	m "github.com/mouse-blink/suppressor/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var lineScanner adapter.LineScanner
var manifestStore adapter.ManifestStore
var configAdapter adapter.ConfigAdapter
var newUI func(cmd *cobra.Command) controller.UI

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	lineScanner = adapter.NewLocalLineScanner()
	manifestStore = adapter.NewManifestStore()
	configAdapter = adapter.NewLocalConfigAdapter()
	newUI = func(cmd *cobra.Command) controller.UI {
		return controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
	}
}

var configFlag string
var optionFlags map[string]string
var sourceDirFlag string
var classesFlag string
var parallelFlag int
var verboseFlag bool

var errMissingClasses = errors.New("--classes is required")

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suppressor",
		Short: "Suppress mutations marked by source comments",
		Long: `Suppressor reads // @suppressMutation(<selector>) comments from source files
and drops the mutation candidates they target.

A comment suppresses mutations on the line directly below it. The selector is
either ALL or a suffix of the mutator's fully qualified name:

  // @suppressMutation(ALL)
  // @suppressMutation(ConditionalsBoundaryMutator)`,
		Version:       domain.FilterDescription,
		SilenceUsage:  true,
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFlag, "config", "", "YAML or JSON file with filter options")
	flags.StringToStringVarP(&optionFlags, "option", "o", nil, "filter option as key=value (overrides --config, can be repeated)")
	flags.StringVar(&sourceDirFlag, "source-dir", "", "root directory of the source tree")
	flags.StringVarP(&classesFlag, "classes", "c", "", "class manifest (YAML or JSON)")
	flags.IntVarP(&parallelFlag, "parallel", "p", 1, "number of source files scanned concurrently")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newLogger(cmd *cobra.Command) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())

	if verboseFlag {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}

// loadOptions layers the config file, --source-dir and --option flags, later
// sources winning.
func loadOptions() (m.Options, error) {
	base, err := configAdapter.LoadOptions(m.Path(configFlag))
	if err != nil {
		return nil, err
	}

	overrides := make(map[string]string, len(optionFlags)+1)
	if sourceDirFlag != "" {
		overrides[m.OptionSourceDirectory] = sourceDirFlag
	}

	for k, v := range optionFlags {
		overrides[k] = v
	}

	return adapter.MergeOptions(base, overrides), nil
}

func loadCode() (m.ClassList, error) {
	if classesFlag == "" {
		return nil, errMissingClasses
	}

	classes, err := manifestStore.LoadClasses(m.Path(classesFlag))
	if err != nil {
		return nil, err
	}

	code := make(m.ClassList, 0, len(classes))
	for _, class := range classes {
		code = append(code, class)
	}

	return code, nil
}

// buildFilter compiles the suppression index for the classes manifest.
// Suppression diagnostics go to the command's stdout.
func buildFilter(cmd *cobra.Command) (*domain.MutationFilter, error) {
	code, err := loadCode()
	if err != nil {
		return nil, err
	}

	options, err := loadOptions()
	if err != nil {
		return nil, err
	}

	factory := domain.NewFactory(
		fsAdapter,
		lineScanner,
		adapter.NewWriterSink(cmd.OutOrStdout()),
		newLogger(cmd),
		domain.WithParallelism(parallelFlag),
	)

	return factory.CreateFilter(cmd.Context(), options, code, 0)
}
