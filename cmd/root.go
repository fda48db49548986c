// Package cmd provides the root command and CLI setup for repattern.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"repattern.dev/pkg/repattern/internal/adapter"
	"repattern.dev/pkg/repattern/internal/controller"
	"repattern.dev/pkg/repattern/internal/domain"
	m "repattern.dev/pkg/repattern/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var scriptAdapter adapter.EditScriptAdapter
var reportStore adapter.ReportStore
var metrics *domain.Metrics
var orchestrator domain.Orchestrator
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// excludePatterns is a root-level flag that filters change-set files for detect.
var excludePatterns []string

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies. The orchestrator and workflow are built on
	// first use so detection flags are parsed by then.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	scriptAdapter = adapter.NewLocalEditScriptAdapter(fsAdapter)
	reportStore = adapter.NewLocalReportStore()
	metrics = domain.NewMetrics()
}

// currentWorkflow returns the shared workflow, building it on first use.
func currentWorkflow() domain.Workflow {
	if workflow == nil {
		workflow = newWorkflow()
	}

	return workflow
}

func newWorkflow() domain.Workflow {
	options := []domain.OrchestratorOption{domain.WithMetrics(metrics)}
	if viper.GetBool(parallelDetectorsConfigKey) {
		options = append(options, domain.WithParallelDetectors())
	}

	orchestrator = domain.NewOrchestrator(options...)

	return domain.NewWorkflow(
		fsAdapter,
		scriptAdapter,
		reportStore,
		ui,
		orchestrator,
		metrics,
	)
}

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...            recursively scan current directory
  - ./fixes/...      recursively scan fixes directory
  - ./a.json ./b     scan individual files and directories

Change-sets are edit scripts stored as .json, .yaml/.yml or .msgpack files.`

const rootLongDescription = `Repattern finds repair patterns in bug-fix change-sets. It reads the
tree-edit script between the buggy and the fixed version of a file and
reports which repair patterns (constant changes, added null checks,
wrapped statements, ...) the fix applies.

` + pathPatternsHelp

const detectLongDescription = `Detect repair patterns in the change-sets under the given paths
(default: current directory).

` + pathPatternsHelp

const listLongDescription = `List pattern families and the repair patterns each one reports.

With no arguments every family is listed; otherwise only the named ones.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

// newRootCmd returns a fresh root command with its persistent flags.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "repattern",
		Short:        "Repair-pattern detection for bug-fix edit scripts",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configureLogger(logFileFlag, verboseFlag)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for repair-pattern reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude change-set files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
