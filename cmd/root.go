// Package cmd provides the root command and CLI setup for unprint.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"unprint.dev/pkg/unprint/internal/adapter"
	"unprint.dev/pkg/unprint/internal/controller"
	"unprint.dev/pkg/unprint/internal/domain"
	m "unprint.dev/pkg/unprint/internal/model"
)

var pythonAdapter adapter.PythonFileAdapter
var fsAdapter adapter.SourceFSAdapter
var workflow domain.Workflow
var ui controller.UI

// dryRunFlag computes and reports changes without writing any file back.
var dryRunFlag bool

// verboseFlag previews every print statement along with its location.
var verboseFlag bool

// diffFlag renders a unified diff of the changes per file.
var diffFlag bool

// ignorePaths is a root-level flag that skips the named files.
var ignorePaths []string

// parallelFlag is the number of files processed concurrently.
var parallelFlag int

// exitCode carries the aggregate report's return code out of the last run.
var exitCode int

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	pythonAdapter = adapter.NewTreeSitterPythonFileAdapter()
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	workflow = domain.NewWorkflow(pythonAdapter, fsAdapter, ui)
}

const rootLongDescription = `Unprint removes all the print statements from your Python project while
leaving every other byte of the source untouched: formatting, comments and
string literals survive exactly as written.

You can preview all the print statements along with their location by
passing both --dry-run and --verbose flags.`

const listLongDescription = `List every print statement in the given files along with its location,
without rewriting anything.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unprint [flags] FILENAME...",
		Short: "Remove print statements from Python source files",
		Long:  rootLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			configureLogger("", viper.GetBool(logVerboseKey))

			report, err := workflow.Check(cmd.Context(), domain.CheckArgs{
				Paths:  parsePaths(args),
				Ignore: parsePaths(viper.GetStringSlice(ignoreConfigKey)),
				Mode: m.Mode{
					DryRun:  viper.GetBool(dryRunFlagName),
					Verbose: viper.GetBool(verboseFlagName),
					Diff:    viper.GetBool(diffFlagName),
				},
				Threads: viper.GetInt(checkParallelConfigKey),
			})
			if err != nil {
				return err
			}

			exitCode = report.ReturnCode()

			return nil
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&dryRunFlag, dryRunFlagName, "n",
		viper.GetBool(dryRunFlagName),
		"perform a dry run without writing back the transformed file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(dryRunFlagName), dryRunFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v",
		viper.GetBool(verboseFlagName),
		"preview the print statements along with their location")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), verboseFlagName)

	cmd.PersistentFlags().BoolVar(&diffFlag, diffFlagName,
		viper.GetBool(diffFlagName),
		"show a unified diff of the changes per file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(diffFlagName), diffFlagName)

	cmd.PersistentFlags().StringArrayVar(&ignorePaths, ignoreFlagName,
		viper.GetStringSlice(ignoreConfigKey),
		"paths to ignore, add multiple as required")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(ignoreFlagName), ignoreConfigKey)

	cmd.PersistentFlags().IntVarP(&parallelFlag, parallelFlagName, "p",
		viper.GetInt(checkParallelConfigKey),
		"number of files processed concurrently")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(parallelFlagName), checkParallelConfigKey)
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
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
