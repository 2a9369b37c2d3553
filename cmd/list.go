package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"unprint.dev/pkg/unprint/internal/domain"
	m "unprint.dev/pkg/unprint/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list FILENAME...",
		Short: "List print statements without rewriting",
		Long:  listLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureLogger("", viper.GetBool(logVerboseKey))

			report, err := workflow.Check(cmd.Context(), domain.CheckArgs{
				Paths:  parsePaths(args),
				Ignore: parsePaths(viper.GetStringSlice(ignoreConfigKey)),
				Mode: m.Mode{
					DryRun:  true,
					Verbose: true,
					Diff:    viper.GetBool(diffFlagName),
				},
				Threads: viper.GetInt(checkParallelConfigKey),
			})
			if err != nil {
				return err
			}

			// Listing is informational: only failures change the exit code.
			if report.FailureCount > 0 {
				exitCode = m.ExitFailure
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
