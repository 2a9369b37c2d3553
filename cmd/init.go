package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default unprint.yaml configuration file",
		Long: `Write an unprint.yaml into the current working directory, populated with
the CLI defaults, as a starting point for manual editing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			if err := viper.SafeWriteConfigAs(targetPath); err != nil {
				var exists viper.ConfigFileAlreadyExistsError
				if errors.As(err, &exists) || errors.Is(err, os.ErrExist) {
					return fmt.Errorf("failed to write config file: %s already exists", targetPath)
				}

				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Printf("wrote %s\n", targetPath)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
