package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/zooskeys/internal/config"
)

var forceInit bool

// configCmd groups settings file commands. It does not load the settings
// file itself, so a broken file can still be inspected and replaced.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the settings file",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(nil)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := settingsPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with default values",
	Example: `  # Create the default settings file
  zooskeys config init

  # Replace an existing file
  zooskeys config init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := settingsPath()
		if err != nil {
			return err
		}
		if err := writeDefaultSettings(path, forceInit); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(configPath)
		if err != nil {
			return err
		}
		data, err := s.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(configPathCmd, configInitCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func settingsPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

func writeDefaultSettings(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	return config.NewSettings().SaveTo(path)
}
