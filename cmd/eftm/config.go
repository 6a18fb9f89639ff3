package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eftm-project/eftm/internal/config"
)

var errConfigExists = errors.New("config file already exists")

var configInitForce bool

func init() {
	cmdConfigInit.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")
	cmdConfig.AddCommand(cmdConfigInit, cmdConfigPath)
	rootCmd.AddCommand(cmdConfig)
}

var cmdConfig = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the config file",
}

var cmdConfigInit = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Long:  `Writes the defaults to --config (or ~/.eftm/config.json). A .yaml or .yml path is written as YAML.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := writeDefaultConfig(globals.configPath, configInitForce)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return err
	},
}

var cmdConfigPath = &cobra.Command{
	Use:   "path",
	Short: "Print the config file eftm reads",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath(globals.configPath)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
		return err
	},
}

func resolveConfigPath(path string) (string, error) {
	if strings.TrimSpace(path) != "" {
		return path, nil
	}
	return config.ConfigPath()
}

// writeDefaultConfig saves the default settings to path and returns where
// they went. An existing file is kept unless force is set.
func writeDefaultConfig(path string, force bool) (string, error) {
	path, err := resolveConfigPath(path)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%w: %s (use --force to overwrite)", errConfigExists, path)
	}
	if err := config.Save(path, config.Config{}); err != nil {
		return "", fmt.Errorf("save config: %w", err)
	}
	return path, nil
}
