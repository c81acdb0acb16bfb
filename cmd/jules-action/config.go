package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/maravedi/jules-actions/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage jules-action configuration",
	Long: `The config command provides subcommands for viewing and validating
jules-action configuration.

Configuration is read from an optional YAML file (.jules.yaml by
default) with the environment layered on top; "config show" displays the
effective result.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display effective configuration",
	Long: `Display the effective configuration after defaults, the config file,
and environment overrides are merged. Credential values are masked.

By default, output is in YAML format. Use --output-format json for JSON output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags, err := ParseGlobalFlags(cmd)
		if err != nil {
			return err
		}

		cfg, err := loadActionConfig(flags)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("output-format")
		return printConfig(cmd, redactSecrets(cfg), format)
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration",
	Long: `Validate the effective configuration for correctness.

This checks:
  - YAML syntax is valid
  - Values are within acceptable ranges
  - Field types are correct

When --config names a file explicitly, that file must exist.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags, err := ParseGlobalFlags(cmd)
		if err != nil {
			return err
		}

		loader := config.NewConfigLoader(config.NewValidator())
		if flags.ConfigFile != "" {
			if _, err := loader.Load(flags.ConfigFile); err != nil {
				return err
			}
		} else if _, err := loader.LoadWithDefaults(config.DefaultConfigPath()); err != nil {
			return err
		}

		cmd.Println("Configuration is valid")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)

	configShowCmd.Flags().String("output-format", "yaml", "Output format (yaml or json)")
}

// redactSecrets masks credential fields before display.
func redactSecrets(cfg *config.Config) *config.Config {
	clone := *cfg
	if clone.Jules.APIKey != "" {
		clone.Jules.APIKey = "[REDACTED]"
	}
	if clone.GitHub.Token != "" {
		clone.GitHub.Token = "[REDACTED]"
	}
	return &clone
}

// printConfig outputs the configuration in the specified format
func printConfig(cmd *cobra.Command, cfg *config.Config, format string) error {
	var output []byte
	var err error

	switch strings.ToLower(format) {
	case "json":
		output, err = json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config to JSON: %w", err)
		}
	case "yaml", "":
		output, err = yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config to YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format: %s (use 'yaml' or 'json')", format)
	}

	cmd.Println(string(output))
	return nil
}
