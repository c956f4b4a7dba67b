package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sl-calculator/internal/store"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Generate or validate configuration files",
		Long: `Manage the charge schedule configuration.

Subcommands:
  init     - Write the default configuration
  validate - Check an existing configuration file`,
	}

	var output string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.Default().SaveToFile(output); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Created default configuration: %s\n", output)
			return nil
		},
	}
	initCmd.Flags().StringVarP(&output, "output", "o", "config.yaml", "output config file path")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file given by --config",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			r := cfg.Rates()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Configuration valid: %s\n", configPath)
			fmt.Fprintf(out, "  Brokerage: min(₹%g, %g%% of turnover)\n", r.BrokerageCap, r.BrokerageRate*100)
			fmt.Fprintf(out, "  Levy mode: %s\n", r.LevyMode)
			fmt.Fprintf(out, "  Server:    %s (%s)\n", cfg.Server.Addr, cfg.Server.Mode)
			return nil
		},
	}

	cmd.AddCommand(initCmd, validateCmd)
	return cmd
}
