package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/antborder/config"
)

func newConfigCommand(flags *cliFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and validate options files",
	}
	cmd.AddCommand(newConfigDumpCommand(flags))
	cmd.AddCommand(newConfigCheckCommand())
	return cmd
}

func newConfigDumpCommand(flags *cliFlags) *cobra.Command {
	var (
		format       string
		terminalBase bool
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the effective options",
		Long:  "Print the defaults, overlaid with --config when given, in TOML or YAML.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := config.ParseFormat(format)
			if err != nil {
				return err
			}
			base := config.Default()
			if terminalBase {
				base = config.Terminal()
			}
			opts, err := flags.loadOptions(base)
			if err != nil {
				return err
			}
			return config.Encode(cmd.OutOrStdout(), opts, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", "Output format: toml, yaml")
	cmd.Flags().BoolVar(&terminalBase, "terminal", false, "Start from the terminal-scaled defaults")
	return cmd
}

func newConfigCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate options files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				opts, err := config.Load(path, config.Default())
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", path, err)
					failed++
					continue
				}
				if len(opts.Markers) > 0 {
					if _, ok := opts.MarkerStyles(); !ok {
						fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (marker overrides %s incomplete, uniform style used)\n", path, opts.OverrideZones())
						continue
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files invalid", failed, len(args))
			}
			return nil
		},
	}
}
