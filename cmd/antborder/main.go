// Command antborder runs the marching-ants selection widget in the terminal and renders
// animation snapshots to image files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/antborder/config"
)

// Version is the antborder release
const Version = "0.3.0"

// cliFlags are the persistent flags shared by every subcommand
type cliFlags struct {
	debug      bool
	configPath string

	logFile *os.File
}

func newRootCommand() *cobra.Command {
	flags := &cliFlags{}

	cmd := &cobra.Command{
		Use:   "antborder",
		Short: "Marching-ants selection border with drag and resize",
		Long: `antborder draws an animated dashed border with eight resize markers.
The rectangle can be dragged by its edges and resized by its markers, optionally
keeping its aspect ratio. Run it in the terminal or render frames to image files.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			flags.logFile = setupLogging(flags.debug)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if flags.logFile != nil {
				flags.logFile.Close()
				flags.logFile = nil
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Write debug logs to "+logDir+"/"+logFileName)
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Options file (.toml, .yaml)")

	cmd.AddCommand(newRunCommand(flags))
	cmd.AddCommand(newSnapshotCommand(flags))
	cmd.AddCommand(newConfigCommand(flags))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// loadOptions returns base overlaid with the --config file when one is given
func (f *cliFlags) loadOptions(base config.Options) (config.Options, error) {
	if f.configPath == "" {
		return base, nil
	}
	return config.Load(f.configPath, base)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "antborder %s\n", Version)
		},
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "antborder: %v\n", err)
		os.Exit(1)
	}
}
