package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/antborder/audio"
	"github.com/lixenwraith/antborder/config"
	"github.com/lixenwraith/antborder/core"
	"github.com/lixenwraith/antborder/terminal"
)

func newRunCommand(flags *cliFlags) *cobra.Command {
	var noAudio bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the widget in the terminal",
		Long: `Run the widget full screen. Drag an edge to move the rectangle, drag a marker
to resize it. Keys: q/Esc quit, r reset, space pause, arrows scroll.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.loadOptions(config.Terminal())
			if err != nil {
				return err
			}
			if noAudio {
				opts.Audio = false
			}
			return runTerminal(opts)
		},
	}

	cmd.Flags().BoolVar(&noAudio, "no-audio", false, "Disable gesture sound cues")
	return cmd
}

func runTerminal(opts config.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	var player audio.Player
	if opts.Audio {
		player, err = audio.InitSpeaker()
		if err != nil {
			// Run silent
			log.Printf("[AUDIO] %v", err)
			player = nil
		} else {
			defer audio.CloseSpeaker()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := terminal.NewApp(opts, screen, player, log.Default())
	runErr := app.Run(ctx)
	app.Close()

	core.SetCrashScreen(nil)
	screen.Fini()

	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}
