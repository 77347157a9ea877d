package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/antborder/config"
	"github.com/lixenwraith/antborder/constants"
	"github.com/lixenwraith/antborder/frame"
	"github.com/lixenwraith/antborder/raster"
	"github.com/lixenwraith/antborder/render"
	"github.com/lixenwraith/antborder/widget"
)

type snapshotOptions struct {
	frames int
	outDir string
	format string
	dryRun bool

	// start is the clock reading of frame 0; file times follow it in frame steps
	start time.Time
}

func newSnapshotCommand(flags *cliFlags) *cobra.Command {
	so := &snapshotOptions{}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render animation frames to image files",
		Long: `Render consecutive animation frames of the border to image files.
One dash cycle is solid+gap frames; files are named frame-000.<format>, frame-001.<format>, ...
Each file's modification time is its frame time, one frame interval apart.
With --dry-run nothing is written; per-frame drawing statistics are printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.loadOptions(config.Default())
			if err != nil {
				return err
			}
			so.start = time.Now().Truncate(time.Second)
			if so.dryRun {
				return reportFrames(cmd.OutOrStdout(), opts, *so)
			}
			paths, err := renderSnapshots(opts, *so)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s\n", len(paths), so.outDir)
			return nil
		},
	}

	cmd.Flags().IntVarP(&so.frames, "frames", "n", 0, "Number of frames (default one dash cycle)")
	cmd.Flags().StringVarP(&so.outDir, "out", "o", "frames", "Output directory")
	cmd.Flags().StringVarP(&so.format, "format", "f", "png", "Image format: png, bmp, tiff")
	cmd.Flags().BoolVar(&so.dryRun, "dry-run", false, "Print per-frame drawing statistics without writing files")
	return cmd
}

func (so snapshotOptions) frameCount(opts config.Options) int {
	if so.frames > 0 {
		return so.frames
	}
	solid, gap := opts.Dash()
	if n := int(solid + gap); n > 0 {
		return n
	}
	return 1
}

// driveFrames mounts a widget on surface and steps its loop with a frame clock
// visit runs after each frame is drawn, with the frame index and time
func driveFrames(opts config.Options, surface render.Surface, n int, start time.Time, visit func(i int, at time.Time) error) error {
	clock := frame.NewStepClock(start, constants.FrameUpdateInterval)
	loop := frame.NewLoop(clock)
	instance := widget.Create(opts, surface, loop, log.Default())
	instance.Mount(detached{})
	defer instance.Destroy()

	// Create draws frame 0; every RunFrame draws the next
	for i := 0; i < n; i++ {
		if i > 0 {
			clock.Step()
			loop.RunFrame()
		}
		if err := visit(i, clock.Now()); err != nil {
			return err
		}
	}
	return nil
}

// renderSnapshots draws frames on a raster canvas
// Returns the written file paths in frame order
func renderSnapshots(opts config.Options, so snapshotOptions) ([]string, error) {
	format, err := raster.ParseFormat(so.format)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(so.outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	frames := so.frameCount(opts)
	w, h := render.Size(opts.Rect())
	canvas := raster.NewCanvas(w, h)

	paths := make([]string, 0, frames)
	err = driveFrames(opts, canvas, frames, so.start, func(i int, at time.Time) error {
		path := filepath.Join(so.outDir, fmt.Sprintf("frame-%03d.%s", i, format))
		if err := writeImage(path, canvas, format); err != nil {
			return err
		}
		if err := os.Chtimes(path, at, at); err != nil {
			return fmt.Errorf("stamp %s: %w", path, err)
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return paths, err
	}
	log.Printf("[SNAPSHOT] %d frames, %dx%d, %s", frames, w, h, format)
	return paths, nil
}

// frameStats summarizes the surface calls of one frame
type frameStats struct {
	offset time.Duration
	lines  int
	arcs   int
	ink    float64
}

// reportFrames records frames without rasterizing and prints one line per frame
func reportFrames(out io.Writer, opts config.Options, so snapshotOptions) error {
	stats, err := recordFrames(opts, so)
	if err != nil {
		return err
	}
	for i, st := range stats {
		fmt.Fprintf(out, "frame-%03d +%dms lines=%d arcs=%d ink=%.0f\n",
			i, st.offset.Milliseconds(), st.lines, st.arcs, st.ink)
	}
	return nil
}

func recordFrames(opts config.Options, so snapshotOptions) ([]frameStats, error) {
	n := so.frameCount(opts)
	rec := render.NewRecorder()
	stats := make([]frameStats, 0, n)

	err := driveFrames(opts, rec, n, so.start, func(i int, at time.Time) error {
		st := frameStats{
			offset: at.Sub(so.start),
			lines:  rec.Count(render.OpLine),
			arcs:   rec.Count(render.OpArc),
		}
		for _, op := range rec.Filter(render.OpLine) {
			st.ink += render.Segment{From: op.From, To: op.To}.Length()
		}
		stats = append(stats, st)
		rec.Reset()
		return nil
	})
	return stats, err
}

func writeImage(path string, canvas *raster.Canvas, format raster.Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := raster.Encode(f, canvas.Image(), format); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// detached is the container for offscreen rendering
type detached struct{}

func (detached) AppendChild(render.Surface) {}

func (detached) RemoveChild(render.Surface) {}
