package main

import (
	"bytes"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/antborder/config"
	"github.com/lixenwraith/antborder/constants"
	"github.com/lixenwraith/antborder/raster"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "antborder "+Version+"\n", out)
}

func TestConfigDump(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"toml defaults", []string{"config", "dump"}, []string{"width = 320", "height = 200", "draggable = true"}},
		{"yaml defaults", []string{"config", "dump", "-f", "yaml"}, []string{"width: 320", "fixed_ratio: false"}},
		{"terminal defaults", []string{"config", "dump", "--terminal"}, []string{"width = 40", "height = 12"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestConfigDumpRoundTrip(t *testing.T) {
	out, err := execute(t, "config", "dump", "-f", "yaml")
	require.NoError(t, err)

	opts, err := config.Decode([]byte(out), config.FormatYAML, config.Options{})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), opts)
}

func TestConfigDumpOverlay(t *testing.T) {
	path := writeFile(t, "opts.toml", "fixed_ratio = true\nwidth = 120.0\n")

	out, err := execute(t, "--config", path, "config", "dump")
	require.NoError(t, err)
	assert.Contains(t, out, "fixed_ratio = true")
	assert.Contains(t, out, "width = 120")
	assert.Contains(t, out, "height = 200")
}

func TestConfigDumpUnknownFormat(t *testing.T) {
	_, err := execute(t, "config", "dump", "-f", "json")
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)
}

func TestConfigCheck(t *testing.T) {
	valid := writeFile(t, "valid.yaml", "width: 100\nheight: 50\n")
	invalid := writeFile(t, "invalid.toml", "width = -5.0\n")
	partial := writeFile(t, "partial.toml", "[markers.nw]\nr = 6.0\n")

	out, err := execute(t, "config", "check", valid)
	require.NoError(t, err)
	assert.Contains(t, out, valid+": ok")

	out, err = execute(t, "config", "check", valid, invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files invalid")
	assert.Contains(t, out, invalid+": ")

	out, err = execute(t, "config", "check", partial)
	require.NoError(t, err)
	assert.Contains(t, out, "incomplete")
}

func TestSnapshotCommand(t *testing.T) {
	path := writeFile(t, "small.toml", "width = 40.0\nheight = 20.0\ndasharray = [3.0, 2.0]\n")
	dir := filepath.Join(t.TempDir(), "out")

	out, err := execute(t, "--config", path, "snapshot", "-o", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 5 frames")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 5)

	first := decodeFrame(t, filepath.Join(dir, "frame-000.png"))
	second := decodeFrame(t, filepath.Join(dir, "frame-001.png"))
	assert.Equal(t, 40, first.Bounds().Dx())
	assert.Equal(t, 20, first.Bounds().Dy())
	assert.NotEqual(t, first.Pix, second.Pix, "consecutive frames are identical")
}

func TestSnapshotFormats(t *testing.T) {
	for _, format := range []string{"bmp", "tiff"} {
		t.Run(format, func(t *testing.T) {
			dir := t.TempDir()
			paths, err := renderSnapshots(config.Default(), snapshotOptions{frames: 2, outDir: dir, format: format})
			require.NoError(t, err)
			require.Len(t, paths, 2)
			assert.Equal(t, filepath.Join(dir, "frame-001."+format), paths[1])
		})
	}

	_, err := renderSnapshots(config.Default(), snapshotOptions{frames: 1, outDir: t.TempDir(), format: "gif"})
	assert.ErrorIs(t, err, raster.ErrUnknownFormat)
}

func TestSnapshotFrameTimes(t *testing.T) {
	dir := t.TempDir()
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	paths, err := renderSnapshots(config.Default(), snapshotOptions{frames: 4, outDir: dir, format: "png", start: start})
	require.NoError(t, err)
	require.Len(t, paths, 4)

	for i, path := range paths {
		info, err := os.Stat(path)
		require.NoError(t, err)
		want := start.Add(time.Duration(i) * constants.FrameUpdateInterval)
		assert.WithinDuration(t, want, info.ModTime(), time.Millisecond, "frame %d", i)
	}
}

func TestSnapshotDryRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "never")

	out, err := execute(t, "snapshot", "--dry-run", "-n", "3", "-o", dir)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "frame-000 +0ms "), lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "frame-002 +32ms "), lines[2])
	for _, l := range lines {
		assert.Contains(t, l, "arcs=8")
	}

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "dry run created the output directory")
}

func TestRecordFrames(t *testing.T) {
	opts := config.Default()
	stats, err := recordFrames(opts, snapshotOptions{frames: 2})
	require.NoError(t, err)
	require.Len(t, stats, 2)

	for i, st := range stats {
		assert.Positive(t, st.lines, "frame %d lines", i)
		assert.Equal(t, 8, st.arcs, "frame %d arcs", i)
		// Dashes cover solid/(solid+gap) of the perimeter, give or take the corner cuts
		assert.InDelta(t, 2*(310+190)*20.0/26, st.ink, 40, "frame %d ink", i)
	}
	assert.Equal(t, constants.FrameUpdateInterval, stats[1].offset)

	opts.FixedRatio = true
	stats, err = recordFrames(opts, snapshotOptions{frames: 1})
	require.NoError(t, err)
	assert.Equal(t, 4, stats[0].arcs)
}

func decodeFrame(t *testing.T, path string) *image.RGBA {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := raster.Decode(f, raster.FormatPNG)
	require.NoError(t, err)

	b := img.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, img, b.Min, draw.Src)
	return dst
}
