package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/statsring"
	"github.com/gogpu/statsring/internal/config"
	"github.com/gogpu/statsring/internal/export"
	"github.com/gogpu/statsring/surface"
	"github.com/gogpu/statsring/surface/raster"
)

func newAnimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "animate [values...]",
		Short: "Render the whole animation",
		Long: `Animate plays the reveal animation at --fps frames per second. A .gif
output becomes one animated GIF; any other output becomes numbered files
(ring.png -> ring-0000.png, ring-0001.png, ...).`,
		Example: `  statsring animate 3 1 4 1 5 --animation rotation -o ring.gif
  statsring animate --file values.yaml --fps 60 -o frames/ring-%03d.svg`,
		RunE: runAnimate,
	}
	addChartFlags(cmd)
	addValueFlags(cmd)
	cmd.Flags().Int("fps", 0, "frames per second")
	return cmd
}

func runAnimate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	values, err := readValues(cmd, args)
	if err != nil {
		return err
	}

	sched := statsring.NewManualScheduler()
	v, err := newView(cfg, sched)
	if err != nil {
		return err
	}
	v.SetSeries(values)

	path := outputPath(cmd, "statsring.gif")
	if strings.EqualFold(filepath.Ext(path), ".gif") {
		return animateGIF(cfg, v, sched, path)
	}
	return animateSequence(cfg, v, sched, path)
}

func animateGIF(cfg *config.Config, v *statsring.View, sched *statsring.ManualScheduler, path string) error {
	t, err := surface.New(raster.FormatName, surfaceOptions(cfg))
	if err != nil {
		return err
	}
	defer t.Close()
	snap, ok := t.(surface.Snapshotter)
	if !ok {
		return fmt.Errorf("format %s cannot produce pixels", raster.FormatName)
	}

	anim := export.NewGIF(cfg.Output.FPS)
	err = export.Run(v, sched, cfg.Output.FPS, func(export.Frame) error {
		t.Clear()
		v.Draw(t)
		anim.Add(snap.Snapshot())
		return nil
	})
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := anim.Encode(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	statsring.Logger().Info("animation written", "path", path, "frames", anim.Len())
	return nil
}

func animateSequence(cfg *config.Config, v *statsring.View, sched *statsring.ManualScheduler, path string) error {
	t, err := newTarget(cfg, path)
	if err != nil {
		return err
	}
	defer t.Close()

	seq := export.Sequence{Pattern: path}
	frames := 0
	err = export.Run(v, sched, cfg.Output.FPS, func(fr export.Frame) error {
		t.Clear()
		v.Draw(t)
		frames++
		return seq.Write(fr.Index, t)
	})
	if err != nil {
		return err
	}
	statsring.Logger().Info("frames written", "pattern", path, "frames", frames)
	return nil
}
