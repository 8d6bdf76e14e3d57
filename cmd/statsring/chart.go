package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/statsring"
	"github.com/gogpu/statsring/internal/config"
	"github.com/gogpu/statsring/surface"
)

// newView builds a View from the chart config on the given scheduler.
func newView(cfg *config.Config, sched statsring.Scheduler, extra ...statsring.Option) (*statsring.View, error) {
	opts, err := cfg.Chart.ViewOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, statsring.WithScheduler(sched))
	opts = append(opts, extra...)

	v := statsring.New(opts...)
	v.Resize(cfg.Chart.Width, cfg.Chart.Height)
	return v, nil
}

// newTarget creates the output surface for path, using the configured
// format or the path's extension.
func newTarget(cfg *config.Config, path string) (surface.Target, error) {
	format := cfg.Output.Format
	if format == "" {
		format = surface.FormatForPath(path)
	}
	opts := surfaceOptions(cfg)
	if format == "" {
		return surface.NewDefault(opts)
	}
	return surface.New(format, opts)
}

// writeTarget encodes t to path through a temporary file so readers never
// see a partial frame.
func writeTarget(t surface.Target, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := t.Encode(tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func surfaceOptions(cfg *config.Config) surface.Options {
	bg, _ := cfg.Chart.BackgroundColor() // validated by config.Load
	return surface.Options{Width: cfg.Chart.Width, Height: cfg.Chart.Height, Background: bg}
}

func outputPath(cmd *cobra.Command, fallback string) string {
	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		return fallback
	}
	return out
}
