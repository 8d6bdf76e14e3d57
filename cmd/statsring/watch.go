package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/statsring"
	"github.com/gogpu/statsring/internal/export"
	"github.com/gogpu/statsring/internal/series"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Animate live while a values file changes",
		Long: `Watch reads FILE, animates the chart in real time and rewrites the output
file on every frame. Saving FILE replaces the series and restarts the
animation from zero. Stop with Ctrl-C.`,
		Example: `  statsring watch values.yaml -o live.png --fps 15`,
		Args:    cobra.ExactArgs(1),
		RunE:    runWatch,
	}
	addChartFlags(cmd)
	cmd.Flags().Int("fps", 0, "frames per second")
	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	out := outputPath(cmd, "statsring.png")
	t, err := newTarget(cfg, out)
	if err != nil {
		return err
	}
	defer t.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := statsring.Logger()
	loop := statsring.NewLoop(64)
	sched := statsring.NewTickerScheduler(loop, export.Interval(cfg.Output.FPS))

	// Everything below touching v runs on the loop goroutine.
	var v *statsring.View
	redraw := func() {
		t.Clear()
		v.Draw(t)
		if err := writeTarget(t, out); err != nil {
			log.Warn("frame not written", "path", out, "error", err)
		}
	}
	v, err = newView(cfg, sched, statsring.WithInvalidator(redraw))
	if err != nil {
		return err
	}

	w := &series.Watcher{Path: args[0], Logger: log}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(ctx)
	})
	g.Go(func() error {
		return w.Watch(ctx, func(values []float64) {
			err := loop.Post(func() {
				log.Info("series replaced", "values", len(values))
				v.SetSeries(values)
			})
			if err != nil {
				log.Debug("series dropped", "error", err)
			}
		})
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
