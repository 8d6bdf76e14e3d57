package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/statsring"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [values...]",
		Short: "Render one frame of the animation",
		Long: `Render draws the chart as it looks at --progress (0 to 1) of its
animation and writes a PNG or SVG file.`,
		Example: `  statsring render 500 500 500 500 --progress 0.5 -o half.png
  statsring render --file values.yaml --animation bidirectional -o ring.svg`,
		RunE: runRender,
	}
	addChartFlags(cmd)
	addValueFlags(cmd)
	cmd.Flags().Float64("progress", 1, "animation progress to render (0 to 1)")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	values, err := readValues(cmd, args)
	if err != nil {
		return err
	}
	progress, _ := cmd.Flags().GetFloat64("progress")
	if progress < 0 || progress > 1 {
		return fmt.Errorf("progress %g out of range [0, 1]", progress)
	}

	sched := statsring.NewManualScheduler()
	v, err := newView(cfg, sched)
	if err != nil {
		return err
	}
	v.SetSeries(values)
	sched.Advance(time.Duration(progress * float64(cfg.Chart.Duration())))

	rec := statsring.NewRecorder()
	v.Draw(rec)

	path := outputPath(cmd, "statsring.png")
	t, err := newTarget(cfg, path)
	if err != nil {
		return err
	}
	defer t.Close()

	rec.Replay(t)
	if err := writeTarget(t, path); err != nil {
		return err
	}
	statsring.Logger().Info("frame rendered", "path", path, "progress", v.Progress(), "commands", rec.Len())
	return nil
}
