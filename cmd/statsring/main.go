// Command statsring renders animated statistics ring charts to PNG, SVG and
// GIF files.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/statsring"
	"github.com/gogpu/statsring/internal/config"
	"github.com/gogpu/statsring/internal/series"
	_ "github.com/gogpu/statsring/surface/raster" // Registers "png"
	_ "github.com/gogpu/statsring/surface/svg"    // Registers "svg"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "statsring",
		Short: "Render animated statistics ring charts",
		Long: `statsring draws a ring chart whose segments sweep value/sum*360 degrees
and reveals them with a rotation, sequential or bidirectional animation.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path (default: ./statsring.yaml)")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "", "log format (text, json)")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newAnimateCmd())
	root.AddCommand(newWatchCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "statsring %s (library %s)\n", version, statsring.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit:  %s\n", commit)
		},
	}
}

// addChartFlags registers the flags shared by every drawing command.
// Their defaults live in the config package; unset flags do not override it.
func addChartFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("width", 0, "image width in pixels")
	f.Int("height", 0, "image height in pixels")
	f.Float64("text-size", 0, "label font size in pixels")
	f.Float64("line-width", 0, "ring stroke width in pixels")
	f.StringSlice("colors", nil, "up to four segment colors (#RRGGBB or #AARRGGBB)")
	f.String("animation", "", "animation type (rotation, sequential, bidirectional)")
	f.Int("duration", 0, "animation duration in milliseconds")
	f.String("background", "", "background color (#AARRGGBB, transparent = #00000000)")
	f.Uint64("seed", 0, "seed for random colors (0 = random)")
	f.StringP("output", "o", "", "output file")
	f.String("format", "", "output format (png, svg); default from the output extension")
}

// addValueFlags registers the flags selecting where values come from.
func addValueFlags(cmd *cobra.Command) {
	cmd.Flags().String("file", "", "read values from a YAML/JSON file instead of arguments")
}

// loadConfig loads the config file named by --config merged with env vars
// and the command's flags, then installs the configured logger.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	level, _ := cfg.Logging.SlogLevel()
	statsring.SetLogger(newLogger(cmd.ErrOrStderr(), cfg.Logging.Format, level))
	return cfg, nil
}

func newLogger(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// readValues returns the series from --file or from the positional args.
func readValues(cmd *cobra.Command, args []string) ([]float64, error) {
	file, _ := cmd.Flags().GetString("file")
	if file != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("values given both as arguments and with --file")
		}
		return series.ReadFile(file)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("no values: pass them as arguments or with --file")
	}
	return series.Parse(strings.Join(args, ","))
}
