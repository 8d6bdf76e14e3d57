// Package config handles configuration loading for the statsring command.
// It supports YAML config files with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gogpu/statsring"
	"github.com/gogpu/statsring/internal/export"
)

// EnvPrefix prefixes environment overrides, e.g. STATSRING_CHART_WIDTH.
const EnvPrefix = "STATSRING"

// Config represents the complete command configuration.
type Config struct {
	Chart   ChartConfig   `mapstructure:"chart"   yaml:"chart"`
	Output  OutputConfig  `mapstructure:"output"  yaml:"output"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ChartConfig holds the widget construction options.
type ChartConfig struct {
	Width      int      `mapstructure:"width"       yaml:"width"`
	Height     int      `mapstructure:"height"      yaml:"height"`
	TextSize   float64  `mapstructure:"text_size"   yaml:"text_size"`
	LineWidth  float64  `mapstructure:"line_width"  yaml:"line_width"`
	Colors     []string `mapstructure:"colors"      yaml:"colors"`      // "#RRGGBB" or "#AARRGGBB", up to four
	Animation  string   `mapstructure:"animation"   yaml:"animation"`   // "rotation", "sequential", "bidirectional"
	DurationMS int      `mapstructure:"duration_ms" yaml:"duration_ms"`
	Background string   `mapstructure:"background"  yaml:"background"`
	Seed       uint64   `mapstructure:"seed"        yaml:"seed"` // 0 = nondeterministic colors
}

// OutputConfig holds frame export settings.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"` // "png", "svg"; empty = from file extension
	FPS    int    `mapstructure:"fps"    yaml:"fps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"width":      "chart.width",
	"height":     "chart.height",
	"text-size":  "chart.text_size",
	"line-width": "chart.line_width",
	"colors":     "chart.colors",
	"animation":  "chart.animation",
	"duration":   "chart.duration_ms",
	"background": "chart.background",
	"seed":       "chart.seed",
	"format":     "output.format",
	"fps":        "output.fps",
	"log-level":  "logging.level",
	"log-format": "logging.format",
}

// Load reads configuration from path (optional), environment variables and
// the flags of fs that were set. An empty path reads ./statsring.yaml when
// present. Precedence: flag, env, file, default.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("error binding flag %s: %w", name, err)
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("statsring")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file: defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults sets defaults for all config values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("chart.width", 400)
	v.SetDefault("chart.height", 400)
	v.SetDefault("chart.text_size", statsring.DefaultTextSize)
	v.SetDefault("chart.line_width", statsring.DefaultLineWidth)
	v.SetDefault("chart.colors", []string{})
	v.SetDefault("chart.animation", statsring.DefaultAnimationType.String())
	v.SetDefault("chart.duration_ms", statsring.DefaultDuration.Milliseconds())
	v.SetDefault("chart.background", "#FFFFFFFF")
	v.SetDefault("chart.seed", 0)

	v.SetDefault("output.format", "")
	v.SetDefault("output.fps", 30)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")
}

// Validate checks value ranges and enum fields.
func (c *Config) Validate() error {
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("config: chart size %dx%d must be positive", c.Chart.Width, c.Chart.Height)
	}
	if len(c.Chart.Colors) > statsring.PaletteSize {
		return fmt.Errorf("config: at most %d colors, got %d", statsring.PaletteSize, len(c.Chart.Colors))
	}
	if _, err := c.Chart.Palette(); err != nil {
		return err
	}
	if _, err := statsring.ParseAnimationType(c.Chart.Animation); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := statsring.ParseColor(c.Chart.Background); err != nil {
		return fmt.Errorf("config: background: %w", err)
	}
	if c.Chart.DurationMS < 0 {
		return fmt.Errorf("config: negative duration %dms", c.Chart.DurationMS)
	}
	if !export.ValidFPS(c.Output.FPS) {
		return fmt.Errorf("config: fps %d: %w", c.Output.FPS, export.ErrInvalidFPS)
	}
	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Logging.Format)
	}
	return nil
}

// Palette parses the configured colors.
func (c ChartConfig) Palette() ([]statsring.Color, error) {
	colors := make([]statsring.Color, 0, len(c.Colors))
	for i, s := range c.Colors {
		col, err := statsring.ParseColor(s)
		if err != nil {
			return nil, fmt.Errorf("config: color%d: %w", i+1, err)
		}
		colors = append(colors, col)
	}
	return colors, nil
}

// Duration returns the configured animation length.
func (c ChartConfig) Duration() time.Duration {
	return time.Duration(c.DurationMS) * time.Millisecond
}

// SlogLevel maps the configured level name to a slog.Level.
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("config: log level: %w", err)
	}
	return level, nil
}

// ViewOptions converts the chart section into statsring options.
// The scheduler and invalidator are left to the caller.
func (c ChartConfig) ViewOptions() ([]statsring.Option, error) {
	colors, err := c.Palette()
	if err != nil {
		return nil, err
	}
	animation, err := statsring.ParseAnimationType(c.Animation)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	opts := []statsring.Option{
		statsring.WithTextSize(c.TextSize),
		statsring.WithLineWidth(c.LineWidth),
		statsring.WithColors(colors...),
		statsring.WithAnimationType(animation),
		statsring.WithDuration(c.Duration()),
	}
	if c.Seed != 0 {
		opts = append(opts, statsring.WithRand(rand.New(rand.NewPCG(c.Seed, c.Seed))))
	}
	return opts, nil
}

// BackgroundColor parses the configured background.
func (c ChartConfig) BackgroundColor() (statsring.Color, error) {
	return statsring.ParseColor(c.Background)
}
