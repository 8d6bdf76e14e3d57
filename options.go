package statsring

import (
	"math/rand/v2"
	"time"
)

// Default sizes in pixels.
const (
	DefaultTextSize  = 20.0
	DefaultLineWidth = 5.0
)

// Option configures a View during creation.
//
// Example:
//
//	v := statsring.New(
//	    statsring.WithLineWidth(12),
//	    statsring.WithAnimationType(statsring.Bidirectional),
//	    statsring.WithScheduler(sched),
//	)
type Option func(*options)

// options holds optional configuration for View creation.
type options struct {
	textSize      float64
	lineWidth     float64
	textColor     Color
	colors        [PaletteSize]*Color
	animationType AnimationType
	duration      time.Duration
	scheduler     Scheduler
	invalidate    func()
	rng           *rand.Rand
}

// defaultOptions returns the default view options.
func defaultOptions() options {
	return options{
		textSize:      DefaultTextSize,
		lineWidth:     DefaultLineWidth,
		textColor:     Black,
		animationType: DefaultAnimationType,
		duration:      DefaultDuration,
		scheduler:     nil, // NewManualScheduler if nil
	}
}

// WithTextSize sets the label font size in pixels.
func WithTextSize(size float64) Option {
	return func(o *options) {
		o.textSize = size
	}
}

// WithLineWidth sets the ring stroke width in pixels.
func WithLineWidth(width float64) Option {
	return func(o *options) {
		o.lineWidth = width
	}
}

// WithTextColor sets the label color. The default is black.
func WithTextColor(c Color) Option {
	return func(o *options) {
		o.textColor = c
	}
}

// WithColor sets palette entry i (0 to PaletteSize-1). Out of range indices
// are ignored. Unset entries get a random opaque color.
func WithColor(i int, c Color) Option {
	return func(o *options) {
		if i >= 0 && i < PaletteSize {
			o.colors[i] = &c
		}
	}
}

// WithColors sets palette entries in order, starting at index 0. Colors past
// PaletteSize are ignored.
func WithColors(colors ...Color) Option {
	return func(o *options) {
		for i, c := range colors {
			if i >= PaletteSize {
				break
			}
			o.colors[i] = &c
		}
	}
}

// WithAnimationType selects the reveal style. Invalid values fall back to
// DefaultAnimationType.
func WithAnimationType(t AnimationType) Option {
	return func(o *options) {
		if t.Valid() {
			o.animationType = t
		}
	}
}

// WithDuration sets the length of one reveal animation.
func WithDuration(d time.Duration) Option {
	return func(o *options) {
		o.duration = d
	}
}

// WithScheduler injects the tick source driving the animation.
//
// Example:
//
//	loop := statsring.NewLoop(64)
//	v := statsring.New(statsring.WithScheduler(statsring.NewTickerScheduler(loop, 0)))
func WithScheduler(s Scheduler) Option {
	return func(o *options) {
		o.scheduler = s
	}
}

// WithInvalidator sets the function called once per animation tick to
// request a redraw from the host.
func WithInvalidator(fn func()) Option {
	return func(o *options) {
		o.invalidate = fn
	}
}

// WithRand sets the random source used for unset palette entries and for
// segments past the palette.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}
