package statsring

import (
	"slices"
)

// Widget is the contract between a View and its host: the host reports size
// changes and asks for frames.
type Widget interface {
	Resize(width, height int)
	Draw(s Surface)
}

// View is the stats ring widget.
//
// A View is owned by a single goroutine: the one delivering scheduler
// callbacks and calling Resize, SetSeries and Draw.
type View struct {
	renderer Renderer
	driver   *Driver
	series   []float64

	width, height int
}

// Ensure View implements Widget.
var _ Widget = (*View)(nil)

// New creates a View. Without WithScheduler the view uses a
// ManualScheduler, reachable through Scheduler.
func New(opts ...Option) *View {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var palette Palette
	for i := range palette {
		if o.colors[i] != nil {
			palette[i] = *o.colors[i]
		} else {
			palette[i] = RandomColor(o.rng)
		}
	}

	scheduler := o.scheduler
	if scheduler == nil {
		scheduler = NewManualScheduler()
	}

	return &View{
		renderer: Renderer{
			LineWidth: o.lineWidth,
			TextSize:  o.textSize,
			TextColor: o.textColor,
			Palette:   palette,
			Type:      o.animationType,
			Rand:      o.rng,
		},
		driver: NewDriver(scheduler, o.duration, o.invalidate),
	}
}

// Resize recomputes the ring geometry for the new pixel size.
func (v *View) Resize(width, height int) {
	v.width, v.height = width, height
	v.renderer.Geometry = NewGeometry(width, height, v.renderer.LineWidth)
}

// SetSeries replaces the series with a copy of values and restarts the
// animation from progress 0, canceling the run in flight. This happens even
// when values equals the current series or is empty.
func (v *View) SetSeries(values []float64) {
	v.series = slices.Clone(values)
	v.driver.Restart()
}

// Draw renders the current frame onto s.
func (v *View) Draw(s Surface) {
	v.renderer.Render(s, v.series, v.driver.Progress())
}

// Series returns a copy of the current series.
func (v *View) Series() []float64 { return slices.Clone(v.series) }

// Progress returns the animation progress in [0, 1].
func (v *View) Progress() float64 { return v.driver.Progress() }

// State returns the animation state.
func (v *View) State() State { return v.driver.State() }

// Geometry returns the geometry computed by the last Resize.
func (v *View) Geometry() Geometry { return v.renderer.Geometry }

// Size returns the size reported by the last Resize.
func (v *View) Size() (width, height int) { return v.width, v.height }

// Palette returns the configured palette.
func (v *View) Palette() Palette { return v.renderer.Palette }

// AnimationType returns the configured reveal style.
func (v *View) AnimationType() AnimationType { return v.renderer.Type }

// Scheduler returns the scheduler driving the animation.
func (v *View) Scheduler() Scheduler { return v.driver.scheduler }

// Segments lays out the current series with the view's palette.
func (v *View) Segments() ([]Segment, error) {
	return Layout(v.series, v.renderer.Palette, v.renderer.Rand)
}
