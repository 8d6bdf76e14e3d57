// Package statsring renders an animated statistics ring chart.
//
// # Overview
//
// A View turns an ordered series of non-negative values into consecutive
// arcs of a ring, each sweeping value/sum*360 degrees from 12 o'clock, and
// reveals them with one of three animations. The completion percentage is
// drawn at the center.
//
// # Quick Start
//
//	sched := statsring.NewManualScheduler()
//	v := statsring.New(
//	    statsring.WithColors(statsring.Color(0xFFE53935), statsring.Color(0xFF1E88E5)),
//	    statsring.WithAnimationType(statsring.Rotation),
//	    statsring.WithScheduler(sched),
//	)
//	v.Resize(400, 400)
//	v.SetSeries([]float64{500, 500, 500, 500})
//
//	sched.Advance(1500 * time.Millisecond) // progress 0.5
//	rec := statsring.NewRecorder()
//	v.Draw(rec)
//
// # Animations
//
//   - Rotation: the ring turns once while every segment grows in place.
//   - Sequential: segments appear one after another, clockwise.
//   - Bidirectional: every segment grows outward from its own midpoint.
//
// # Hosts
//
// The View does not own a window. The host calls Resize when its size
// changes and Draw with a Surface when a frame is needed. WithInvalidator
// receives one call per animation tick. Ticks come from a Scheduler:
// ManualScheduler for tests and offline export, TickerScheduler with a Loop
// for real time.
//
// Surfaces live in sub-packages: surface/raster draws with gogpu/gg,
// surface/svg writes SVG. Recorder captures frames for inspection and
// replay.
//
// # Preconditions
//
// The series total must be positive. A zero total leaves every angle
// undefined; such frames draw the background ring and label only. Series
// longer than the four-color palette get a new random color per draw for
// each extra segment.
package statsring

// Version is the current version of the library.
const Version = "0.3.0"
