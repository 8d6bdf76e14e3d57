package statsring

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// EmptyColor is the low-opacity neutral color of the background ring.
const EmptyColor Color = 0x0A808080

// closingArcDivisor scales the first segment's angle into the seam arc drawn
// at the end of a Rotation frame.
const closingArcDivisor = 100

// Renderer draws one frame of a series.
//
// The zero value is usable but draws at the origin with zero width; View
// fills it from its options and geometry.
type Renderer struct {
	Geometry  Geometry
	LineWidth float64
	TextSize  float64
	TextColor Color
	Palette   Palette
	Type      AnimationType

	// Rand generates colors for segments past the palette. Nil uses the
	// global source.
	Rand *rand.Rand
}

// Render draws values at progress onto s: the background ring, the
// foreground segments for r.Type and the percentage label.
//
// An empty series draws nothing. A series whose total is zero draws the
// ring and the label but no segments.
func (r *Renderer) Render(s Surface, values []float64, progress float64) {
	if len(values) == 0 {
		return
	}

	r.arc(s, StartAngle, FullCircle, EmptyColor)

	angles, err := Angles(values)
	if err != nil {
		Logger().Warn("statsring: segments skipped", "error", err, "values", len(values))
	} else {
		switch r.Type {
		case Rotation:
			r.rotation(s, angles, progress)
		case Sequential:
			r.sequential(s, angles, progress)
		case Bidirectional:
			r.bidirectional(s, angles, progress)
		}
	}

	s.DrawText(FormatProgress(progress), r.Geometry.Center.X, r.Geometry.Center.Y+r.TextSize/4, TextStyle{
		Size:  r.TextSize,
		Color: r.TextColor,
		Align: AlignCenter,
	})
}

// FormatProgress formats progress as a percentage with two decimals.
func FormatProgress(progress float64) string {
	return fmt.Sprintf("%.2f%%", progress*100)
}

// rotation turns the whole ring once while every segment grows in place.
func (r *Renderer) rotation(s Surface, angles []float64, progress float64) {
	start := StartAngle + progress*FullCircle
	for i, angle := range angles {
		r.arc(s, start, angle*progress, colorAt(r.Palette, i, r.Rand))
		start += angle
	}
	// Seam between the last segment and the first.
	r.arc(s, start, angles[0]/closingArcDivisor, colorAt(r.Palette, 0, r.Rand))
}

// sequential reveals segments in order up to 360*progress degrees.
func (r *Renderer) sequential(s Surface, angles []float64, progress float64) {
	startFrom := StartAngle
	maxAngle := FullCircle*progress + StartAngle
	for i, angle := range angles {
		if startFrom > maxAngle {
			return
		}
		r.arc(s, startFrom, min(angle, maxAngle-startFrom), colorAt(r.Palette, i, r.Rand))
		startFrom += angle
	}
}

// bidirectional grows every segment outward from the middle of its slot.
func (r *Renderer) bidirectional(s Surface, angles []float64, progress float64) {
	startFrom := StartAngle
	for i, angle := range angles {
		r.arc(s, startFrom+angle/2-angle*progress/2, angle*progress, colorAt(r.Palette, i, r.Rand))
		startFrom += angle
	}
}

func (r *Renderer) arc(s Surface, start, sweep float64, c Color) {
	if !finite(start) || !finite(sweep) {
		Logger().Warn("statsring: non-finite arc dropped", "start", start, "sweep", sweep)
		return
	}
	s.DrawArc(r.Geometry.Bounds, start, sweep, false, StrokeStyle{
		Width: r.LineWidth,
		Color: c,
		Cap:   LineCapRound,
		Join:  LineJoinRound,
	})
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
