package statsring

import (
	"errors"
	"math"
	"math/rand/v2"
)

// StartAngle is the angle, in degrees, where the first segment begins
// (12 o'clock).
const StartAngle = -90.0

// FullCircle is the sweep of the whole ring in degrees.
const FullCircle = 360.0

// ErrZeroTotal is returned when a series sums to zero (or to a non-finite
// value), which leaves every segment angle undefined.
var ErrZeroTotal = errors.New("statsring: series total is zero")

// Segment is one value's slice of the ring.
type Segment struct {
	Start float64 // degrees
	Sweep float64 // degrees
	Color Color
}

// End returns the angle where the segment's slot ends.
func (s Segment) End() float64 { return s.Start + s.Sweep }

// Sum returns the sum of values.
func Sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// AngleOf converts value to its sweep in degrees for a series summing to total.
// The result is NaN or infinite when total is zero.
func AngleOf(value, total float64) float64 {
	return value / total * FullCircle
}

// Angles returns the sweep of every value of the series.
func Angles(values []float64) ([]float64, error) {
	total := Sum(values)
	if total == 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return nil, ErrZeroTotal
	}
	angles := make([]float64, len(values))
	for i, v := range values {
		angles[i] = AngleOf(v, total)
	}
	return angles, nil
}

// Layout lays out the series as consecutive segments starting at StartAngle.
//
// Segment i takes palette[i]. Indices past the palette get a random opaque
// color from rng, generated anew on every call.
func Layout(values []float64, palette Palette, rng *rand.Rand) ([]Segment, error) {
	angles, err := Angles(values)
	if err != nil {
		return nil, err
	}
	segments := make([]Segment, len(angles))
	start := StartAngle
	for i, angle := range angles {
		segments[i] = Segment{
			Start: start,
			Sweep: angle,
			Color: colorAt(palette, i, rng),
		}
		start += angle
	}
	return segments, nil
}

func colorAt(palette Palette, i int, rng *rand.Rand) Color {
	if i < len(palette) {
		return palette[i]
	}
	return RandomColor(rng)
}
