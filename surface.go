package statsring

// Point is a position in pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// LineCap specifies the shape of arc endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded cap.
	LineCapRound
	// LineCapSquare specifies a square cap.
	LineCapSquare
)

// LineJoin specifies the shape of joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// StrokeStyle describes how an arc is stroked.
type StrokeStyle struct {
	Width float64
	Color Color
	Cap   LineCap
	Join  LineJoin
}

// TextAlign specifies horizontal alignment of text relative to its x position.
type TextAlign int

const (
	// AlignLeft places the text start at x.
	AlignLeft TextAlign = iota
	// AlignCenter centers the text on x.
	AlignCenter
	// AlignRight places the text end at x.
	AlignRight
)

// TextStyle describes how text is filled.
type TextStyle struct {
	Size  float64
	Color Color
	Align TextAlign
}

// Surface is the drawing sink a View renders into.
//
// Angles are in degrees. Zero points at 3 o'clock and positive sweeps run
// clockwise on screen (y grows downward). y passed to DrawText is the
// text baseline.
type Surface interface {
	// DrawArc strokes the arc of the oval inscribed in bounds. When useCenter
	// is true the arc is closed through the center as a wedge.
	DrawArc(bounds Rect, startAngle, sweepAngle float64, useCenter bool, stroke StrokeStyle)

	// DrawText draws s with its baseline at y, aligned on x.
	DrawText(s string, x, y float64, style TextStyle)
}
