package statsring

// Geometry is the ring placement derived from the widget size.
type Geometry struct {
	Center Point
	Radius float64
	Bounds Rect // square enclosing the ring's center line
}

// NewGeometry computes the geometry for a width x height area and a stroke
// of lineWidth. The radius is half the smaller dimension minus lineWidth,
// clamped at zero.
func NewGeometry(width, height int, lineWidth float64) Geometry {
	w, h := float64(width), float64(height)
	radius := min(w, h)/2 - lineWidth
	if radius < 0 {
		radius = 0
	}
	center := Point{X: w / 2, Y: h / 2}
	return Geometry{
		Center: center,
		Radius: radius,
		Bounds: Rect{
			Left:   center.X - radius,
			Top:    center.Y - radius,
			Right:  center.X + radius,
			Bottom: center.Y + radius,
		},
	}
}
