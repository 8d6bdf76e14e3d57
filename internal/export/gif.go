package export

import (
	"errors"
	"image"
	"image/color/palette"
	"image/gif"
	"io"

	"golang.org/x/image/draw"
)

// GIF accumulates frames of an animated GIF.
type GIF struct {
	anim  gif.GIF
	delay int // hundredths of a second
}

// NewGIF creates an animation played at fps, looping forever.
func NewGIF(fps int) *GIF {
	delay := 100 / max(fps, 1)
	return &GIF{delay: max(delay, 1)}
}

// Add quantizes img to the Plan 9 palette and appends it.
func (g *GIF) Add(img image.Image) {
	b := img.Bounds()
	frame := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), palette.Plan9)
	draw.FloydSteinberg.Draw(frame, frame.Bounds(), img, b.Min)
	g.anim.Image = append(g.anim.Image, frame)
	g.anim.Delay = append(g.anim.Delay, g.delay)
}

// Len returns the number of frames added.
func (g *GIF) Len() int {
	return len(g.anim.Image)
}

// Encode writes the animation to w.
func (g *GIF) Encode(w io.Writer) error {
	if len(g.anim.Image) == 0 {
		return errors.New("export: gif has no frames")
	}
	return gif.EncodeAll(w, &g.anim)
}
