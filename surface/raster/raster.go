// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster draws statsring frames into pixels with gogpu/gg.
//
// Importing the package registers the "png" format with the surface
// registry.
package raster

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/statsring"
	"github.com/gogpu/statsring/surface"
)

// FormatName is the registry name of the raster format.
const FormatName = "png"

func init() {
	surface.Register(FormatName, 10, func(opts surface.Options) (surface.Target, error) {
		return New(opts.Width, opts.Height, WithBackground(opts.Background))
	})
}

// Option configures a Surface during creation.
type Option func(*options)

type options struct {
	background statsring.Color
	font       *text.FontSource
}

// WithBackground sets the color used by New and Clear.
func WithBackground(c statsring.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithFontSource sets the font used for labels. The source is shared, not
// owned: Close does not close it. The default is Go Regular.
func WithFontSource(src *text.FontSource) Option {
	return func(o *options) {
		o.font = src
	}
}

// Surface is a statsring.Surface backed by a gg.Context.
//
// Arcs are drawn on the circle inscribed in the bounds' smaller dimension.
type Surface struct {
	dc         *gg.Context
	background statsring.Color
	font       *text.FontSource
	ownsFont   bool
	faces      map[float64]text.Face
	closed     bool
}

// Ensure Surface implements surface.Snapshotter.
var _ surface.Snapshotter = (*Surface)(nil)

// New creates a width x height raster surface.
func New(width, height int, opts ...Option) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, surface.ErrInvalidSize
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	s := &Surface{
		dc:         gg.NewContext(width, height),
		background: o.background,
		font:       o.font,
		faces:      make(map[float64]text.Face),
	}
	if s.font == nil {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("raster: load default font: %w", err)
		}
		s.font = src
		s.ownsFont = true
	}
	s.Clear()
	return s, nil
}

// Width returns the surface width.
func (s *Surface) Width() int { return s.dc.Width() }

// Height returns the surface height.
func (s *Surface) Height() int { return s.dc.Height() }

// Context returns the underlying gg drawing context.
func (s *Surface) Context() *gg.Context { return s.dc }

// Clear fills the surface with its background color.
func (s *Surface) Clear() {
	s.dc.ClearWithColor(gg.FromColor(s.background))
}

// DrawArc implements statsring.Surface.
func (s *Surface) DrawArc(bounds statsring.Rect, startAngle, sweepAngle float64, useCenter bool, stroke statsring.StrokeStyle) {
	if sweepAngle == 0 {
		return
	}
	if sweepAngle < 0 {
		startAngle += sweepAngle
		sweepAngle = -sweepAngle
	}

	c := bounds.Center()
	r := min(bounds.Width(), bounds.Height()) / 2
	a1 := radians(startAngle)
	a2 := radians(startAngle + sweepAngle)

	s.dc.ClearPath()
	s.dc.SetColor(stroke.Color)

	if useCenter {
		s.dc.MoveTo(c.X, c.Y)
		s.dc.LineTo(c.X+r*math.Cos(a1), c.Y+r*math.Sin(a1))
		s.dc.DrawArc(c.X, c.Y, r, a1, a2)
		s.dc.ClosePath()
		if err := s.dc.Fill(); err != nil {
			statsring.Logger().Warn("raster: fill failed", "error", err)
		}
		return
	}

	s.dc.SetLineWidth(stroke.Width)
	s.dc.SetLineCap(lineCap(stroke.Cap))
	s.dc.SetLineJoin(lineJoin(stroke.Join))
	s.dc.DrawArc(c.X, c.Y, r, a1, a2)
	if err := s.dc.Stroke(); err != nil {
		statsring.Logger().Warn("raster: stroke failed", "error", err)
	}
}

// DrawText implements statsring.Surface.
func (s *Surface) DrawText(str string, x, y float64, style statsring.TextStyle) {
	if str == "" || style.Size <= 0 {
		return
	}
	s.dc.SetFont(s.face(style.Size))
	s.dc.SetColor(style.Color)

	w, _ := s.dc.MeasureString(str)
	switch style.Align {
	case statsring.AlignCenter:
		x -= w / 2
	case statsring.AlignRight:
		x -= w
	}
	s.dc.DrawString(str, x, y)
}

// Snapshot returns the current frame.
func (s *Surface) Snapshot() image.Image {
	return s.dc.Image()
}

// Encode writes the current frame as PNG.
func (s *Surface) Encode(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// SavePNG writes the current frame to a PNG file.
func (s *Surface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}

// Close releases the drawing context and the default font.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	clear(s.faces)

	err := s.dc.Close()
	if s.ownsFont {
		if ferr := s.font.Close(); err == nil {
			err = ferr
		}
	}
	return err
}

func (s *Surface) face(size float64) text.Face {
	f, ok := s.faces[size]
	if !ok {
		f = s.font.Face(size)
		s.faces[size] = f
	}
	return f
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func lineCap(c statsring.LineCap) gg.LineCap {
	switch c {
	case statsring.LineCapRound:
		return gg.LineCapRound
	case statsring.LineCapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

func lineJoin(j statsring.LineJoin) gg.LineJoin {
	switch j {
	case statsring.LineJoinRound:
		return gg.LineJoinRound
	case statsring.LineJoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}
