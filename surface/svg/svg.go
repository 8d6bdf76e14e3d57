// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package svg writes statsring frames as SVG documents with ajstarks/svgo.
//
// Importing the package registers the "svg" format with the surface
// registry.
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/gogpu/statsring"
	"github.com/gogpu/statsring/surface"
)

// FormatName is the registry name of the SVG format.
const FormatName = "svg"

// maxChunk is the largest sweep, in degrees, emitted as one path arc.
// SVG cannot express a full circle with a single elliptical arc.
const maxChunk = 180.0

func init() {
	surface.Register(FormatName, 5, func(opts surface.Options) (surface.Target, error) {
		return New(opts.Width, opts.Height, opts.Background), nil
	})
}

// Surface accumulates one SVG document in memory.
type Surface struct {
	width, height int
	background    statsring.Color
	body          bytes.Buffer
	canvas        *svgo.SVG
}

// Ensure Surface implements surface.Target.
var _ surface.Target = (*Surface)(nil)

// New creates a width x height SVG surface. A transparent background adds
// no backdrop rectangle.
func New(width, height int, background statsring.Color) *Surface {
	s := &Surface{
		width:      width,
		height:     height,
		background: background,
	}
	s.canvas = svgo.New(&s.body)
	s.Clear()
	return s
}

// Width returns the document width.
func (s *Surface) Width() int { return s.width }

// Height returns the document height.
func (s *Surface) Height() int { return s.height }

// Clear starts a new document.
func (s *Surface) Clear() {
	s.body.Reset()
	s.canvas.Start(s.width, s.height)
	if s.background.A() != 0 {
		s.canvas.Rect(0, 0, s.width, s.height, fillStyle(s.background))
	}
}

// DrawArc implements statsring.Surface.
func (s *Surface) DrawArc(bounds statsring.Rect, startAngle, sweepAngle float64, useCenter bool, stroke statsring.StrokeStyle) {
	if sweepAngle == 0 {
		return
	}
	rx, ry := bounds.Width()/2, bounds.Height()/2
	c := bounds.Center()

	var d strings.Builder
	x, y := pointAt(c, rx, ry, startAngle)
	if useCenter {
		fmt.Fprintf(&d, "M%s %s L%s %s", num(c.X), num(c.Y), num(x), num(y))
	} else {
		fmt.Fprintf(&d, "M%s %s", num(x), num(y))
	}

	sweepFlag := 1
	if sweepAngle < 0 {
		sweepFlag = 0
	}
	n := int(math.Ceil(math.Abs(sweepAngle) / maxChunk))
	step := sweepAngle / float64(n)
	for i := 1; i <= n; i++ {
		x, y = pointAt(c, rx, ry, startAngle+step*float64(i))
		fmt.Fprintf(&d, " A%s %s 0 0 %d %s %s", num(rx), num(ry), sweepFlag, num(x), num(y))
	}

	if useCenter {
		d.WriteString(" Z")
		s.canvas.Path(d.String(), fillStyle(stroke.Color))
		return
	}
	s.canvas.Path(d.String(), strokeStyle(stroke))
}

// DrawText implements statsring.Surface.
func (s *Surface) DrawText(str string, x, y float64, style statsring.TextStyle) {
	if str == "" {
		return
	}
	anchor := "start"
	switch style.Align {
	case statsring.AlignCenter:
		anchor = "middle"
	case statsring.AlignRight:
		anchor = "end"
	}
	// svgo's Text only takes integer coordinates.
	fmt.Fprintf(&s.body, `<text x="%s" y="%s" style="font-family:sans-serif;font-size:%spx;text-anchor:%s;%s">`,
		num(x), num(y), num(style.Size), anchor, fillStyle(style.Color))
	_ = xml.EscapeText(&s.body, []byte(str))
	s.body.WriteString("</text>\n")
}

// Encode writes the complete document to w.
func (s *Surface) Encode(w io.Writer) error {
	if _, err := w.Write(s.body.Bytes()); err != nil {
		return fmt.Errorf("svg: write body: %w", err)
	}
	// End only writes the closing tag; the in-memory body stays open so
	// more frames can be drawn after encoding.
	svgo.New(w).End()
	return nil
}

// Close implements surface.Target.
func (s *Surface) Close() error {
	s.body.Reset()
	return nil
}

func pointAt(c statsring.Point, rx, ry, deg float64) (x, y float64) {
	rad := deg * math.Pi / 180
	return c.X + rx*math.Cos(rad), c.Y + ry*math.Sin(rad)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func opacity(c statsring.Color) string {
	return strconv.FormatFloat(float64(c.A())/255, 'f', 3, 64)
}

func fillStyle(c statsring.Color) string {
	return fmt.Sprintf("fill:%s;fill-opacity:%s", c.Hex(), opacity(c))
}

func strokeStyle(st statsring.StrokeStyle) string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:%s;stroke-width:%s;stroke-linecap:%s;stroke-linejoin:%s",
		st.Color.Hex(), opacity(st.Color), num(st.Width), capName(st.Cap), joinName(st.Join))
}

func capName(c statsring.LineCap) string {
	switch c {
	case statsring.LineCapRound:
		return "round"
	case statsring.LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

func joinName(j statsring.LineJoin) string {
	switch j {
	case statsring.LineJoinRound:
		return "round"
	case statsring.LineJoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}
