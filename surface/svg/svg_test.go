// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/gogpu/statsring"
	"github.com/gogpu/statsring/surface"
)

func encode(t *testing.T, s *Surface) string {
	t.Helper()
	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	return buf.String()
}

// wellFormed fails the test if doc is not well-formed XML.
func wellFormed(t *testing.T, doc string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			t.Fatalf("malformed SVG: %v\n%s", err, doc)
		}
	}
}

func TestEmptyDocument(t *testing.T) {
	doc := encode(t, New(120, 80, statsring.Transparent))
	wellFormed(t, doc)

	for _, want := range []string{"<svg", `width="120"`, `height="80"`, "</svg>"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
	if strings.Contains(doc, "<rect") {
		t.Errorf("transparent background produced a backdrop:\n%s", doc)
	}
}

func TestBackground(t *testing.T) {
	doc := encode(t, New(50, 50, statsring.White))
	if !strings.Contains(doc, "<rect") || !strings.Contains(doc, "fill:#FFFFFF") {
		t.Errorf("missing white backdrop:\n%s", doc)
	}
}

func TestDrawArcFullCircle(t *testing.T) {
	s := New(200, 200, statsring.Transparent)
	bounds := statsring.Rect{Left: 5, Top: 5, Right: 195, Bottom: 195}
	s.DrawArc(bounds, statsring.StartAngle, statsring.FullCircle, false, statsring.StrokeStyle{
		Width: 5,
		Color: 0x0A808080,
		Cap:   statsring.LineCapRound,
		Join:  statsring.LineJoinRound,
	})

	doc := encode(t, s)
	wellFormed(t, doc)

	// 360 degrees needs two 180 degree arcs.
	if n := strings.Count(doc, " A95 95 0 0 1 "); n != 2 {
		t.Errorf("found %d arc commands, want 2:\n%s", n, doc)
	}
	for _, want := range []string{
		`d="M100 5 `,
		"stroke:#808080",
		"stroke-opacity:0.039",
		"stroke-width:5",
		"stroke-linecap:round",
		"stroke-linejoin:round",
		"fill:none",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestDrawArcNegativeSweep(t *testing.T) {
	s := New(100, 100, statsring.Transparent)
	s.DrawArc(statsring.Rect{Right: 100, Bottom: 100}, 0, -90, false, statsring.StrokeStyle{Width: 1, Color: statsring.Black})

	doc := encode(t, s)
	if !strings.Contains(doc, " A50 50 0 0 0 ") {
		t.Errorf("negative sweep not drawn counterclockwise:\n%s", doc)
	}
}

func TestDrawArcZeroSweep(t *testing.T) {
	s := New(100, 100, statsring.Transparent)
	s.DrawArc(statsring.Rect{Right: 100, Bottom: 100}, 0, 0, false, statsring.StrokeStyle{Width: 1})
	if doc := encode(t, s); strings.Contains(doc, "<path") {
		t.Errorf("zero sweep emitted a path:\n%s", doc)
	}
}

func TestDrawArcWedge(t *testing.T) {
	s := New(100, 100, statsring.Transparent)
	s.DrawArc(statsring.Rect{Right: 100, Bottom: 100}, 0, 90, true, statsring.StrokeStyle{Color: 0xFF0000FF})

	doc := encode(t, s)
	wellFormed(t, doc)
	for _, want := range []string{`d="M50 50 L100 50`, " Z", "fill:#0000FF"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestDrawText(t *testing.T) {
	s := New(200, 200, statsring.Transparent)
	s.DrawText("50.00%", 100, 105.4, statsring.TextStyle{Size: 20, Color: statsring.Black, Align: statsring.AlignCenter})
	s.DrawText("", 0, 0, statsring.TextStyle{Size: 20})

	doc := encode(t, s)
	wellFormed(t, doc)
	if n := strings.Count(doc, "<text"); n != 1 {
		t.Errorf("found %d text elements, want 1", n)
	}
	for _, want := range []string{`x="100"`, `y="105.4"`, "text-anchor:middle", "font-size:20px", ">50.00%<"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestDrawTextOddCanvas(t *testing.T) {
	s := New(201, 101, statsring.Transparent)
	v := statsring.New(statsring.WithScheduler(statsring.NewManualScheduler()))
	v.Resize(201, 101)
	v.SetSeries([]float64{1})
	v.Draw(s)

	doc := encode(t, s)
	wellFormed(t, doc)
	// Center (100.5, 50.5), label baseline center.Y + textSize/4.
	want := `x="100.5" y="55.5"`
	if !strings.Contains(doc, want) {
		t.Errorf("document missing %q:\n%s", want, doc)
	}
}

func TestDrawTextEscapes(t *testing.T) {
	s := New(100, 100, statsring.Transparent)
	s.DrawText("a<b&c", 10, 10, statsring.TextStyle{Size: 10})
	doc := encode(t, s)
	wellFormed(t, doc)
	if !strings.Contains(doc, ">a&lt;b&amp;c<") {
		t.Errorf("text not escaped:\n%s", doc)
	}
}

func TestClearAndReencode(t *testing.T) {
	s := New(100, 100, statsring.Transparent)
	s.DrawText("a", 10, 10, statsring.TextStyle{Size: 10})

	first := encode(t, s)
	if second := encode(t, s); first != second {
		t.Error("encoding twice produced different documents")
	}

	s.Clear()
	if doc := encode(t, s); strings.Contains(doc, "<text") {
		t.Errorf("Clear() kept previous frame:\n%s", doc)
	}
}

func TestViewFrame(t *testing.T) {
	s := New(200, 200, statsring.White)
	sched := statsring.NewManualScheduler()
	v := statsring.New(statsring.WithScheduler(sched), statsring.WithAnimationType(statsring.Rotation))
	v.Resize(s.Width(), s.Height())
	v.SetSeries([]float64{1, 2, 3})
	sched.Advance(statsring.DefaultDuration / 2)
	v.Draw(s)

	doc := encode(t, s)
	wellFormed(t, doc)
	// Background ring, three segments and the closing arc.
	if n := strings.Count(doc, "<path"); n != 5 {
		t.Errorf("found %d paths, want 5", n)
	}
	if !strings.Contains(doc, ">50.00%<") {
		t.Error("label missing")
	}
}

func TestRegisteredFormat(t *testing.T) {
	tgt, err := surface.New(FormatName, surface.Options{Width: 10, Height: 10})
	if err != nil {
		t.Fatalf("surface.New(%q) error: %v", FormatName, err)
	}
	defer tgt.Close()
	if _, ok := tgt.(surface.Snapshotter); ok {
		t.Error("SVG target should not be a Snapshotter")
	}
	if got := surface.FormatForPath("out.svg"); got != FormatName {
		t.Errorf("FormatForPath() = %q, want %q", got, FormatName)
	}
}
