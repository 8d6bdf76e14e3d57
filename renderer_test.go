package statsring

import (
	"math"
	"testing"
)

var testPalette = Palette{0xFFFF0000, 0xFF00FF00, 0xFF0000FF, 0xFFFFFF00}

func newTestRenderer(typ AnimationType) *Renderer {
	return &Renderer{
		Geometry:  NewGeometry(200, 200, DefaultLineWidth),
		LineWidth: DefaultLineWidth,
		TextSize:  DefaultTextSize,
		TextColor: Black,
		Palette:   testPalette,
		Type:      typ,
	}
}

// foreground returns the recorded arcs after the background ring.
func foreground(t *testing.T, rec *Recorder) []Command {
	t.Helper()
	arcs := rec.Arcs()
	if len(arcs) == 0 {
		t.Fatal("no arcs recorded")
	}
	bg := arcs[0]
	if bg.Start != StartAngle || bg.Sweep != FullCircle || bg.Stroke.Color != EmptyColor {
		t.Fatalf("first arc = %+v, want background ring", bg)
	}
	return arcs[1:]
}

type wantArc struct {
	start, sweep float64
	color        Color
}

func checkArcs(t *testing.T, got []Command, want []wantArc) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d arcs, want %d: %+v", len(got), len(want), got)
	}
	for i, w := range want {
		g := got[i]
		if !approxEqual(g.Start, w.start) || !approxEqual(g.Sweep, w.sweep) {
			t.Errorf("arc %d = (%v, %v), want (%v, %v)", i, g.Start, g.Sweep, w.start, w.sweep)
		}
		if g.Stroke.Color != w.color {
			t.Errorf("arc %d color = %v, want %v", i, g.Stroke.Color, w.color)
		}
	}
}

func TestRender_EmptySeriesDrawsNothing(t *testing.T) {
	for _, typ := range []AnimationType{Rotation, Sequential, Bidirectional} {
		rec := NewRecorder()
		newTestRenderer(typ).Render(rec, nil, 0.5)
		if rec.Len() != 0 {
			t.Errorf("%v: empty series recorded %d commands, want 0", typ, rec.Len())
		}
	}
}

func TestRender_SequentialHalfway(t *testing.T) {
	rec := NewRecorder()
	newTestRenderer(Sequential).Render(rec, []float64{1, 1, 1, 1}, 0.5)

	checkArcs(t, foreground(t, rec), []wantArc{
		{-90, 90, testPalette[0]},
		{0, 90, testPalette[1]},
		{90, 0, testPalette[2]},
	})

	texts := rec.Texts()
	if len(texts) != 1 || texts[0].Text != "50.00%" {
		t.Errorf("texts = %+v, want a single 50.00%% label", texts)
	}
}

func TestRender_SequentialStart(t *testing.T) {
	rec := NewRecorder()
	newTestRenderer(Sequential).Render(rec, []float64{1, 2, 3}, 0)

	checkArcs(t, foreground(t, rec), []wantArc{
		{-90, 0, testPalette[0]},
	})
}

func TestRender_SequentialTotalSweep(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	for _, p := range []float64{0, 0.1, 0.25, 0.3, 0.5, 0.77, 0.99, 1} {
		rec := NewRecorder()
		newTestRenderer(Sequential).Render(rec, values, p)

		var total float64
		for _, arc := range foreground(t, rec) {
			if arc.Sweep < 0 {
				t.Errorf("p=%v: negative sweep %v", p, arc.Sweep)
			}
			total += arc.Sweep
		}
		if want := math.Min(FullCircle*p, FullCircle); !approxEqual(total, want) {
			t.Errorf("p=%v: total sweep = %v, want %v", p, total, want)
		}
	}
}

func TestRender_SequentialComplete(t *testing.T) {
	rec := NewRecorder()
	newTestRenderer(Sequential).Render(rec, []float64{1, 3}, 1)

	checkArcs(t, foreground(t, rec), []wantArc{
		{-90, 90, testPalette[0]},
		{0, 270, testPalette[1]},
	})
}

func TestRender_Bidirectional(t *testing.T) {
	values := []float64{1, 1, 2}

	rec := NewRecorder()
	newTestRenderer(Bidirectional).Render(rec, values, 0)
	checkArcs(t, foreground(t, rec), []wantArc{
		{-45, 0, testPalette[0]},
		{45, 0, testPalette[1]},
		{180, 0, testPalette[2]},
	})

	rec = NewRecorder()
	newTestRenderer(Bidirectional).Render(rec, values, 1)
	checkArcs(t, foreground(t, rec), []wantArc{
		{-90, 90, testPalette[0]},
		{0, 90, testPalette[1]},
		{90, 180, testPalette[2]},
	})

	rec = NewRecorder()
	newTestRenderer(Bidirectional).Render(rec, values, 0.5)
	checkArcs(t, foreground(t, rec), []wantArc{
		{-67.5, 45, testPalette[0]},
		{22.5, 45, testPalette[1]},
		{135, 90, testPalette[2]},
	})
}

func TestRender_BidirectionalRepeatable(t *testing.T) {
	r := newTestRenderer(Bidirectional)
	first, second := NewRecorder(), NewRecorder()
	r.Render(first, []float64{2, 5, 1}, 0.4)
	r.Render(second, []float64{2, 5, 1}, 0.4)

	a, b := first.Arcs(), second.Arcs()
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("arc %d differs between draws: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestRender_Rotation(t *testing.T) {
	values := []float64{1, 1, 1, 1}

	rec := NewRecorder()
	newTestRenderer(Rotation).Render(rec, values, 1)
	checkArcs(t, foreground(t, rec), []wantArc{
		{270, 90, testPalette[0]},
		{360, 90, testPalette[1]},
		{450, 90, testPalette[2]},
		{540, 90, testPalette[3]},
		{630, 0.9, testPalette[0]}, // closing arc
	})

	rec = NewRecorder()
	newTestRenderer(Rotation).Render(rec, values, 0)
	checkArcs(t, foreground(t, rec), []wantArc{
		{-90, 0, testPalette[0]},
		{0, 0, testPalette[1]},
		{90, 0, testPalette[2]},
		{180, 0, testPalette[3]},
		{270, 0.9, testPalette[0]},
	})
}

func TestRender_RotationHalfway(t *testing.T) {
	rec := NewRecorder()
	newTestRenderer(Rotation).Render(rec, []float64{1, 3}, 0.5)
	checkArcs(t, foreground(t, rec), []wantArc{
		{90, 45, testPalette[0]},
		{180, 135, testPalette[1]},
		{450, 0.9, testPalette[0]},
	})
}

func TestRender_ZeroTotal(t *testing.T) {
	for _, typ := range []AnimationType{Rotation, Sequential, Bidirectional} {
		rec := NewRecorder()
		newTestRenderer(typ).Render(rec, []float64{0, 0, 0}, 0.5)

		if got := foreground(t, rec); len(got) != 0 {
			t.Errorf("%v: zero total drew %d segments", typ, len(got))
		}
		if len(rec.Texts()) != 1 {
			t.Errorf("%v: label not drawn", typ)
		}
	}
}

func TestRender_InvalidTypeDrawsNoSegments(t *testing.T) {
	rec := NewRecorder()
	newTestRenderer(AnimationType(42)).Render(rec, []float64{1, 2}, 0.5)
	if got := foreground(t, rec); len(got) != 0 {
		t.Errorf("invalid type drew %d segments", len(got))
	}
}

func TestRender_OverflowColorsOpaque(t *testing.T) {
	rec := NewRecorder()
	newTestRenderer(Bidirectional).Render(rec, []float64{1, 1, 1, 1, 1, 1}, 1)

	arcs := foreground(t, rec)
	if len(arcs) != 6 {
		t.Fatalf("got %d arcs, want 6", len(arcs))
	}
	for i := range PaletteSize {
		if arcs[i].Stroke.Color != testPalette[i] {
			t.Errorf("arc %d color = %v, want %v", i, arcs[i].Stroke.Color, testPalette[i])
		}
	}
	for _, arc := range arcs[PaletteSize:] {
		if !arc.Stroke.Color.Opaque() {
			t.Errorf("overflow color %v not opaque", arc.Stroke.Color)
		}
	}
}

func TestRender_StrokeAndBounds(t *testing.T) {
	r := newTestRenderer(Sequential)
	rec := NewRecorder()
	r.Render(rec, []float64{1}, 1)

	for i, arc := range rec.Arcs() {
		if arc.Bounds != r.Geometry.Bounds {
			t.Errorf("arc %d bounds = %+v, want %+v", i, arc.Bounds, r.Geometry.Bounds)
		}
		if arc.UseCenter {
			t.Errorf("arc %d uses center", i)
		}
		want := StrokeStyle{Width: DefaultLineWidth, Color: arc.Stroke.Color, Cap: LineCapRound, Join: LineJoinRound}
		if arc.Stroke != want {
			t.Errorf("arc %d stroke = %+v, want %+v", i, arc.Stroke, want)
		}
	}
}

func TestRender_Label(t *testing.T) {
	r := newTestRenderer(Sequential)
	r.TextColor = 0xFF123456
	rec := NewRecorder()
	r.Render(rec, []float64{1, 2}, 0.123456)

	texts := rec.Texts()
	if len(texts) != 1 {
		t.Fatalf("got %d texts, want 1", len(texts))
	}
	label := texts[0]
	if label.Text != "12.35%" {
		t.Errorf("label = %q, want 12.35%%", label.Text)
	}
	if label.X != 100 || label.Y != 105 {
		t.Errorf("label at (%v, %v), want (100, 105)", label.X, label.Y)
	}
	want := TextStyle{Size: DefaultTextSize, Color: 0xFF123456, Align: AlignCenter}
	if label.TextStyle != want {
		t.Errorf("label style = %+v, want %+v", label.TextStyle, want)
	}

	// The label is the last command of a frame.
	cmds := rec.Commands()
	if cmds[len(cmds)-1].Type != CmdDrawText {
		t.Errorf("last command = %v, want DrawText", cmds[len(cmds)-1].Type)
	}
}

func TestRender_NonFiniteArcDropped(t *testing.T) {
	rec := NewRecorder()
	// The total cancels down to 1e-300, so the first angle overflows to +Inf
	// and every rotated start after it is infinite.
	newTestRenderer(Rotation).Render(rec, []float64{math.MaxFloat64, -math.MaxFloat64, 1e-300}, 1)
	if got := foreground(t, rec); len(got) != 0 {
		t.Errorf("recorded %d segments, want only the background", len(got))
	}
	for _, arc := range rec.Arcs() {
		if math.IsNaN(arc.Start) || math.IsNaN(arc.Sweep) || math.IsInf(arc.Start, 0) || math.IsInf(arc.Sweep, 0) {
			t.Errorf("non-finite arc recorded: %+v", arc)
		}
	}
}

func TestFormatProgress(t *testing.T) {
	tests := []struct {
		p    float64
		want string
	}{
		{0, "0.00%"},
		{0.5, "50.00%"},
		{1, "100.00%"},
		{0.33333, "33.33%"},
	}
	for _, tt := range tests {
		if got := FormatProgress(tt.p); got != tt.want {
			t.Errorf("FormatProgress(%v) = %q, want %q", tt.p, got, tt.want)
		}
	}
}
