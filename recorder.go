package statsring

import (
	"fmt"
	"slices"
)

// CommandType identifies a recorded drawing command.
type CommandType uint8

const (
	CmdDrawArc  CommandType = iota // Stroke an arc
	CmdDrawText                    // Fill text
)

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	switch c {
	case CmdDrawArc:
		return "DrawArc"
	case CmdDrawText:
		return "DrawText"
	default:
		return fmt.Sprintf("CommandType(%d)", int(c))
	}
}

// Command is one recorded Surface call. Only the fields of its Type are set.
type Command struct {
	Type CommandType

	// DrawArc
	Bounds    Rect
	Start     float64
	Sweep     float64
	UseCenter bool
	Stroke    StrokeStyle

	// DrawText
	Text      string
	X, Y      float64
	TextStyle TextStyle
}

// Recorder is a Surface that captures commands instead of drawing them.
// A recorded frame can be inspected or replayed onto other surfaces.
type Recorder struct {
	commands []Command
}

// Ensure Recorder implements Surface.
var _ Surface = (*Recorder)(nil)

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// DrawArc implements Surface.
func (r *Recorder) DrawArc(bounds Rect, startAngle, sweepAngle float64, useCenter bool, stroke StrokeStyle) {
	r.commands = append(r.commands, Command{
		Type:      CmdDrawArc,
		Bounds:    bounds,
		Start:     startAngle,
		Sweep:     sweepAngle,
		UseCenter: useCenter,
		Stroke:    stroke,
	})
}

// DrawText implements Surface.
func (r *Recorder) DrawText(s string, x, y float64, style TextStyle) {
	r.commands = append(r.commands, Command{
		Type:      CmdDrawText,
		Text:      s,
		X:         x,
		Y:         y,
		TextStyle: style,
	})
}

// Commands returns a copy of the recorded commands in order.
func (r *Recorder) Commands() []Command {
	return slices.Clone(r.commands)
}

// Arcs returns the recorded DrawArc commands in order.
func (r *Recorder) Arcs() []Command {
	return r.filter(CmdDrawArc)
}

// Texts returns the recorded DrawText commands in order.
func (r *Recorder) Texts() []Command {
	return r.filter(CmdDrawText)
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Reset discards all recorded commands, keeping the allocated storage.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Replay issues every recorded command to s in order.
func (r *Recorder) Replay(s Surface) {
	for _, c := range r.commands {
		switch c.Type {
		case CmdDrawArc:
			s.DrawArc(c.Bounds, c.Start, c.Sweep, c.UseCenter, c.Stroke)
		case CmdDrawText:
			s.DrawText(c.Text, c.X, c.Y, c.TextStyle)
		}
	}
}

func (r *Recorder) filter(t CommandType) []Command {
	var out []Command
	for _, c := range r.commands {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}
