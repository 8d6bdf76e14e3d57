// Package export renders a whole statsring animation offline, frame by
// frame, on a ManualScheduler.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gogpu/statsring"
	"github.com/gogpu/statsring/surface"
)

// MaxFPS is the highest supported frame rate.
const MaxFPS = 1000

// ErrInvalidFPS is returned for a frame rate outside 1..MaxFPS.
var ErrInvalidFPS = fmt.Errorf("export: fps must be between 1 and %d", MaxFPS)

// ValidFPS reports whether fps is a supported frame rate.
func ValidFPS(fps int) bool {
	return fps > 0 && fps <= MaxFPS
}

// Frame describes one exported frame.
type Frame struct {
	Index    int
	Elapsed  time.Duration
	Progress float64
}

// Interval returns the time between frames at fps. fps must be valid.
func Interval(fps int) time.Duration {
	return time.Second / time.Duration(fps)
}

// Run plays v's current animation on sched from progress 0 to 1 and calls
// fn after every tick. v must have been created with sched and must have
// just been given its series.
//
// The first frame is the tick at elapsed 0; the last one is the tick that
// reaches progress 1.
func Run(v *statsring.View, sched *statsring.ManualScheduler, fps int, fn func(Frame) error) error {
	if !ValidFPS(fps) {
		return ErrInvalidFPS
	}
	if v.State() != statsring.Running {
		return errors.New("export: view is not animating")
	}
	interval := Interval(fps)
	start := sched.Now()

	sched.Advance(0)
	for i := 0; ; i++ {
		if err := fn(Frame{Index: i, Elapsed: sched.Now() - start, Progress: v.Progress()}); err != nil {
			return fmt.Errorf("export: frame %d: %w", i, err)
		}
		if v.State() != statsring.Running {
			return nil
		}
		sched.Advance(interval)
	}
}

// FrameCount returns the number of frames Run produces for an animation of
// duration at fps.
func FrameCount(duration time.Duration, fps int) (int, error) {
	if !ValidFPS(fps) {
		return 0, ErrInvalidFPS
	}
	if duration <= 0 {
		return 1, nil
	}
	interval := Interval(fps)
	return int((duration+interval-1)/interval) + 1, nil
}

// frameVerb matches the integer verb that receives the frame index.
var frameVerb = regexp.MustCompile(`%[-+ #0]*[0-9]*[dxXob]`)

// Sequence writes every frame to its own numbered file.
type Sequence struct {
	// Pattern is the output path with an integer printf verb for the frame
	// index, e.g. "out/frame-%04d.png". Only the first verb is expanded;
	// any other % is literal. A pattern without a verb gets a four digit
	// index inserted before its extension.
	Pattern string
}

// Path returns the file name of frame i.
func (s Sequence) Path(i int) string {
	if loc := frameVerb.FindStringIndex(s.Pattern); loc != nil {
		return s.Pattern[:loc[0]] + fmt.Sprintf(s.Pattern[loc[0]:loc[1]], i) + s.Pattern[loc[1]:]
	}
	ext := filepath.Ext(s.Pattern)
	return fmt.Sprintf("%s-%04d%s", strings.TrimSuffix(s.Pattern, ext), i, ext)
}

// Write encodes the frame held by t as frame i.
func (s Sequence) Write(i int, t surface.Target) error {
	path := s.Path(i)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := t.Encode(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
