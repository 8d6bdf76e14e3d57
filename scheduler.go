package statsring

import (
	"time"
)

// Handle cancels a scheduled run. Cancel is idempotent; after it returns no
// further callbacks of that run are delivered.
type Handle interface {
	Cancel()
}

// Scheduler is the time source that drives an animation run.
//
// Schedule starts a run lasting duration. onTick receives the linear progress
// elapsed/duration clamped to [0, 1] once per tick; onComplete is called
// after the tick that delivers 1. Callbacks must run on the host's UI
// goroutine, one at a time.
type Scheduler interface {
	Schedule(duration time.Duration, onTick func(progress float64), onComplete func()) Handle
}

// HandleFunc adapts an ordinary function to the Handle interface.
type HandleFunc func()

// Cancel calls f.
func (f HandleFunc) Cancel() { f() }

// linearProgress returns elapsed/duration clamped to [0, 1].
// A non-positive duration completes immediately.
func linearProgress(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	p := float64(elapsed) / float64(duration)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// ManualScheduler is a Scheduler driven by an explicit clock.
// Each Advance delivers exactly one tick to every active run.
//
// ManualScheduler is not safe for concurrent use; it is meant for tests and
// offline frame export where the caller owns the only goroutine.
type ManualScheduler struct {
	now  time.Duration
	runs []*manualRun
}

type manualRun struct {
	start      time.Duration
	duration   time.Duration
	onTick     func(float64)
	onComplete func()
	canceled   bool
}

// NewManualScheduler creates a scheduler whose clock starts at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Schedule implements Scheduler.
func (s *ManualScheduler) Schedule(duration time.Duration, onTick func(float64), onComplete func()) Handle {
	run := &manualRun{
		start:      s.now,
		duration:   duration,
		onTick:     onTick,
		onComplete: onComplete,
	}
	s.runs = append(s.runs, run)
	return HandleFunc(func() { run.canceled = true })
}

// Now returns the scheduler clock.
func (s *ManualScheduler) Now() time.Duration {
	return s.now
}

// Active returns the number of runs that have not completed or been canceled.
func (s *ManualScheduler) Active() int {
	n := 0
	for _, run := range s.runs {
		if !run.canceled {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by dt and ticks every active run.
// Runs canceled by a callback during Advance receive no further ticks.
func (s *ManualScheduler) Advance(dt time.Duration) {
	s.now += dt

	// Callbacks may schedule new runs; those start ticking on the next Advance.
	runs := s.runs
	for _, run := range runs {
		if run.canceled {
			continue
		}
		p := linearProgress(s.now-run.start, run.duration)
		if run.onTick != nil {
			run.onTick(p)
		}
		if run.canceled {
			continue
		}
		if p >= 1 {
			run.canceled = true
			if run.onComplete != nil {
				run.onComplete()
			}
		}
	}

	live := s.runs[:0]
	for _, run := range s.runs {
		if !run.canceled {
			live = append(live, run)
		}
	}
	clear(s.runs[len(live):])
	s.runs = live
}
