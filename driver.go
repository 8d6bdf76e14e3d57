package statsring

import (
	"fmt"
	"time"
)

// DefaultDuration is the length of one reveal animation.
const DefaultDuration = 3000 * time.Millisecond

// State is the animation driver state.
type State int

const (
	// Idle means progress is fixed and no tick source is attached.
	Idle State = iota
	// Running means progress is advancing.
	Running
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Driver owns the animation progress of a View.
//
// Restart cancels the in-flight run, if any, and starts a new one from zero.
// Each tick stores the new progress and calls onUpdate once.
type Driver struct {
	scheduler Scheduler
	duration  time.Duration
	onUpdate  func()

	progress float64
	state    State
	handle   Handle
	run      uint64
}

// NewDriver creates an idle driver. onUpdate may be nil.
func NewDriver(scheduler Scheduler, duration time.Duration, onUpdate func()) *Driver {
	return &Driver{
		scheduler: scheduler,
		duration:  duration,
		onUpdate:  onUpdate,
	}
}

// Progress returns the current progress in [0, 1].
func (d *Driver) Progress() float64 { return d.progress }

// State returns the current state.
func (d *Driver) State() State { return d.state }

// Duration returns the length of a run.
func (d *Driver) Duration() time.Duration { return d.duration }

// Restart cancels the current run and starts a fresh one at progress 0.
func (d *Driver) Restart() {
	d.Stop()

	d.run++
	run := d.run
	d.progress = 0
	d.state = Running
	Logger().Debug("statsring: animation started", "run", run, "duration", d.duration)

	d.handle = d.scheduler.Schedule(d.duration,
		func(p float64) { d.tick(run, p) },
		func() { d.complete(run) },
	)
}

// Stop cancels the current run, leaving progress where it is.
func (d *Driver) Stop() {
	if d.handle == nil {
		return
	}
	d.handle.Cancel()
	d.handle = nil
	d.state = Idle
	Logger().Debug("statsring: animation canceled", "run", d.run, "progress", d.progress)
}

func (d *Driver) tick(run uint64, p float64) {
	if run != d.run || d.state != Running {
		return
	}
	switch {
	case p < d.progress:
		p = d.progress
	case p > 1:
		p = 1
	}
	d.progress = p
	if d.onUpdate != nil {
		d.onUpdate()
	}
}

func (d *Driver) complete(run uint64) {
	if run != d.run || d.state != Running {
		return
	}
	d.progress = 1
	d.state = Idle
	d.handle = nil
	Logger().Debug("statsring: animation completed", "run", run)
}
