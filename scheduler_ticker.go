package statsring

import (
	"context"
	"time"
)

// DefaultFrameInterval is the tick period of a TickerScheduler (about 60 Hz).
const DefaultFrameInterval = 16 * time.Millisecond

// TickerScheduler is a real-time Scheduler. Every run owns a time.Ticker on
// its own goroutine and posts each tick onto a Loop, so callbacks execute on
// the loop goroutine only.
//
// Cancel must be called from the loop goroutine. Because every posted tick
// checks the run's canceled flag on that same goroutine, no tick of a
// canceled run is delivered after Cancel returns.
type TickerScheduler struct {
	loop     *Loop
	interval time.Duration
	now      func() time.Time
}

// NewTickerScheduler creates a scheduler posting to loop every interval.
// A non-positive interval uses DefaultFrameInterval.
func NewTickerScheduler(loop *Loop, interval time.Duration) *TickerScheduler {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &TickerScheduler{
		loop:     loop,
		interval: interval,
		now:      time.Now,
	}
}

type tickerRun struct {
	cancel   context.CancelFunc
	canceled bool // touched on the loop goroutine only
}

func (r *tickerRun) Cancel() {
	r.canceled = true
	r.cancel()
}

// Schedule implements Scheduler.
func (s *TickerScheduler) Schedule(duration time.Duration, onTick func(float64), onComplete func()) Handle {
	ctx, cancel := context.WithCancel(context.Background())
	run := &tickerRun{cancel: cancel}
	start := s.now()

	go func() {
		defer cancel()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.loop.Done():
				return
			case t := <-ticker.C:
				p := linearProgress(t.Sub(start), duration)
				err := s.loop.Post(func() {
					if run.canceled {
						return
					}
					if onTick != nil {
						onTick(p)
					}
					if p >= 1 && !run.canceled {
						run.canceled = true
						if onComplete != nil {
							onComplete()
						}
					}
				})
				if err != nil || p >= 1 {
					return
				}
			}
		}
	}()

	return run
}
