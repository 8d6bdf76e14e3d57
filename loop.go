package statsring

import (
	"context"
	"errors"
	"sync"
)

// ErrLoopStopped is returned by Post after the loop has stopped running.
var ErrLoopStopped = errors.New("statsring: loop stopped")

// Loop is a cooperative single-goroutine event loop. It plays the role of a
// host UI thread: every posted function runs to completion on the goroutine
// that called Run before the next one starts.
type Loop struct {
	queue chan func()
	done  chan struct{}
	once  sync.Once
}

// NewLoop creates a loop with room for buffer pending functions.
func NewLoop(buffer int) *Loop {
	if buffer < 1 {
		buffer = 1
	}
	return &Loop{
		queue: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
}

// Post queues fn to run on the loop goroutine. It blocks while the queue is
// full and returns ErrLoopStopped once Run has returned.
//
// Post must not be called from the loop goroutine with a full queue.
func (l *Loop) Post(fn func()) error {
	select {
	case <-l.done:
		return ErrLoopStopped
	default:
	}
	select {
	case l.queue <- fn:
		return nil
	case <-l.done:
		return ErrLoopStopped
	}
}

// Run executes posted functions until ctx is canceled.
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() { close(l.done) })
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.queue:
			fn()
		}
	}
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
