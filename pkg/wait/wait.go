// Package wait implements the bounded polling primitive used by every
// asynchronous platform operation.
package wait

import (
	"fmt"
	"time"

	"github.com/juju/clock"
)

const (
	DefaultBudget   = 600 * time.Second
	DefaultInterval = 5 * time.Second
	DefaultRetries  = 1
)

// Check is one polling attempt. It reports done=true when the awaited
// condition holds. A non-nil error marks the attempt as failed; failed
// attempts count against the retry budget, not the wall-clock budget.
type Check func() (done bool, err error)

// TimeoutError reports that the wall-clock budget elapsed before the
// check succeeded.
type TimeoutError struct {
	Elapsed time.Duration
	Budget  time.Duration
}

func (t TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s (budget %s)", t.Elapsed, t.Budget)
}

// RetriesExceededError reports that the check failed more times than the
// retry budget tolerates. Err holds the last failure.
type RetriesExceededError struct {
	Attempts int
	Err      error
}

func (r RetriesExceededError) Error() string {
	return fmt.Sprintf("check failed %d times, giving up: %v", r.Attempts, r.Err)
}

func (r RetriesExceededError) Unwrap() error {
	return r.Err
}

// Waiter drives a Check to completion under a wall-clock budget with a
// fixed polling cadence. The zero value uses the defaults above and the
// wall clock. Waiters are stateless across Wait calls: each call owns its
// own deadline and retry counter.
type Waiter struct {
	// Budget is the total wall-clock timeout.
	Budget time.Duration

	// Interval is the sleep between polling cycles.
	Interval time.Duration

	// MaxRetries is the number of additional failed attempts tolerated
	// after the first: a Wait call gives up once MaxRetries+1 attempts
	// have failed. Negative means DefaultRetries; zero means the first
	// failure is fatal.
	MaxRetries int

	Clock clock.Clock

	// OnTick is invoked after every sleep with the elapsed time.
	OnTick func(elapsed, interval time.Duration)

	// OnError is invoked for every failed attempt with its 1-based index.
	OnError func(err error, attempt int)
}

// Wait polls check until it succeeds, the retry budget is exhausted, or
// the wall-clock budget elapses. The first success returns immediately:
// a check succeeding on its Nth call observes exactly N-1 sleeps.
func (w Waiter) Wait(check Check) error {
	budget := w.Budget
	if budget <= 0 {
		budget = DefaultBudget
	}
	interval := w.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	retries := w.MaxRetries
	if retries < 0 {
		retries = DefaultRetries
	}
	clk := w.Clock
	if clk == nil {
		clk = clock.WallClock
	}

	start := clk.Now()
	attempts := 0

	for {
		done, err := check()
		if err != nil {
			attempts++
			if w.OnError != nil {
				w.OnError(err, attempts)
			}
			if attempts > retries {
				return RetriesExceededError{Attempts: attempts, Err: err}
			}
		} else if done {
			return nil
		}

		elapsed := clk.Now().Sub(start)
		if elapsed >= budget {
			return TimeoutError{Elapsed: elapsed, Budget: budget}
		}

		<-clk.After(interval)
		if w.OnTick != nil {
			w.OnTick(clk.Now().Sub(start), interval)
		}
	}
}
