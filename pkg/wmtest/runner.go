// Package wmtest provides a deterministic, in-process window-manager
// session harness: a fake clock, a polled step runner, and a simulated
// session with tags, client urgency, and YAML-loaded client rules. It
// exercises the same tag and urgency semantics the live end-to-end tests
// assert against, without a compositor.
package wmtest

import (
	"fmt"
	"time"

	"github.com/go-joist/joist/pkg/errors"
)

const (
	// DefaultTick is how far the clock advances between step polls.
	DefaultTick = 100 * time.Millisecond
	// DefaultTimeout bounds a whole run before it fails.
	DefaultTimeout = 10 * time.Second
)

// A Step advances one stage of a scripted scenario. It is polled once per
// simulated timer tick with the number of polls so far (starting at 1) and
// returns true once its condition holds.
type Step func(count int) bool

// Runner executes scripted steps against the fake clock: each step is
// polled every tick until it reports done, then the next step starts.
type Runner struct {
	clock   *FakeClock
	tick    time.Duration
	timeout time.Duration
	handler *errors.LogHandler
}

// NewRunner creates a runner with the default tick and timeout.
func NewRunner(clock *FakeClock) *Runner {
	return &Runner{
		clock:   clock,
		tick:    DefaultTick,
		timeout: DefaultTimeout,
		handler: &errors.LogHandler{},
	}
}

// SetTick changes the simulated interval between polls.
func (r *Runner) SetTick(tick time.Duration) {
	if tick > 0 {
		r.tick = tick
	}
}

// SetTimeout changes the run deadline.
func (r *Runner) SetTimeout(timeout time.Duration) {
	if timeout > 0 {
		r.timeout = timeout
	}
}

// Run polls each step in order until it reports done, advancing the clock
// one tick per poll. It fails with a timeout error when the deadline
// passes before the last step completes, and converts a panicking step
// into a PanicError instead of crashing the harness.
func (r *Runner) Run(steps ...Step) error {
	deadline := r.clock.Now().Add(r.timeout)
	for i, step := range steps {
		count := 0
		for {
			count++
			done, err := r.poll(i, count, step)
			if err != nil {
				return err
			}
			if done {
				break
			}
			r.clock.Advance(r.tick)
			if r.clock.Now().After(deadline) {
				err := &errors.ToolkitError{
					Op:        fmt.Sprintf("wmtest.Runner step %d", i+1),
					Kind:      errors.KindTimeout,
					Err:       fmt.Errorf("not done after %v (%d polls)", r.timeout, count),
					Timestamp: r.clock.Now(),
				}
				r.handler.HandleError(err)
				return err
			}
		}
	}
	return nil
}

// poll runs one step invocation with panic recovery.
func (r *Runner) poll(index, count int, step Step) (done bool, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			panicErr := &errors.PanicError{
				Op:         fmt.Sprintf("wmtest.Runner step %d", index+1),
				Value:      recovered,
				StackTrace: errors.CaptureStack(),
				Timestamp:  r.clock.Now(),
			}
			r.handler.HandlePanic(panicErr)
			err = panicErr
		}
	}()
	return step(count), nil
}
