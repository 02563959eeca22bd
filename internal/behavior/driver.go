package behavior

import (
	"errors"
	"fmt"
)

// Driver owns the root behavior of an outer event loop.
//
// It is the boundary where the engine meets the outside world: it clamps
// tick deltas, applies a time scale, refuses re-entrant dispatch and turns a
// task Fault into an error. After a fault the driver is halted and every
// later call returns the same error.
type Driver struct {
	root      Behavior
	timeScale float64

	busy   bool
	done   bool
	result Result
	err    error
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithTimeScale multiplies every tick delta by scale.
// Non-positive scales are ignored.
func WithTimeScale(scale float64) DriverOption {
	return func(d *Driver) {
		if scale > 0 {
			d.timeScale = scale
		}
	}
}

// NewDriver creates a driver for root.
func NewDriver(root Behavior, opts ...DriverOption) *Driver {
	d := &Driver{
		root:      root,
		timeScale: 1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Send delivers one event to the root behavior.
func (d *Driver) Send(ev Event) (err error) {
	if d.err != nil {
		return d.err
	}
	if d.done {
		return nil
	}
	if d.busy {
		panic(ErrReentrantDispatch)
	}

	d.busy = true
	defer func() { d.busy = false }()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var fault *Fault
		if e, ok := r.(error); ok && errors.As(e, &fault) {
			d.err = fmt.Errorf("%w: %w", ErrHalted, fault)
			err = d.err
			return
		}
		panic(r)
	}()

	res := d.root(ev)
	if res.IsDone() {
		d.done = true
		d.result = res
	}
	return nil
}

// Tick delivers a Tick of delta seconds, scaled by the time scale.
// Negative deltas are treated as zero.
func (d *Driver) Tick(delta float64) error {
	if delta < 0 {
		delta = 0
	}
	return d.Send(Tick{Delta: delta * d.timeScale})
}

// Done returns true once the root behavior has finished, along with its
// final result.
func (d *Driver) Done() (Result, bool) {
	return d.result, d.done
}

// Err returns the fault that halted the driver, if any.
func (d *Driver) Err() error {
	return d.err
}
