package behavior

import (
	"errors"
	"fmt"
)

var (
	// ErrPolledAfterDone is the panic value when a finished behavior is
	// invoked again. It always means a consumer wired behaviors incorrectly.
	ErrPolledAfterDone = errors.New("behavior: polled after done")

	// ErrReentrantDispatch is the panic value when a behavior dispatches an
	// event back into the pool or driver that is currently delivering one.
	ErrReentrantDispatch = errors.New("behavior: re-entrant dispatch")

	// ErrHalted is returned by a Driver whose root behavior chain faulted.
	ErrHalted = errors.New("behavior: driver halted")
)

// Fault is the panic value raised when a bridged task reports a failure.
// It unwinds the whole behavior chain that polled the task; a Driver
// recovers it and turns it into an error.
type Fault struct {
	Err error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("behavior: task failed: %v", f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
