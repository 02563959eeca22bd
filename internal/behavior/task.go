package behavior

import "sync/atomic"

// task is the shared state between a bridged operation and its poller.
// The operation writes err and then sets finished; the poller reads err only
// after it has observed finished, so the two sides never touch err at the
// same time.
type task struct {
	claimed  atomic.Bool
	finished atomic.Bool
	err      error
}

func (t *task) complete(err error) {
	if !t.claimed.CompareAndSwap(false, true) {
		return
	}
	t.err = err
	t.finished.Store(true)
}

func (t *task) poll(Event) Result {
	if !t.finished.Load() {
		return Pending()
	}
	if t.err != nil {
		panic(&Fault{Err: t.err})
	}
	return Done(nil)
}

// BridgeTask brings a callback-style operation into the event model.
//
// launch is called immediately with a completion callback, which may be
// invoked from any goroutine. Only the first invocation counts. The returned
// behavior is polled: it finishes on the first event delivered after the
// callback fired, and if the callback reported an error it panics with a
// *Fault instead.
func BridgeTask(launch func(done func(error))) Behavior {
	t := &task{}
	launch(t.complete)
	return t.poll
}

// Async runs fn on its own goroutine and finishes once it has returned.
// A non-nil error from fn faults the behavior chain.
func Async(fn func() error) Behavior {
	return BridgeTask(func(done func(error)) {
		go func() {
			done(fn())
		}()
	})
}
