package behavior

// Behavior is a resumable unit of logic, called once per event.
// After it returns a done Result it must never be called again.
type Behavior func(Event) Result

// Factory builds a fresh behavior. Combinators that start a child more than
// once (Repeat, Seq, While) take factories so each start gets new state.
type Factory func() Behavior

// completed is the trivially finished behavior.
func completed(Event) Result {
	return Done(nil)
}

// WaitFor finishes with the first event that satisfies pred.
func WaitFor(pred func(Event) bool) Behavior {
	return func(ev Event) Result {
		if !pred(ev) {
			return Pending()
		}
		return Done(ev)
	}
}

// MatchKind finishes with the first event of the given kind.
func MatchKind(kind EventKind) Behavior {
	return WaitFor(func(ev Event) bool {
		return ev.Kind() == kind
	})
}

// Input finishes with the first event that is not a Tick.
func Input() Behavior {
	return WaitFor(func(ev Event) bool {
		return ev.Kind() != KindTick
	})
}

// OnTick calls f with the delta of every Tick. Returning ok finishes the
// behavior with value. Other events are ignored.
func OnTick(f func(delta float64) (value any, ok bool)) Behavior {
	return func(ev Event) Result {
		tick, isTick := ev.(Tick)
		if !isTick {
			return Pending()
		}
		if value, ok := f(tick.Delta); ok {
			return Done(value)
		}
		return Pending()
	}
}

// Always calls f with every event and never finishes.
func Always(f func(Event)) Behavior {
	return func(ev Event) Result {
		f(ev)
		return Pending()
	}
}

// Never ignores every event and never finishes.
func Never() Behavior {
	return Always(func(Event) {})
}

// Interval runs for duration seconds of Tick time, reporting progress in
// [0, 1] to onProgress. Progress 0 is reported immediately so the caller can
// draw the starting state. On completion the time past duration is carried
// forward as a Tick. A finish that lands exactly on duration carries
// nothing, so the next step of a sequence sees no zero-length Tick.
//
// A zero duration finishes on the first Tick and carries all of it.
func Interval(duration float64, onProgress func(progress float64)) Behavior {
	elapsed := 0.0
	onProgress(0)

	return func(ev Event) Result {
		tick, ok := ev.(Tick)
		if !ok {
			return Pending()
		}

		elapsed += tick.Delta
		if elapsed >= duration {
			onProgress(1)
			if over := elapsed - duration; over > 0 {
				return DoneCarry(nil, Tick{Delta: over})
			}
			return Done(nil)
		}

		onProgress(elapsed / duration)
		return Pending()
	}
}

// Wait runs for duration seconds of Tick time.
func Wait(duration float64) Behavior {
	return Interval(duration, func(float64) {})
}
