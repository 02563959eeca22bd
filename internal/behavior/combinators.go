package behavior

// First races behaviors in priority order. Each event is offered to them
// left to right; the first one to finish wins and the rest are not polled
// for that event. With no behaviors it is already done.
func First(behaviors ...Behavior) Behavior {
	if len(behaviors) == 0 {
		return completed
	}
	if len(behaviors) == 1 {
		return behaviors[0]
	}

	return func(ev Event) Result {
		for _, b := range behaviors {
			if res := b(ev); res.IsDone() {
				return res
			}
		}
		return Pending()
	}
}

// Parallel runs behaviors side by side and finishes once all of them have.
// Behaviors are joined pairwise from the left. The finished result is the
// one of whichever side finished last; the earlier side's value and carry
// are dropped. With no behaviors it is already done.
func Parallel(behaviors ...Behavior) Behavior {
	if len(behaviors) == 0 {
		return completed
	}

	joined := behaviors[0]
	for _, b := range behaviors[1:] {
		joined = pair(joined, b)
	}
	return joined
}

// pair joins two behaviors, always polling the left one first.
func pair(left, right Behavior) Behavior {
	var leftDone, rightDone bool

	return func(ev Event) Result {
		if leftDone && rightDone {
			panic(ErrPolledAfterDone)
		}
		if !leftDone {
			res := left(ev)
			leftDone = res.IsDone()
			if rightDone {
				return res
			}
		}
		if !rightDone {
			res := right(ev)
			rightDone = res.IsDone()
			if leftDone {
				return res
			}
		}
		return Pending()
	}
}

// Until runs running (and then nothing) until finishing completes, giving
// running priority on every event. The composite finishes with finishing's
// result.
func Until(running, finishing Behavior) Behavior {
	return First(
		Run(Seq(
			func() Behavior { return running },
			Never,
		)),
		finishing,
	)
}

// Repeat restarts a freshly built child each time the previous one
// finishes. It never finishes on its own. A child that finishes on the
// time it is handed and carries all of it back (Wait(0)) restarts forever
// within one event.
func Repeat(factory Factory) Behavior {
	return Run(Loop(factory))
}

// Guard panics with ErrPolledAfterDone if b is called again after it
// finished. Use it around behaviors from untrusted composition code.
func Guard(b Behavior) Behavior {
	finished := false
	return func(ev Event) Result {
		if finished {
			panic(ErrPolledAfterDone)
		}
		res := b(ev)
		finished = res.IsDone()
		return res
	}
}
