package behavior

// Result is the outcome a behavior reports for one event delivery.
//
// A pending result carries nothing. A done result may carry a Value for
// whoever resumes afterwards, and a Carry: the unused remainder of the
// current Tick that must reach whatever runs next within the same event.
type Result struct {
	Value any
	Carry Event

	done bool
}

// Pending reports that the behavior wants the next event.
func Pending() Result {
	return Result{}
}

// Done reports that the behavior has permanently finished with value.
func Done(value any) Result {
	return Result{Value: value, done: true}
}

// DoneCarry reports completion with a leftover event fragment.
func DoneCarry(value any, carry Event) Result {
	return Result{Value: value, Carry: carry, done: true}
}

// IsDone returns true once the behavior has finished.
func (r Result) IsDone() bool {
	return r.done
}
