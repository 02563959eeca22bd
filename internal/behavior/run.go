package behavior

// Script is a resumable sequence of child behaviors driven by Run.
//
// Run calls the script with nil to get the first child and afterwards with
// the Value of each child that finished. Returning nil ends the script.
// Scripts keep their own position, so one Script value drives exactly one Run.
type Script func(resume any) Behavior

// Step is one stage of a Steps script. A step that returns nil only ran a
// side effect and the script moves straight on to the next step.
type Step func(resume any) Behavior

// Run turns a script into a single behavior.
//
// Each event goes to the current child. When the child finishes the script
// is resumed with its value; if the child left a carried fragment, the
// fragment is fed to the next child within the same call, and so on until a
// child is pending or the script ends. The composite then finishes with the
// value and carry of its last child.
//
// A script with no children at all gives a behavior that is permanently done.
// A script whose children finish without consuming their carry never
// returns from that call.
func Run(script Script) Behavior {
	current := script(nil)
	if current == nil {
		return completed
	}

	finished := false
	return func(ev Event) Result {
		if finished {
			panic(ErrPolledAfterDone)
		}

		res := current(ev)
		for res.IsDone() {
			carry := res.Carry
			next := script(res.Value)
			if next == nil {
				finished = true
				current = nil
				return res
			}

			current = next
			if carry == nil {
				return Pending()
			}
			res = current(carry)
		}

		return Pending()
	}
}

// Seq runs freshly built children one after another.
func Seq(factories ...Factory) Script {
	i := 0
	return func(any) Behavior {
		if i >= len(factories) {
			return nil
		}
		f := factories[i]
		i++
		return f()
	}
}

// Steps runs steps in order, passing each the value of the child before it.
func Steps(steps ...Step) Script {
	i := 0
	return func(resume any) Behavior {
		for i < len(steps) {
			step := steps[i]
			i++
			if b := step(resume); b != nil {
				return b
			}
		}
		return nil
	}
}

// Loop yields factory() until it returns nil.
func Loop(factory Factory) Script {
	return func(any) Behavior {
		return factory()
	}
}

// While yields factory() for as long as cond holds when the previous child
// finishes.
func While(cond func() bool, factory Factory) Script {
	return func(any) Behavior {
		if !cond() {
			return nil
		}
		return factory()
	}
}

// Then runs b and hands its value to f once it finishes.
func Then(b Behavior, f func(value any)) Behavior {
	return Run(Steps(
		func(any) Behavior { return b },
		func(value any) Behavior {
			f(value)
			return nil
		},
	))
}

// Do wraps a side effect as a Step.
func Do(f func()) Step {
	return func(any) Behavior {
		f()
		return nil
	}
}

// Yield wraps a factory as a Step.
func Yield(factory Factory) Step {
	return func(any) Behavior {
		return factory()
	}
}
