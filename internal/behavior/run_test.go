package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDrainsCarryIntoNextTimer(t *testing.T) {
	var second []float64
	b := Run(Seq(
		func() Behavior { return Wait(1.0) },
		func() Behavior {
			return Interval(1.0, func(p float64) { second = append(second, p) })
		},
	))

	// The second child has not been built yet
	assert.Empty(t, second)

	assert.False(t, b(Tick{Delta: 0.6}).IsDone())
	assert.False(t, b(Tick{Delta: 0.6}).IsDone())

	// Same external event: first phase ended, second one received the 0.2 leftover
	require.Len(t, second, 2)
	assert.Equal(t, 0.0, second[0])
	assert.InDelta(t, 0.2, second[1], 1e-9)
}

func TestRunDrainsCarryIntoWaitFor(t *testing.T) {
	var polled []Event
	b := Run(Seq(
		func() Behavior { return Wait(1.0) },
		func() Behavior {
			return func(ev Event) Result {
				polled = append(polled, ev)
				if isClick(ev) {
					return Done(ev)
				}
				return Pending()
			}
		},
	))

	assert.False(t, b(Tick{Delta: 0.6}).IsDone())
	assert.False(t, b(Tick{Delta: 0.6}).IsDone())

	// The leftover tick reached the second step without a third external event
	require.Len(t, polled, 1)
	leftover, ok := polled[0].(Tick)
	require.True(t, ok)
	assert.InDelta(t, 0.2, leftover.Delta, 1e-9)

	assert.False(t, b(Tick{Delta: 0.1}).IsDone())
	res := b(PointerDown{})
	require.True(t, res.IsDone())
	assert.Equal(t, PointerDown{}, res.Value)
}

func TestRunResumesWithChildValue(t *testing.T) {
	var got any
	b := Run(Steps(
		Yield(func() Behavior { return MatchKind(KindKeyDown) }),
		func(resume any) Behavior {
			got = resume
			return nil
		},
	))

	assert.False(t, b(Tick{Delta: 1}).IsDone())
	res := b(KeyDown{Key: "5"})
	require.True(t, res.IsDone())
	assert.Equal(t, KeyDown{Key: "5"}, got)
	assert.Equal(t, KeyDown{Key: "5"}, res.Value)
}

func TestRunEmptyScriptIsPermanentlyDone(t *testing.T) {
	b := Run(Seq())

	for i := 0; i < 3; i++ {
		assert.True(t, b(Tick{Delta: 1}).IsDone())
	}

	sideEffects := 0
	b = Run(Steps(Do(func() { sideEffects++ })))
	assert.Equal(t, 1, sideEffects)
	assert.True(t, b(KeyDown{}).IsDone())
}

func TestRunPolledAfterDonePanics(t *testing.T) {
	b := Run(Seq(func() Behavior { return Input() }))

	require.True(t, b(KeyDown{Key: "a"}).IsDone())
	require.PanicsWithValue(t, ErrPolledAfterDone, func() { b(KeyDown{Key: "b"}) })
}

func TestRunPropagatesFinalCarry(t *testing.T) {
	outer := Run(Seq(
		func() Behavior {
			return Run(Seq(func() Behavior { return Wait(0.5) }))
		},
		func() Behavior { return Wait(1.0) },
	))
	inner := Run(Seq(func() Behavior { return Wait(0.5) }))

	res := inner(Tick{Delta: 0.7})
	require.True(t, res.IsDone())
	assert.InDelta(t, 0.2, res.Carry.(Tick).Delta, 1e-9)

	// 0.7 leaves 0.2 for the second wait, so 0.9 more completes it
	assert.False(t, outer(Tick{Delta: 0.7}).IsDone())
	assert.False(t, outer(Tick{Delta: 0.7}).IsDone())
	assert.True(t, outer(Tick{Delta: 0.2}).IsDone())
}

func TestWhile(t *testing.T) {
	count := 0
	b := Run(While(
		func() bool { return count < 3 },
		func() Behavior {
			return Then(Input(), func(any) { count++ })
		},
	))

	assert.False(t, b(KeyDown{}).IsDone())
	assert.False(t, b(KeyDown{}).IsDone())
	assert.True(t, b(KeyDown{}).IsDone())
	assert.Equal(t, 3, count)
}

func TestWhileFalseUpFrontIsDone(t *testing.T) {
	b := Run(While(func() bool { return false }, Never))
	assert.True(t, b(Tick{}).IsDone())
}

func TestThen(t *testing.T) {
	var got any
	b := Then(WaitFor(isClick), func(v any) { got = v })

	assert.False(t, b(KeyDown{}).IsDone())
	assert.Nil(t, got)
	assert.True(t, b(PointerDown{}).IsDone())
	assert.Equal(t, PointerDown{}, got)
}
