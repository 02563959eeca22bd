package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-skirmish/internal/vec"
)

func isClick(ev Event) bool {
	_, ok := ev.(PointerDown)
	return ok
}

func TestWaitFor(t *testing.T) {
	b := Guard(WaitFor(isClick))

	assert.False(t, b(Tick{Delta: 0.1}).IsDone())
	assert.False(t, b(KeyDown{Key: "a"}).IsDone())
	assert.False(t, b(PointerMove{Pos: vec.New(1, 1)}).IsDone())

	click := PointerDown{Pos: vec.New(3, 4)}
	res := b(click)
	require.True(t, res.IsDone())
	assert.Equal(t, click, res.Value)
	assert.Nil(t, res.Carry)

	// Guard enforces the never-poll-again contract
	require.PanicsWithValue(t, ErrPolledAfterDone, func() { b(click) })
}

func TestMatchKind(t *testing.T) {
	b := MatchKind(KindKeyUp)

	assert.False(t, b(KeyDown{Key: "x"}).IsDone())
	res := b(KeyUp{Key: "x"})
	require.True(t, res.IsDone())
	assert.Equal(t, KeyUp{Key: "x"}, res.Value)
}

func TestInput(t *testing.T) {
	b := Input()

	assert.False(t, b(Tick{Delta: 1}).IsDone())
	assert.True(t, b(KeyDown{Key: "q"}).IsDone())
}

func TestOnTick(t *testing.T) {
	total := 0.0
	b := OnTick(func(delta float64) (any, bool) {
		total += delta
		if total >= 1 {
			return "enough", true
		}
		return nil, false
	})

	assert.False(t, b(PointerDown{}).IsDone())
	assert.False(t, b(Tick{Delta: 0.5}).IsDone())
	assert.Equal(t, 0.5, total)

	res := b(Tick{Delta: 0.5})
	require.True(t, res.IsDone())
	assert.Equal(t, "enough", res.Value)
}

func TestAlwaysNeverFinishes(t *testing.T) {
	var seen []EventKind
	b := Always(func(ev Event) {
		seen = append(seen, ev.Kind())
	})

	for _, ev := range []Event{Tick{Delta: 1}, KeyDown{Key: "a"}, PointerUp{}} {
		assert.False(t, b(ev).IsDone())
	}
	assert.Equal(t, []EventKind{KindTick, KindKeyDown, KindPointerUp}, seen)
}

func TestIntervalAccounting(t *testing.T) {
	var progress []float64
	b := Interval(1.0, func(p float64) {
		progress = append(progress, p)
	})

	// Initial progress is reported at construction
	require.Equal(t, []float64{0}, progress)

	assert.False(t, b(Tick{Delta: 0.4}).IsDone())
	assert.False(t, b(KeyDown{Key: "a"}).IsDone())
	assert.False(t, b(Tick{Delta: 0.4}).IsDone())

	res := b(Tick{Delta: 0.4})
	require.True(t, res.IsDone())

	carry, ok := res.Carry.(Tick)
	require.True(t, ok, "carry should be a Tick, got %T", res.Carry)
	assert.InDelta(t, 0.2, carry.Delta, 1e-9)

	require.Len(t, progress, 4)
	assert.InDelta(t, 0.4, progress[1], 1e-9)
	assert.InDelta(t, 0.8, progress[2], 1e-9)
	assert.Equal(t, 1.0, progress[3])
}

func TestIntervalExactFinishCarriesNothing(t *testing.T) {
	b := Wait(0.5)

	assert.False(t, b(Tick{Delta: 0.25}).IsDone())
	res := b(Tick{Delta: 0.25})
	require.True(t, res.IsDone())
	assert.Nil(t, res.Carry)
}

func TestIntervalZeroDurationCarriesWholeTick(t *testing.T) {
	var progress []float64
	b := Interval(0, func(p float64) { progress = append(progress, p) })

	assert.False(t, b(KeyDown{Key: "a"}).IsDone(), "only ticks advance a timer")

	res := b(Tick{Delta: 0.05})
	require.True(t, res.IsDone())
	assert.Equal(t, Tick{Delta: 0.05}, res.Carry)
	assert.Equal(t, []float64{0, 1}, progress)
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "Tick", KindTick.String())
	assert.Equal(t, "PointerMove", PointerMove{}.Kind().String())
	assert.Equal(t, "Unknown", EventKind(99).String())
}

func TestPointerPos(t *testing.T) {
	pos, ok := PointerPos(PointerUp{Pos: vec.New(2, 5)})
	require.True(t, ok)
	assert.Equal(t, vec.New(2, 5), pos)

	_, ok = PointerPos(KeyDown{Key: "a"})
	assert.False(t, ok)
}
