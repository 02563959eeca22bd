package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder appends name to log on every call and finishes on call doneAt.
func recorder(name string, doneAt int, log *[]string) Behavior {
	calls := 0
	return func(Event) Result {
		calls++
		*log = append(*log, name)
		if doneAt > 0 && calls >= doneAt {
			return Done(name)
		}
		return Pending()
	}
}

func TestPoolLifecycle(t *testing.T) {
	var log []string
	p := NewPool()
	p.Add(recorder("a", 0, &log))
	p.Add(recorder("b", 1, &log))
	p.Add(recorder("c", 0, &log))
	require.Equal(t, 3, p.Len())

	p.Update(Tick{})
	assert.Equal(t, []string{"a", "b", "c"}, log)
	assert.Equal(t, 2, p.Len())

	log = nil
	p.Update(Tick{})
	p.Update(Tick{})
	assert.Equal(t, []string{"a", "c", "a", "c"}, log)

	p.Clear()
	assert.Equal(t, 0, p.Len())

	log = nil
	p.Update(Tick{})
	assert.Empty(t, log)
}

func TestPoolDisposeIsIdempotent(t *testing.T) {
	var log []string
	p := NewPool()
	p.Add(recorder("a", 0, &log))
	dispose := p.Add(recorder("b", 0, &log))
	p.Add(recorder("c", 0, &log))

	dispose()
	dispose()
	require.Equal(t, 2, p.Len())

	p.Update(Tick{})
	assert.Equal(t, []string{"a", "c"}, log)
}

func TestPoolDisposeAfterClearDoesNotTouchNewEntries(t *testing.T) {
	var log []string
	p := NewPool()
	stale := p.Add(recorder("old", 0, &log))
	p.Clear()
	p.Add(recorder("new", 0, &log))

	stale()
	assert.Equal(t, 1, p.Len())
}

func TestPoolUpdateUsesSnapshot(t *testing.T) {
	var log []string
	p := NewPool()

	var disposeC Dispose
	p.Add(func(Event) Result {
		log = append(log, "a")
		// Spawned entries wait for the next event
		p.Add(recorder("spawned", 0, &log))
		return Done(nil)
	})
	p.Add(func(Event) Result {
		log = append(log, "b")
		disposeC()
		return Pending()
	})
	disposeC = p.Add(recorder("c", 0, &log))

	p.Update(Tick{})
	assert.Equal(t, []string{"a", "b"}, log)
	assert.Equal(t, 2, p.Len())

	log = nil
	p.Update(Tick{})
	assert.Equal(t, []string{"b", "spawned"}, log)
}

func TestPoolClearDuringUpdate(t *testing.T) {
	var log []string
	p := NewPool()
	p.Add(func(Event) Result {
		log = append(log, "a")
		p.Clear()
		return Pending()
	})
	p.Add(recorder("b", 0, &log))

	p.Update(Tick{})
	assert.Equal(t, []string{"a"}, log)
	assert.Equal(t, 0, p.Len())
}

func TestPoolOrderFollowsInsertion(t *testing.T) {
	var log []string
	p := NewPool()
	for _, name := range []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"} {
		p.Add(recorder(name, 0, &log))
	}

	p.Update(Tick{})
	assert.Equal(t, []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"}, log)
}

func TestPoolReentrantUpdatePanics(t *testing.T) {
	p := NewPool()
	p.Add(func(ev Event) Result {
		p.Update(ev)
		return Pending()
	})

	require.PanicsWithValue(t, ErrReentrantDispatch, func() { p.Update(Tick{}) })
}

func TestPoolBehaviorAsRootMember(t *testing.T) {
	var log []string
	p := NewPool()
	p.Add(recorder("unit", 0, &log))

	root := First(p.Behavior(), MatchKind(KindKeyDown))
	assert.False(t, root(Tick{}).IsDone())
	assert.True(t, root(KeyDown{Key: "q"}).IsDone())
	assert.Equal(t, []string{"unit", "unit"}, log)
}
