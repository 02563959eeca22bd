package behavior

import "slices"

// Dispose removes a pool entry. Calling it more than once is a no-op.
type Dispose func()

// Pool holds independently scheduled top-level behaviors and delivers each
// event to all of them in the order they were added.
//
// A Pool is not safe for concurrent use; it belongs to the thread that
// drives the engine.
type Pool struct {
	entries     map[uint64]Behavior
	next        uint64
	dispatching bool
}

// NewPool creates an empty pool.
func NewPool() *Pool {
	return &Pool{
		entries: make(map[uint64]Behavior),
	}
}

// Add inserts b and returns its disposer.
func (p *Pool) Add(b Behavior) Dispose {
	id := p.next
	p.next++
	p.entries[id] = b

	return func() {
		delete(p.entries, id)
	}
}

// Update delivers ev to every entry present when the call starts, in
// insertion order. Entries added while it runs wait for the next event,
// entries disposed while it runs are skipped, and entries that finish are
// removed.
func (p *Pool) Update(ev Event) {
	if p.dispatching {
		panic(ErrReentrantDispatch)
	}
	p.dispatching = true
	defer func() { p.dispatching = false }()

	ids := make([]uint64, 0, len(p.entries))
	for id := range p.entries {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		b, ok := p.entries[id]
		if !ok {
			continue
		}
		if b(ev).IsDone() {
			delete(p.entries, id)
		}
	}
}

// Clear drops every entry without calling it.
func (p *Pool) Clear() {
	p.entries = make(map[uint64]Behavior)
}

// Len returns the number of live entries.
func (p *Pool) Len() int {
	return len(p.entries)
}

// Behavior returns a behavior that updates the pool with every event and
// never finishes. It is meant to be the first member of a root First.
func (p *Pool) Behavior() Behavior {
	return func(ev Event) Result {
		p.Update(ev)
		return Pending()
	}
}
