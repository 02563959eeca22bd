package behavior

import "github.com/vovakirdan/tui-skirmish/internal/vec"

// EventKind is the tag of an Event.
type EventKind int

const (
	KindTick EventKind = iota
	KindPointerDown
	KindPointerUp
	KindPointerMove
	KindKeyDown
	KindKeyUp
)

// String returns a human-readable name for the kind.
func (k EventKind) String() string {
	switch k {
	case KindTick:
		return "Tick"
	case KindPointerDown:
		return "PointerDown"
	case KindPointerUp:
		return "PointerUp"
	case KindPointerMove:
		return "PointerMove"
	case KindKeyDown:
		return "KeyDown"
	case KindKeyUp:
		return "KeyUp"
	default:
		return "Unknown"
	}
}

// Event is one external occurrence delivered into the engine.
// The set of events is closed: only the types in this file implement it.
type Event interface {
	Kind() EventKind
	event()
}

// Tick reports that Delta seconds have elapsed since the previous tick.
type Tick struct {
	Delta float64
}

// PointerDown is a pointer press at Pos.
type PointerDown struct {
	Pos vec.Vec
}

// PointerUp is a pointer release at Pos.
type PointerUp struct {
	Pos vec.Vec
}

// PointerMove is a pointer motion to Pos.
type PointerMove struct {
	Pos vec.Vec
}

// KeyDown is a key press. Key uses the terminal key names ("1", "esc", "left").
type KeyDown struct {
	Key string
}

// KeyUp is a key release.
type KeyUp struct {
	Key string
}

func (Tick) Kind() EventKind        { return KindTick }
func (PointerDown) Kind() EventKind { return KindPointerDown }
func (PointerUp) Kind() EventKind   { return KindPointerUp }
func (PointerMove) Kind() EventKind { return KindPointerMove }
func (KeyDown) Kind() EventKind     { return KindKeyDown }
func (KeyUp) Kind() EventKind       { return KindKeyUp }

func (Tick) event()        {}
func (PointerDown) event() {}
func (PointerUp) event()   {}
func (PointerMove) event() {}
func (KeyDown) event()     {}
func (KeyUp) event()       {}

// PointerPos returns the position of a pointer event.
func PointerPos(ev Event) (vec.Vec, bool) {
	switch e := ev.(type) {
	case PointerDown:
		return e.Pos, true
	case PointerUp:
		return e.Pos, true
	case PointerMove:
		return e.Pos, true
	}
	return vec.Vec{}, false
}
