// Package behavior is a cooperative scheduling engine for event-driven,
// resumable units of logic.
//
// A Behavior is a function called once per Event. It answers Pending while it
// still has work to do and Done once it has permanently finished. Larger
// behaviors are composed from smaller ones with combinators:
//
//   - First races children in priority order.
//   - Parallel joins children and finishes when all of them have.
//   - Run drives a Script, a resumable sequence of children.
//   - Repeat restarts a freshly built child forever.
//   - Until keeps one behavior running until another finishes.
//
// Time only enters the engine through Tick events carrying the elapsed delta,
// and a finished timer hands its overshoot to whatever runs next as a carried
// Tick fragment, so chained timed phases never drop time.
//
// A Pool holds many independent top-level behaviors (one per spawned entity)
// and fans each event out to them in insertion order. A Driver owns the single
// root behavior for an outer loop and converts bridged task failures into
// errors.
//
// Everything in this package runs on one logical thread. Nothing here blocks,
// reads the clock or starts goroutines, with the single exception of Async,
// which runs caller supplied work off-thread and reports back through a flag
// read on the next poll.
package behavior
