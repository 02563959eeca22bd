// Package btree runs go-behaviortree trees inside the behavior engine.
//
// A tree is ticked once per Tick event; input events are ignored. Tree
// errors are treated like failed bridged tasks and fault the chain.
package btree

import (
	bt "github.com/joeycumines/go-behaviortree"

	"github.com/vovakirdan/tui-skirmish/internal/behavior"
)

// FromNode ticks node on every Tick and finishes with the bt.Status once the
// tree stops running.
func FromNode(node bt.Node) behavior.Behavior {
	return behavior.OnTick(func(float64) (any, bool) {
		status := tick(node)
		if status == bt.Running {
			return nil, false
		}
		return status, true
	})
}

// UntilSuccess ticks node on every Tick and finishes the first time the
// tree succeeds. Running and failing ticks both keep it pending.
func UntilSuccess(node bt.Node) behavior.Behavior {
	return behavior.OnTick(func(float64) (any, bool) {
		if tick(node) == bt.Success {
			return bt.Success, true
		}
		return nil, false
	})
}

// Condition is a leaf that succeeds when pred holds and fails otherwise.
func Condition(pred func() bool) bt.Node {
	return bt.New(func([]bt.Node) (bt.Status, error) {
		if pred() {
			return bt.Success, nil
		}
		return bt.Failure, nil
	})
}

// Action is a leaf that runs f and succeeds.
func Action(f func()) bt.Node {
	return bt.New(func([]bt.Node) (bt.Status, error) {
		f()
		return bt.Success, nil
	})
}

func tick(node bt.Node) bt.Status {
	status, err := node.Tick()
	if err != nil {
		panic(&behavior.Fault{Err: err})
	}
	return status
}
