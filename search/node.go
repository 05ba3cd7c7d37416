package search

import "github.com/2025-CapStone-1-Pokemon/battlecore/battle"

// Node is one MCTS tree node (spec §4.G "Tree node"). It mirrors the
// teacher's explicit-stack style in move_ordering.go rather than reaching
// for a generic tree library: a plain parent back-pointer, an owned child
// slice, nothing beyond the two interfaces (battle.RolloutPolicy,
// oracle.Oracle) the Tree itself holds.
type Node struct {
	State          *battle.State
	Parent         *Node
	Action         battle.Action
	Visits         int
	Wins           float64
	Children       []*Node
	UntriedActions []battle.Action
}

func newNode(state *battle.State, parent *Node, action battle.Action) *Node {
	return &Node{State: state, Parent: parent, Action: action}
}
