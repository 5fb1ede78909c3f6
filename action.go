package gameforms

import (
	"fmt"
)

// Action is a choice available at an information set. Its identity does
// not depend on its position: inserting or deleting other actions of the
// same information set leaves it unchanged.
type Action struct {
	infoset *InfoSet
	label   string
	// prob is the probability of this action at a chance information set.
	prob float64
}

func (a *Action) InfoSet() *InfoSet {
	return a.infoset
}

func (a *Action) Label() string {
	return a.label
}

func (a *Action) SetLabel(label string) {
	a.label = label
}

// Number returns the current position of the action in its information
// set, or -1 if it was deleted.
func (a *Action) Number() int {
	return a.infoset.actionIndex(a)
}

// Prob returns the probability chance takes this action. It is zero for
// actions of personal players.
func (a *Action) Prob() float64 {
	return a.prob
}

// Precedes returns whether node is reached by taking this action at some
// strict ancestor of node.
func (a *Action) Precedes(node *Node) bool {
	if node == nil || node.game != a.infoset.game {
		return false
	}

	for n := node; n.parent != nil; n = n.parent {
		if n.parent.infoset == a.infoset && n.PriorAction() == a {
			return true
		}
	}

	return false
}

// String implements fmt.Stringer.
func (a *Action) String() string {
	return fmt.Sprintf("Action(%d, %q)", a.Number(), a.label)
}
