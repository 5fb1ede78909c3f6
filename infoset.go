package gameforms

import (
	"fmt"
)

// InfoSet is an information set: a set of decision nodes of one player that
// the player cannot tell apart when moving. Every member node has one child
// per action, in action order.
type InfoSet struct {
	game    *Game
	player  *Player
	label   string
	actions []*Action
	members []*Node
	// Set when the information set is removed from the game.
	deleted bool
}

func (is *InfoSet) Game() *Game {
	return is.game
}

// Player returns the player who moves at this information set.
func (is *InfoSet) Player() *Player {
	return is.player
}

// IsChance returns whether chance moves at this information set.
func (is *InfoSet) IsChance() bool {
	return is.player.IsChance()
}

func (is *InfoSet) Label() string {
	return is.label
}

func (is *InfoSet) SetLabel(label string) {
	is.label = label
}

// Number returns the position of this information set within its player's
// sequence, or -1 if it was removed from the game.
func (is *InfoSet) Number() int {
	for i, other := range is.player.infosets {
		if other == is {
			return i
		}
	}
	return -1
}

// Actions returns the actions available at this information set, in order.
func (is *InfoSet) Actions() []*Action {
	return append([]*Action(nil), is.actions...)
}

// Action returns the i'th action.
func (is *InfoSet) Action(i int) *Action {
	return is.actions[i]
}

func (is *InfoSet) NumActions() int {
	return len(is.actions)
}

// Members returns the nodes belonging to this information set.
func (is *InfoSet) Members() []*Node {
	return append([]*Node(nil), is.members...)
}

func (is *InfoSet) NumMembers() int {
	return len(is.members)
}

// Precedes returns whether some member of this information set is a strict
// ancestor of node. It runs in time proportional to the depth of node.
func (is *InfoSet) Precedes(node *Node) bool {
	if node == nil || node.game != is.game {
		return false
	}

	for n := node.parent; n != nil; n = n.parent {
		if n.infoset == is {
			return true
		}
	}

	return false
}

func (is *InfoSet) actionIndex(a *Action) int {
	for i, other := range is.actions {
		if other == a {
			return i
		}
	}
	return -1
}

func (is *InfoSet) removeMember(n *Node) {
	for i, m := range is.members {
		if m == n {
			is.members = append(is.members[:i], is.members[i+1:]...)
			return
		}
	}
}

// String implements fmt.Stringer.
func (is *InfoSet) String() string {
	return fmt.Sprintf("InfoSet(%v, %d, %q)", is.player, is.Number(), is.label)
}
