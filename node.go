package gameforms

import (
	"fmt"
)

// Node is a position in the game tree. Decision nodes belong to exactly
// one information set and have one child per action of that set; terminal
// nodes have no information set and no children.
type Node struct {
	game     *Game
	parent   *Node
	children []*Node
	infoset  *InfoSet
	outcome  *Outcome
	label    string
	// depth is the number of edges from the root. It never changes once
	// the node is attached, which is what makes Precedes O(depth).
	depth int
	// Set once the node's subtree is cut from the tree.
	deleted bool
}

func (n *Node) Game() *Game {
	return n.game
}

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child nodes in action order.
func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

// Child returns the child reached by the i'th action.
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

func (n *Node) NumChildren() int {
	return len(n.children)
}

func (n *Node) IsTerminal() bool {
	return len(n.children) == 0
}

// InfoSet returns the information set governing the move at this node,
// or nil if the node is terminal.
func (n *Node) InfoSet() *InfoSet {
	return n.infoset
}

// Player returns the player moving at this node, or nil if it is terminal.
func (n *Node) Player() *Player {
	if n.infoset == nil {
		return nil
	}
	return n.infoset.player
}

// Outcome returns the outcome attached to this node, if any.
func (n *Node) Outcome() *Outcome {
	return n.outcome
}

func (n *Node) Label() string {
	return n.label
}

func (n *Node) SetLabel(label string) {
	n.label = label
}

// Depth returns the number of moves from the root to this node.
func (n *Node) Depth() int {
	return n.depth
}

// PriorAction returns the action at the parent that leads to this node,
// or nil for the root.
func (n *Node) PriorAction() *Action {
	if n.parent == nil {
		return nil
	}

	i := n.parent.childIndex(n)
	if i < 0 {
		return nil
	}
	return n.parent.infoset.actions[i]
}

// Precedes returns whether this node is a strict ancestor of other.
// It runs in time proportional to the depth of other.
func (n *Node) Precedes(other *Node) bool {
	if other == nil || other.game != n.game || other.depth <= n.depth {
		return false
	}

	for other.depth > n.depth {
		other = other.parent
	}

	return other == n
}

// IsSuccessorOf returns whether other is a strict ancestor of this node.
func (n *Node) IsSuccessorOf(other *Node) bool {
	return other != nil && other.Precedes(n)
}

func (n *Node) childIndex(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

func (n *Node) newChild() *Node {
	return &Node{
		game:   n.game,
		parent: n,
		depth:  n.depth + 1,
	}
}

// detach marks the subtree rooted at n as deleted and removes its nodes
// from the member lists of their information sets.
func (n *Node) detach() {
	for _, child := range n.children {
		child.detach()
	}

	if n.infoset != nil {
		n.infoset.removeMember(n)
	}
	n.deleted = true
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	if n.infoset == nil {
		return fmt.Sprintf("Node(terminal, depth %d, %q)", n.depth, n.label)
	}
	return fmt.Sprintf("Node(%v, depth %d, %q)", n.infoset.player, n.depth, n.label)
}
