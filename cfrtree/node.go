// Package cfrtree exposes the tree of an extensive-form game as a
// cfr.GameTreeNode, so it can be traversed by counterfactual regret
// minimization solvers.
package cfrtree

import (
	"expvar"
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
	"github.com/timpalpant/go-cfr"

	"github.com/timpalpant/gameforms"
)

var (
	nodesVisited         = expvar.NewInt("cfrtree/nodes_visited")
	terminalNodesVisited = expvar.NewInt("cfrtree/nodes_visited/terminal")
	playerNodesVisited   = expvar.NewInt("cfrtree/nodes_visited/player")
	chanceNodesVisited   = expvar.NewInt("cfrtree/nodes_visited/chance")
)

// Node implements cfr.GameTreeNode for a node of a tree game.
type Node struct {
	node   *gameforms.Node
	parent *Node
	// utility accumulates the payoffs of every outcome on the path from
	// the root to this node, indexed by player.
	utility []float64

	// children are built lazily and released by Close.
	children []Node
	rng      *rand.Rand
}

// Verify that we implement the interface.
var _ cfr.GameTreeNode = &Node{}

// New returns the root of a cfr game tree for g. The game must not be
// modified while the tree is in use.
func New(g *gameforms.Game, rng *rand.Rand) (*Node, error) {
	if !g.IsTree() {
		return nil, errors.Wrapf(gameforms.ErrUndefinedOperation, "%v is not a tree game", g)
	}
	if err := g.Validate(); err != nil {
		return nil, errors.Wrap(err, "cannot build cfr tree")
	}

	root := &Node{
		node:    g.Root(),
		utility: make([]float64, g.NumPlayers()),
		rng:     rng,
	}
	root.addOutcome()
	return root, nil
}

func (n *Node) addOutcome() {
	o := n.node.Outcome()
	if o == nil {
		return
	}

	for i, p := range n.node.Game().Players() {
		n.utility[i] += o.Payoff(p)
	}
}

// GameNode returns the underlying node of the game tree.
func (n *Node) GameNode() *gameforms.Node {
	return n.node
}

// Type implements cfr.GameTreeNode.
func (n *Node) Type() cfr.NodeType {
	switch {
	case n.node.IsTerminal():
		return cfr.TerminalNodeType
	case n.node.InfoSet().IsChance():
		return cfr.ChanceNodeType
	default:
		return cfr.PlayerNodeType
	}
}

// Player implements cfr.GameTreeNode. It is the index of the player to
// move, gameforms.ChanceIndex at chance nodes and -1 at terminal nodes.
func (n *Node) Player() int {
	p := n.node.Player()
	if p == nil {
		return -1
	}
	return p.Index()
}

// InfoSet implements cfr.GameTreeNode.
func (n *Node) InfoSet(player int) cfr.InfoSet {
	is := n.node.InfoSet()
	if is == nil || is.Player().Index() != player {
		panic(fmt.Errorf("player %d does not move at %v", player, n.node))
	}

	return &InfoSet{
		Player:     player,
		Number:     is.Number(),
		NumActions: is.NumActions(),
	}
}

// Utility implements cfr.GameTreeNode.
func (n *Node) Utility(player int) float64 {
	if n.Type() != cfr.TerminalNodeType {
		panic("cannot get the utility of a non-terminal node")
	}

	return n.utility[player]
}

func (n *Node) buildChildren() {
	if n.children != nil || n.node.IsTerminal() {
		return
	}

	n.children = make([]Node, n.node.NumChildren())
	for i := range n.children {
		child := &n.children[i]
		child.node = n.node.Child(i)
		child.parent = n
		child.utility = append([]float64(nil), n.utility...)
		child.rng = n.rng
		child.addOutcome()
	}
}

// NumChildren implements cfr.GameTreeNode.
func (n *Node) NumChildren() int {
	return n.node.NumChildren()
}

// GetChild implements cfr.GameTreeNode.
func (n *Node) GetChild(i int) cfr.GameTreeNode {
	n.buildChildren()
	return &n.children[i]
}

// Parent implements cfr.GameTreeNode.
func (n *Node) Parent() cfr.GameTreeNode {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// GetChildProbability implements cfr.GameTreeNode.
func (n *Node) GetChildProbability(i int) float64 {
	if n.Type() != cfr.ChanceNodeType {
		panic("cannot get the probability of a non-chance node")
	}

	return n.node.InfoSet().Action(i).Prob()
}

// SampleChild implements cfr.GameTreeNode.
func (n *Node) SampleChild() (cfr.GameTreeNode, float64) {
	x := n.rng.Float64()
	selected := n.NumChildren() - 1
	cumProb := 0.0
	for i := 0; i < n.NumChildren(); i++ {
		cumProb += n.GetChildProbability(i)
		if x < cumProb {
			selected = i
			break
		}
	}

	return n.GetChild(selected), n.GetChildProbability(selected)
}

// Close implements cfr.GameTreeNode.
func (n *Node) Close() {
	nodesVisited.Add(1)
	switch n.Type() {
	case cfr.TerminalNodeType:
		terminalNodesVisited.Add(1)
	case cfr.PlayerNodeType:
		playerNodesVisited.Add(1)
	case cfr.ChanceNodeType:
		chanceNodesVisited.Add(1)
	}

	n.children = nil
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return fmt.Sprintf("cfrtree.Node(%v, depth %d)", n.node.Player(), n.node.Depth())
}
