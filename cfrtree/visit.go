package cfrtree

import (
	"github.com/timpalpant/go-cfr"
)

// Visit calls visitor on every node of the tree rooted at node, in
// pre-order. Each node is closed once its subtree has been visited.
func Visit(node cfr.GameTreeNode, visitor func(node cfr.GameTreeNode)) {
	visitor(node)
	for i := 0; i < node.NumChildren(); i++ {
		Visit(node.GetChild(i), visitor)
	}
	node.Close()
}

// Counts summarizes the nodes of a game tree by type.
type Counts struct {
	Terminal int
	Player   int
	Chance   int
	// InfoSets is the number of distinct information set keys seen.
	InfoSets int
}

// Total returns the total number of nodes.
func (c Counts) Total() int {
	return c.Terminal + c.Player + c.Chance
}

// Count walks the whole tree rooted at node.
func Count(node cfr.GameTreeNode) Counts {
	var result Counts
	seen := make(map[string]struct{})
	Visit(node, func(node cfr.GameTreeNode) {
		switch node.Type() {
		case cfr.TerminalNodeType:
			result.Terminal++
		case cfr.ChanceNodeType:
			result.Chance++
		case cfr.PlayerNodeType:
			result.Player++
			seen[node.InfoSet(node.Player()).Key()] = struct{}{}
		}
	})

	result.InfoSets = len(seen)
	return result
}

// ExpectedUtility returns the expected utility to player when every player
// follows the given choice of action at each of their nodes, averaging
// over chance.
func ExpectedUtility(node cfr.GameTreeNode, player int, choose func(node cfr.GameTreeNode) int) float64 {
	defer node.Close()
	switch node.Type() {
	case cfr.TerminalNodeType:
		return node.Utility(player)
	case cfr.ChanceNodeType:
		total := 0.0
		for i := 0; i < node.NumChildren(); i++ {
			if p := node.GetChildProbability(i); p > 0 {
				total += p * ExpectedUtility(node.GetChild(i), player, choose)
			}
		}
		return total
	default:
		return ExpectedUtility(node.GetChild(choose(node)), player, choose)
	}
}
